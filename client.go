// SPDX-License-Identifier: GPL-3.0-or-later

package minidns

import (
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/idna"
)

// Client issues DNS queries over UDP.
//
// The client binds a single UDP socket at construction time and
// reuses it for every query. Construct with [NewClient] and release
// the socket with [*Client.Close].
type Client struct {
	conn   *net.UDPConn
	logger *zap.Logger
}

// NewClient binds the client socket. A nil logger disables logging.
func NewClient(logger *zap.Logger) (*Client, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	conn, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4zero})
	if err != nil {
		return nil, fmt.Errorf("bind: %w", err)
	}
	return &Client{conn: conn, logger: logger}, nil
}

// Close releases the client socket.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Query sends a single query for name to the given server, an
// address in "host:port" form, and waits for one reply.
//
// It returns the parsed reply and the elapsed wall-clock time,
// measured from just before sending. There is no retransmission and
// no response correlation: the first datagram that arrives is taken
// as the answer. A missing reply yields [ErrTimeout], socket faults
// yield [ErrTransport], and a malformed reply yields the codec
// error.
func (c *Client) Query(name, server string, qtype RecordType, timeout time.Duration) (*Message, time.Duration, error) {
	// 1. normalize the name to its ASCII (punycode) form
	ascii, err := idna.Lookup.ToASCII(name)
	if err != nil {
		return nil, 0, fmt.Errorf("idna: %q: %w", name, err)
	}

	// 2. build and pack the query
	query := NewQuery(ascii, qtype)
	raw, err := query.ToBytes()
	if err != nil {
		return nil, 0, err
	}

	// 3. resolve the server address
	addr, err := net.ResolveUDPAddr("udp4", server)
	if err != nil {
		return nil, 0, fmt.Errorf("resolve %s: %v: %w", server, err, ErrTransport)
	}

	c.logger.Debug("sending query",
		zap.String("name", ascii),
		zap.Stringer("type", qtype),
		zap.String("server", server),
		zap.Uint16("id", query.Header.ID),
		zap.Int("size", len(raw)))

	// 4. send, then wait for a single datagram
	start := time.Now()
	if _, err := c.conn.WriteToUDP(raw, addr); err != nil {
		return nil, 0, fmt.Errorf("send: %v: %w", err, ErrTransport)
	}
	if err := c.conn.SetReadDeadline(start.Add(timeout)); err != nil {
		return nil, 0, fmt.Errorf("deadline: %v: %w", err, ErrTransport)
	}
	buf := make([]byte, maxDatagramSize)
	n, _, err := c.conn.ReadFromUDP(buf)
	if err != nil {
		if errors.Is(err, os.ErrDeadlineExceeded) {
			return nil, 0, fmt.Errorf("no reply after %s: %w", timeout, ErrTimeout)
		}
		return nil, 0, fmt.Errorf("recv: %v: %w", err, ErrTransport)
	}
	elapsed := time.Since(start)

	// 5. parse the reply
	resp, err := MessageFromBytes(buf[:n])
	if err != nil {
		return nil, 0, err
	}

	c.logger.Debug("received reply",
		zap.Uint16("id", resp.Header.ID),
		zap.String("rcode", RcodeText(resp.Header.Rcode)),
		zap.Int("answers", len(resp.Answers)),
		zap.Int("size", n),
		zap.Duration("elapsed", elapsed))

	// Suspicious replies are still returned to the caller.
	if err := ValidateResponse(query, resp); err != nil {
		c.logger.Warn("reply does not match query", zap.Error(err))
	}

	return resp, elapsed, nil
}
