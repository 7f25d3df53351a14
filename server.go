// SPDX-License-Identifier: GPL-3.0-or-later

package minidns

import (
	"errors"
	"fmt"
	"net"
	"sync"

	"go.uber.org/zap"
)

// answerTTL is the TTL, in seconds, attached to every answer.
const answerTTL = 300

// Server answers DNS queries over UDP out of a [*Database].
//
// Only Internet-class A questions are resolved: queries for missing
// names get NXDOMAIN and other record types get NOTIMP. Construct
// with [NewServer], run with [*Server.Serve], and shut down with
// [*Server.Stop].
type Server struct {
	conn     net.PacketConn
	db       *Database
	logger   *zap.Logger
	stopOnce sync.Once
	handlers sync.WaitGroup
}

// NewServer binds addr ("host:port") and returns a server answering
// from db. A nil logger disables logging.
func NewServer(addr string, db *Database, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	conn, err := net.ListenPacket("udp4", addr)
	if err != nil {
		return nil, fmt.Errorf("bind %s: %w", addr, err)
	}
	return &Server{conn: conn, db: db, logger: logger}, nil
}

// LocalAddr returns the address the server is bound to.
func (s *Server) LocalAddr() net.Addr {
	return s.conn.LocalAddr()
}

// Serve reads datagrams and answers them until [*Server.Stop] is
// called, handling each query in its own goroutine. A datagram that
// does not parse is dropped without a reply. Serve returns nil once
// stopped and every in-flight handler has finished.
func (s *Server) Serve() error {
	s.logger.Info("listening", zap.Stringer("addr", s.conn.LocalAddr()))
	defer s.handlers.Wait()

	buf := make([]byte, maxDatagramSize)
	for {
		n, peer, err := s.conn.ReadFrom(buf)
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			s.logger.Warn("recv failed", zap.Error(err))
			continue
		}

		pkt := append([]byte(nil), buf[:n]...)
		s.handlers.Add(1)
		go func() {
			defer s.handlers.Done()
			s.handle(pkt, peer)
		}()
	}
}

// Stop closes the server socket, which makes [*Server.Serve] return.
// Safe to call more than once.
func (s *Server) Stop() {
	s.stopOnce.Do(func() { s.conn.Close() })
}

// handle answers a single datagram.
func (s *Server) handle(pkt []byte, peer net.Addr) {
	query, err := MessageFromBytes(pkt)
	if err != nil {
		s.logger.Debug("dropping unparseable datagram",
			zap.Stringer("peer", peer),
			zap.Int("size", len(pkt)),
			zap.Error(err))
		return
	}

	s.logger.Debug("query received",
		zap.Stringer("peer", peer),
		zap.Uint16("id", query.Header.ID),
		zap.Int("questions", len(query.Questions)))

	resp := NewResponse(query)
	for i := range query.Questions {
		question := &query.Questions[i]

		if question.Type != RecordTypeA {
			resp.Header.Rcode = RcodeNotImplemented
			s.logger.Info("unsupported query type",
				zap.String("name", question.Name),
				zap.Stringer("type", question.Type))
			continue
		}

		addr, ok := s.db.Lookup(question.Name)
		if !ok {
			resp.Header.Rcode = RcodeNXDomain
			s.logger.Info("name not found", zap.String("name", question.Name))
			continue
		}

		resp.Answers = append(resp.Answers, NewARecord(question.Name, addr, answerTTL))
		resp.Header.ANCount++
		s.logger.Info("resolved",
			zap.String("name", question.Name),
			zap.Stringer("addr", addr))
	}

	raw, err := resp.ToBytes()
	if err != nil {
		s.logger.Warn("cannot pack response", zap.Error(err))
		return
	}
	if _, err := s.conn.WriteTo(raw, peer); err != nil {
		s.logger.Warn("cannot send response", zap.Stringer("peer", peer), zap.Error(err))
		return
	}

	s.logger.Debug("response sent",
		zap.Stringer("peer", peer),
		zap.Int("size", len(raw)),
		zap.String("rcode", RcodeText(resp.Header.Rcode)),
		zap.Int("answers", len(resp.Answers)))
}
