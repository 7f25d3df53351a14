// SPDX-License-Identifier: GPL-3.0-or-later

package minidns

import (
	"encoding/binary"
	"fmt"

	"github.com/miekg/dns"
)

// headerSize is the wire size of the fixed DNS header.
const headerSize = 12

// Header is the fixed 12-byte header that starts every DNS message,
// as defined by RFC 1035 section 4.1.1.
type Header struct {
	// ID is the transaction ID, copied verbatim into the response.
	ID uint16

	// QR is false for queries and true for responses.
	QR bool

	// Opcode is the kind of query, zero for a standard query. Only
	// the low four bits are serialized.
	Opcode uint8

	// AA marks an authoritative answer.
	AA bool

	// TC marks a truncated message.
	TC bool

	// RD asks the server to pursue the query recursively.
	RD bool

	// RA tells the client that recursion is available.
	RA bool

	// Z is reserved and should be zero. Only the low three bits
	// are serialized.
	Z uint8

	// Rcode is the response code. Only the low four bits are
	// serialized.
	Rcode uint8

	// QDCount is the number of questions.
	QDCount uint16

	// ANCount is the number of answer records.
	ANCount uint16

	// NSCount is the number of authority records.
	NSCount uint16

	// ARCount is the number of additional records.
	ARCount uint16
}

// NewHeader returns a [Header] with defaults suitable for a fresh
// query: a random transaction ID and the RD flag set.
func NewHeader() Header {
	return Header{ID: dns.Id(), RD: true}
}

// ToBytes serializes the header into its 12-byte wire form.
func (h *Header) ToBytes() []byte {
	out := make([]byte, headerSize)
	binary.BigEndian.PutUint16(out[0:2], h.ID)

	var flags uint16
	if h.QR {
		flags |= 1 << 15
	}
	flags |= uint16(h.Opcode&0x0F) << 11
	if h.AA {
		flags |= 1 << 10
	}
	if h.TC {
		flags |= 1 << 9
	}
	if h.RD {
		flags |= 1 << 8
	}
	if h.RA {
		flags |= 1 << 7
	}
	flags |= uint16(h.Z&0x07) << 4
	flags |= uint16(h.Rcode & 0x0F)
	binary.BigEndian.PutUint16(out[2:4], flags)

	binary.BigEndian.PutUint16(out[4:6], h.QDCount)
	binary.BigEndian.PutUint16(out[6:8], h.ANCount)
	binary.BigEndian.PutUint16(out[8:10], h.NSCount)
	binary.BigEndian.PutUint16(out[10:12], h.ARCount)
	return out
}

// HeaderFromBytes deserializes the first 12 bytes of data into a
// [Header]. Extra bytes are ignored; a shorter buffer yields
// [ErrParse].
func HeaderFromBytes(data []byte) (Header, error) {
	if len(data) < headerSize {
		return Header{}, fmt.Errorf("header: got %d bytes, want %d: %w", len(data), headerSize, ErrParse)
	}

	flags := binary.BigEndian.Uint16(data[2:4])
	return Header{
		ID:      binary.BigEndian.Uint16(data[0:2]),
		QR:      flags&(1<<15) != 0,
		Opcode:  uint8(flags >> 11 & 0x0F),
		AA:      flags&(1<<10) != 0,
		TC:      flags&(1<<9) != 0,
		RD:      flags&(1<<8) != 0,
		RA:      flags&(1<<7) != 0,
		Z:       uint8(flags >> 4 & 0x07),
		Rcode:   uint8(flags & 0x0F),
		QDCount: binary.BigEndian.Uint16(data[4:6]),
		ANCount: binary.BigEndian.Uint16(data[6:8]),
		NSCount: binary.BigEndian.Uint16(data[8:10]),
		ARCount: binary.BigEndian.Uint16(data[10:12]),
	}, nil
}
