// SPDX-License-Identifier: GPL-3.0-or-later

package minidns

import (
	"encoding/binary"
	"net/netip"
)

// Record is a DNS resource record.
type Record struct {
	// Name is the domain name the record describes.
	Name string

	// Type is the record type.
	Type RecordType

	// Class is the protocol class.
	Class Class

	// TTL is how long the record may be cached, in seconds.
	TTL uint32

	// Data is the raw RDATA payload. For an A record this is the
	// IPv4 address in network byte order.
	Data []byte
}

// NewARecord builds an A [Record] binding name to addr, which must
// be an IPv4 address.
func NewARecord(name string, addr netip.Addr, ttl uint32) Record {
	v4 := addr.As4()
	return Record{
		Name:  name,
		Type:  RecordTypeA,
		Class: ClassINET,
		TTL:   ttl,
		Data:  v4[:],
	}
}

// IPv4 returns the address carried by an A record whose payload is
// exactly four bytes, and false for every other record.
func (r *Record) IPv4() (netip.Addr, bool) {
	if r.Type != RecordTypeA || len(r.Data) != 4 {
		return netip.Addr{}, false
	}
	return netip.AddrFrom4([4]byte(r.Data)), true
}

// ToBytes serializes the record: the encoded name, the type and
// class codes, the TTL, and the length-prefixed payload.
func (r *Record) ToBytes() ([]byte, error) {
	out, err := EncodeName(r.Name)
	if err != nil {
		return nil, err
	}
	out = binary.BigEndian.AppendUint16(out, uint16(r.Type))
	out = binary.BigEndian.AppendUint16(out, uint16(r.Class))
	out = binary.BigEndian.AppendUint32(out, r.TTL)
	out = binary.BigEndian.AppendUint16(out, uint16(len(r.Data)))
	return append(out, r.Data...), nil
}
