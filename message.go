// SPDX-License-Identifier: GPL-3.0-or-later

package minidns

import (
	"encoding/binary"
	"fmt"
)

// maxDatagramSize is the read buffer size for DNS datagrams: classic
// DNS over UDP fits in 512 bytes (RFC 1035 section 2.3.4).
const maxDatagramSize = 512

// Message is a complete DNS message: the header, the question
// section, and the answer section. Authority and additional records
// are not modeled; their header counts round-trip untouched.
type Message struct {
	// Header is the fixed message header.
	Header Header

	// Questions is the question section.
	Questions []Question

	// Answers is the answer section.
	Answers []Record
}

// NewQuery constructs a query [*Message] for name with the given
// record type: a fresh header with a random ID and RD set, carrying
// a single Internet-class question.
func NewQuery(name string, qtype RecordType) *Message {
	header := NewHeader()
	header.QDCount = 1
	return &Message{
		Header:    header,
		Questions: []Question{NewQuestion(name, qtype)},
	}
}

// NewResponse constructs the response template for query: a copy of
// the query carrying the same transaction ID, questions, and header
// counts, with QR and RA set and no answers. Callers append answers
// and bump ANCount themselves.
func NewResponse(query *Message) *Message {
	header := query.Header
	header.QR = true
	header.RA = true
	return &Message{
		Header:    header,
		Questions: append([]Question(nil), query.Questions...),
	}
}

// ToBytes serializes the message: header, then questions, then
// answers.
func (m *Message) ToBytes() ([]byte, error) {
	out := m.Header.ToBytes()
	for i := range m.Questions {
		raw, err := m.Questions[i].ToBytes()
		if err != nil {
			return nil, err
		}
		out = append(out, raw...)
	}
	for i := range m.Answers {
		raw, err := m.Answers[i].ToBytes()
		if err != nil {
			return nil, err
		}
		out = append(out, raw...)
	}
	return out, nil
}

// MessageFromBytes deserializes a complete DNS message.
//
// The question section is parsed strictly: exactly QDCount questions
// must be present and well formed, or parsing fails. The answer
// section is parsed leniently, the way a stub resolver reads replies
// from servers it does not control: parsing stops early when a
// record is cut short, and records with an unsupported type or class
// are skipped after advancing past them. A malformed name anywhere
// still fails the whole parse.
func MessageFromBytes(data []byte) (*Message, error) {
	header, err := HeaderFromBytes(data)
	if err != nil {
		return nil, err
	}

	msg := &Message{Header: header}
	offset := headerSize

	// 1. question section, strict
	for i := 0; i < int(header.QDCount); i++ {
		question, next, err := QuestionFromBytes(data, offset)
		if err != nil {
			return nil, err
		}
		msg.Questions = append(msg.Questions, question)
		offset = next
	}

	// 2. answer section, lenient
	for i := 0; i < int(header.ANCount); i++ {
		if offset >= len(data) {
			break
		}

		name, next, err := DecodeName(data, offset)
		if err != nil {
			return nil, err
		}
		offset = next

		if offset+10 > len(data) {
			break
		}
		typeCode := binary.BigEndian.Uint16(data[offset : offset+2])
		classCode := binary.BigEndian.Uint16(data[offset+2 : offset+4])
		ttl := binary.BigEndian.Uint32(data[offset+4 : offset+8])
		rdlength := int(binary.BigEndian.Uint16(data[offset+8 : offset+10]))
		offset += 10

		if offset+rdlength > len(data) {
			break
		}
		rdata := append([]byte(nil), data[offset:offset+rdlength]...)
		offset += rdlength

		// Records of an unsupported type or class have been
		// consumed above, so skipping them keeps the cursor right.
		rtype, typeErr := RecordTypeFromCode(typeCode)
		class, classErr := ClassFromCode(classCode)
		if typeErr != nil || classErr != nil {
			continue
		}

		msg.Answers = append(msg.Answers, Record{
			Name:  name,
			Type:  rtype,
			Class: class,
			TTL:   ttl,
			Data:  rdata,
		})
	}

	return msg, nil
}

// ValidateResponse checks that resp plausibly answers query: it must
// be marked as a response, carry the same transaction ID, and, when
// the query carries questions, restate the same first question.
//
// Neither [*Client.Query] nor the server reject messages on these
// grounds; this is an extra check for callers that want one.
func ValidateResponse(query, resp *Message) error {
	// 1. the message must be a response at all
	if !resp.Header.QR {
		return fmt.Errorf("not a response: %w", ErrInvalidResponse)
	}

	// 2. the transaction ID must match the query
	if resp.Header.ID != query.Header.ID {
		return fmt.Errorf("transaction ID mismatch: %w", ErrInvalidResponse)
	}

	// 3. the response must restate the question it answers
	if len(query.Questions) > 0 {
		if len(resp.Questions) == 0 {
			return fmt.Errorf("question not restated: %w", ErrInvalidResponse)
		}
		q0, r0 := &query.Questions[0], &resp.Questions[0]
		if !equalASCIIName(q0.Name, r0.Name) || q0.Type != r0.Type || q0.Class != r0.Class {
			return fmt.Errorf("question mismatch: %w", ErrInvalidResponse)
		}
	}
	return nil
}

// SPDX-License-Identifier: BSD-3-Clause
//
// Borrowed from Go src/net package.
func equalASCIIName(x, y string) bool {
	if len(x) != len(y) {
		return false
	}
	for i := 0; i < len(x); i++ {
		a := x[i]
		b := y[i]
		if 'A' <= a && a <= 'Z' {
			a += 0x20
		}
		if 'A' <= b && b <= 'Z' {
			b += 0x20
		}
		if a != b {
			return false
		}
	}
	return true
}
