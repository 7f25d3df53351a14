// SPDX-License-Identifier: GPL-3.0-or-later

package minidns

import (
	"encoding/binary"
	"fmt"
)

// Question is a single entry of the question section of a DNS
// message.
type Question struct {
	// Name is the domain name being queried.
	Name string

	// Type is the record type being requested.
	Type RecordType

	// Class is the protocol class, in practice always [ClassINET].
	Class Class
}

// NewQuestion constructs an Internet-class [Question].
func NewQuestion(name string, qtype RecordType) Question {
	return Question{Name: name, Type: qtype, Class: ClassINET}
}

// ToBytes serializes the question: the encoded name followed by the
// type and class codes.
func (q *Question) ToBytes() ([]byte, error) {
	out, err := EncodeName(q.Name)
	if err != nil {
		return nil, err
	}
	out = binary.BigEndian.AppendUint16(out, uint16(q.Type))
	out = binary.BigEndian.AppendUint16(out, uint16(q.Class))
	return out, nil
}

// QuestionFromBytes deserializes a question from data starting at
// offset and returns it together with the offset of the first byte
// after it. Truncation yields [ErrParse]; a type or class outside
// the supported set yields [ErrUnsupportedCode].
func QuestionFromBytes(data []byte, offset int) (Question, int, error) {
	name, pos, err := DecodeName(data, offset)
	if err != nil {
		return Question{}, 0, err
	}
	if pos+4 > len(data) {
		return Question{}, 0, fmt.Errorf("question: truncated at offset %d: %w", pos, ErrParse)
	}

	qtype, err := RecordTypeFromCode(binary.BigEndian.Uint16(data[pos : pos+2]))
	if err != nil {
		return Question{}, 0, fmt.Errorf("question: %w", err)
	}
	class, err := ClassFromCode(binary.BigEndian.Uint16(data[pos+2 : pos+4]))
	if err != nil {
		return Question{}, 0, fmt.Errorf("question: %w", err)
	}
	return Question{Name: name, Type: qtype, Class: class}, pos + 4, nil
}
