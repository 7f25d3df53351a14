// SPDX-License-Identifier: GPL-3.0-or-later

package minidns

import (
	"fmt"
	"strings"
)

// RecordType identifies the type of a DNS record as defined by
// RFC 1035 (and RFC 3596 for AAAA).
type RecordType uint16

// Record types supported by this package.
const (
	RecordTypeA     RecordType = 1
	RecordTypeNS    RecordType = 2
	RecordTypeCNAME RecordType = 5
	RecordTypePTR   RecordType = 12
	RecordTypeMX    RecordType = 15
	RecordTypeAAAA  RecordType = 28
)

// RecordTypeFromCode maps a wire-format type code to a [RecordType].
// Codes outside the supported set yield [ErrUnsupportedCode].
func RecordTypeFromCode(code uint16) (RecordType, error) {
	switch rt := RecordType(code); rt {
	case RecordTypeA, RecordTypeNS, RecordTypeCNAME,
		RecordTypePTR, RecordTypeMX, RecordTypeAAAA:
		return rt, nil
	default:
		return 0, fmt.Errorf("record type %d: %w", code, ErrUnsupportedCode)
	}
}

// ParseRecordType maps a case-insensitive record type name, such as
// "A" or "cname", to a [RecordType].
func ParseRecordType(name string) (RecordType, error) {
	switch strings.ToUpper(name) {
	case "A":
		return RecordTypeA, nil
	case "NS":
		return RecordTypeNS, nil
	case "CNAME":
		return RecordTypeCNAME, nil
	case "PTR":
		return RecordTypePTR, nil
	case "MX":
		return RecordTypeMX, nil
	case "AAAA":
		return RecordTypeAAAA, nil
	default:
		return 0, fmt.Errorf("record type %q: %w", name, ErrUnsupportedCode)
	}
}

// String implements [fmt.Stringer].
func (rt RecordType) String() string {
	switch rt {
	case RecordTypeA:
		return "A"
	case RecordTypeNS:
		return "NS"
	case RecordTypeCNAME:
		return "CNAME"
	case RecordTypePTR:
		return "PTR"
	case RecordTypeMX:
		return "MX"
	case RecordTypeAAAA:
		return "AAAA"
	default:
		return fmt.Sprintf("TYPE%d", uint16(rt))
	}
}

// Class identifies the protocol class of a question or record. Only
// the Internet class is supported.
type Class uint16

// ClassINET is the Internet class.
const ClassINET Class = 1

// ClassFromCode maps a wire-format class code to a [Class]. Codes
// other than the Internet class yield [ErrUnsupportedCode].
func ClassFromCode(code uint16) (Class, error) {
	if Class(code) != ClassINET {
		return 0, fmt.Errorf("class %d: %w", code, ErrUnsupportedCode)
	}
	return ClassINET, nil
}

// String implements [fmt.Stringer].
func (c Class) String() string {
	if c == ClassINET {
		return "IN"
	}
	return fmt.Sprintf("CLASS%d", uint16(c))
}

// Response codes set by the server and surfaced to clients.
const (
	// RcodeNoError means the query succeeded.
	RcodeNoError uint8 = 0

	// RcodeNXDomain means the queried name does not exist.
	RcodeNXDomain uint8 = 3

	// RcodeNotImplemented means the server does not implement the
	// requested query type.
	RcodeNotImplemented uint8 = 4
)

// RcodeText returns the display name of a response code.
func RcodeText(rcode uint8) string {
	switch rcode {
	case RcodeNoError:
		return "NOERROR"
	case RcodeNXDomain:
		return "NXDOMAIN"
	case RcodeNotImplemented:
		return "NOTIMP"
	default:
		return "UNKNOWN"
	}
}
