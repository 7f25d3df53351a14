// SPDX-License-Identifier: GPL-3.0-or-later

package minidns

import (
	"fmt"
	"strings"
)

const (
	// maxLabelLength is the longest label allowed by RFC 1035.
	maxLabelLength = 63

	// maxPointerHops bounds how many compression pointers a single
	// name may chase, so that a crafted packet cannot loop the
	// decoder.
	maxPointerHops = 16
)

// EncodeName converts a dotted domain name into its wire form: each
// label prefixed by its length, then a zero terminator. For example
// "google.com" becomes "\x06google\x03com\x00". A label longer than
// [maxLabelLength] bytes yields [ErrParse].
func EncodeName(name string) ([]byte, error) {
	out := make([]byte, 0, len(name)+2)
	for _, label := range strings.Split(name, ".") {
		if len(label) > maxLabelLength {
			return nil, fmt.Errorf("name: label %q longer than %d bytes: %w", label, maxLabelLength, ErrParse)
		}
		out = append(out, byte(len(label)))
		out = append(out, label...)
	}
	return append(out, 0), nil
}

// DecodeName reads a wire-format name from data starting at offset
// and returns the dotted name together with the offset of the first
// byte after it.
//
// Compression pointers (RFC 1035 section 4.1.4) are followed within
// the same buffer. After the first pointer the returned offset is
// fixed just past that pointer, no matter where later pointers lead.
// Truncated labels, truncated pointers, and chains of more than
// [maxPointerHops] pointers yield [ErrParse].
func DecodeName(data []byte, offset int) (string, int, error) {
	var labels []string
	pos := offset
	resume := 0
	jumped := false
	hops := 0

	for {
		if pos >= len(data) {
			return "", 0, fmt.Errorf("name: truncated at offset %d: %w", pos, ErrParse)
		}
		length := int(data[pos])

		// A byte with the top two bits set is not a label length
		// but the first half of a 14-bit pointer into the buffer.
		if length&0xC0 == 0xC0 {
			if pos+1 >= len(data) {
				return "", 0, fmt.Errorf("name: pointer truncated at offset %d: %w", pos, ErrParse)
			}
			if hops++; hops > maxPointerHops {
				return "", 0, fmt.Errorf("name: more than %d compression pointers: %w", maxPointerHops, ErrParse)
			}
			if !jumped {
				resume = pos + 2
				jumped = true
			}
			pos = (length&0x3F)<<8 | int(data[pos+1])
			continue
		}

		pos++
		if length == 0 {
			break
		}
		if pos+length > len(data) {
			return "", 0, fmt.Errorf("name: label truncated at offset %d: %w", pos, ErrParse)
		}
		labels = append(labels, string(data[pos:pos+length]))
		pos += length
	}

	if jumped {
		return strings.Join(labels, "."), resume, nil
	}
	return strings.Join(labels, "."), pos, nil
}
