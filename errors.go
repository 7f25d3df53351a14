// SPDX-License-Identifier: GPL-3.0-or-later

package minidns

import "errors"

// Errors emitted while encoding, decoding, and exchanging DNS
// messages. Functions wrap these sentinels with context, so test
// for them using [errors.Is].
var (
	// ErrParse means that a wire-format message, name, or record
	// is malformed or truncated.
	ErrParse = errors.New("cannot parse DNS message")

	// ErrUnsupportedCode means that a numeric record-type or class
	// code is not part of the supported set.
	ErrUnsupportedCode = errors.New("unsupported DNS code")

	// ErrTimeout means that no response arrived within the
	// configured timeout.
	ErrTimeout = errors.New("query timed out")

	// ErrTransport means that sending or receiving a datagram
	// failed at the socket level.
	ErrTransport = errors.New("transport failure")
)

// ErrInvalidResponse means that a response does not plausibly answer
// the query it is checked against. Emitted by [ValidateResponse].
var ErrInvalidResponse = errors.New("invalid DNS response")
