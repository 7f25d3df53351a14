// SPDX-License-Identifier: GPL-3.0-or-later

// Package minidns is a minimal DNS implementation over UDP: a wire
// codec for the subset of RFC 1035 needed to resolve A records, a
// stub client, and a small authoritative server backed by an
// in-memory name database.
//
// [NewQuery] constructs a query [*Message] and [*Message.ToBytes]
// packs it. [MessageFromBytes] unpacks a raw message, strictly for
// the question section and leniently for the answer section.
// [*Client] sends a single query and waits for one reply. [*Server]
// answers A questions from a [*Database].
//
// Authority and additional sections are not modeled: their header
// counts round-trip untouched, but no records are parsed or emitted
// for them.
package minidns
