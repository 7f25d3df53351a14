// SPDX-License-Identifier: GPL-3.0-or-later

package minidns

import (
	"maps"
	"net/netip"
	"strings"
)

// Database maps host names to IPv4 addresses for the server.
//
// Lookups are case-insensitive and safe to run concurrently.
// Populate the table with [*Database.Add] before serving starts:
// writes are not synchronized with reads.
type Database struct {
	records map[string]netip.Addr
}

// NewDatabase returns a [*Database] seeded with a handful of well
// known names, useful for trying out the server right away.
func NewDatabase() *Database {
	return &Database{records: map[string]netip.Addr{
		"localhost":    netip.AddrFrom4([4]byte{127, 0, 0, 1}),
		"test.local":   netip.AddrFrom4([4]byte{192, 168, 1, 100}),
		"server.local": netip.AddrFrom4([4]byte{192, 168, 1, 1}),
		"example.com":  netip.AddrFrom4([4]byte{93, 184, 216, 34}),
		"google.com":   netip.AddrFrom4([4]byte{8, 8, 8, 8}),
	}}
}

// Add registers addr under name, replacing any previous entry.
func (db *Database) Add(name string, addr netip.Addr) {
	db.records[strings.ToLower(name)] = addr
}

// Lookup resolves name to an address, ignoring case.
func (db *Database) Lookup(name string) (netip.Addr, bool) {
	addr, ok := db.records[strings.ToLower(name)]
	return addr, ok
}

// Records returns a copy of the table, for display.
func (db *Database) Records() map[string]netip.Addr {
	out := make(map[string]netip.Addr, len(db.records))
	maps.Copy(out, db.records)
	return out
}
