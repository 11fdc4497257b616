// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ptrie_test

import (
	"net/netip"
	"testing"

	"github.com/gaissmai/ptrie"
)

func TestTableEqual(t *testing.T) {
	t.Parallel()

	a := new(ptrie.Table[int])
	b := new(ptrie.Table[int])

	if !a.Equal(b) {
		t.Error("empty tables are not Equal")
	}

	items := []struct {
		pfx string
		tag int
	}{
		{"10.0.0.0/8", 100},
		{"10.1.0.0/16", 101},
		{"2001:db8::/32", 600},
	}

	for _, item := range items {
		a.Insert(netip.MustParsePrefix(item.pfx), item.tag)
	}
	// same content, reversed insertion order
	for i := len(items) - 1; i >= 0; i-- {
		b.Insert(netip.MustParsePrefix(items[i].pfx), items[i].tag)
	}

	if !a.Equal(b) || !b.Equal(a) {
		t.Error("tables with equal content are not Equal")
	}

	b.Insert(netip.MustParsePrefix("10.1.0.0/16"), 999)
	if a.Equal(b) {
		t.Error("tables with different values are Equal")
	}

	b.Delete(netip.MustParsePrefix("10.1.0.0/16"))
	if a.Equal(b) {
		t.Error("tables with different prefixes are Equal")
	}
}

// val implements the Equaler interface, two vals are equal if the id
// matches, the note is ignored.
type val struct {
	id   int
	note string
}

func (v val) Equal(other val) bool {
	return v.id == other.id
}

func TestTableEqualerOverride(t *testing.T) {
	t.Parallel()

	a := new(ptrie.Table[val])
	b := new(ptrie.Table[val])

	a.Insert(netip.MustParsePrefix("10.0.0.0/8"), val{id: 1, note: "a"})
	b.Insert(netip.MustParsePrefix("10.0.0.0/8"), val{id: 1, note: "b"})

	if !a.Equal(b) {
		t.Error("Equaler override not used, notes must be ignored")
	}

	b.Insert(netip.MustParsePrefix("10.0.0.0/8"), val{id: 2, note: "b"})
	if a.Equal(b) {
		t.Error("different ids must not be Equal")
	}
}
