// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ptrie

import (
	"iter"
	"net/netip"
)

// Table is an IPv4 and IPv6 longest-prefix-match table with payload V,
// a pair of tries and a family dispatcher. The zero value is ready to
// use.
//
// The table is built once and queried read-only thereafter, it is not
// safe for concurrent mutation.
type Table[V any] struct {
	trie4 Trie[V]
	trie6 Trie[V]
}

// trieByVersion, select the trie for the ip version.
func (t *Table[V]) trieByVersion(is4 bool) *Trie[V] {
	if is4 {
		return &t.trie4
	}
	return &t.trie6
}

// keyFromPrefix builds a trie key from pfx: raw address bytes written
// into the storage, then the logical length declared. pfx must be
// valid and masked.
func keyFromPrefix(pfx netip.Prefix) BitString {
	ip := pfx.Addr()
	if ip.Is4() {
		key := NewBitString(MaxBits4)
		a4 := ip.As4()
		copy(key.Storage(), a4[:])
		key.SetLen(pfx.Bits())
		return key
	}

	key := NewBitString(MaxBits6)
	a16 := ip.As16()
	copy(key.Storage(), a16[:])
	key.SetLen(pfx.Bits())
	return key
}

// keyFromAddr builds a full-width trie key, 32 or 128 bits, from ip.
func keyFromAddr(ip netip.Addr) BitString {
	if ip.Is4() {
		key := NewBitString(MaxBits4)
		a4 := ip.As4()
		copy(key.Storage(), a4[:])
		key.SetLen(MaxBits4)
		return key
	}

	key := NewBitString(MaxBits6)
	a16 := ip.As16()
	copy(key.Storage(), a16[:])
	key.SetLen(MaxBits6)
	return key
}

// prefixFromKey is the inverse of keyFromPrefix.
func prefixFromKey(key BitString, is4 bool) netip.Prefix {
	var ip netip.Addr
	if is4 {
		ip = netip.AddrFrom4([4]byte(key.octets[:4]))
	} else {
		ip = netip.AddrFrom16(key.octets)
	}

	return netip.PrefixFrom(ip, key.Len()).Masked()
}

// Insert adds pfx with value val. If pfx is already present in the
// table its value is set to val. Invalid prefixes are silently ignored.
func (t *Table[V]) Insert(pfx netip.Prefix, val V) {
	if !pfx.IsValid() {
		return
	}

	// always normalize the prefix
	pfx = pfx.Masked()

	t.trieByVersion(pfx.Addr().Is4()).Insert(keyFromPrefix(pfx), val)
}

// Get returns the value of pfx if the table contains exactly this
// prefix, same address bits and same length.
func (t *Table[V]) Get(pfx netip.Prefix) (val V, ok bool) {
	if !pfx.IsValid() {
		return val, false
	}
	pfx = pfx.Masked()

	return t.trieByVersion(pfx.Addr().Is4()).Get(keyFromPrefix(pfx))
}

// Lookup returns the value of the longest prefix covering ip and true
// on success, the query every routing table answers.
func (t *Table[V]) Lookup(ip netip.Addr) (val V, ok bool) {
	if !ip.IsValid() {
		return val, false
	}

	return t.trieByVersion(ip.Is4()).Lookup(keyFromAddr(ip))
}

// Delete removes pfx from the table and reports whether it was present.
func (t *Table[V]) Delete(pfx netip.Prefix) bool {
	if !pfx.IsValid() {
		return false
	}
	pfx = pfx.Masked()

	return t.trieByVersion(pfx.Addr().Is4()).Delete(keyFromPrefix(pfx))
}

// Size returns the number of prefixes in the table.
func (t *Table[V]) Size() int {
	return t.trie4.Size() + t.trie6.Size()
}

// Size4 returns the number of IPv4 prefixes.
func (t *Table[V]) Size4() int {
	return t.trie4.Size()
}

// Size6 returns the number of IPv6 prefixes.
func (t *Table[V]) Size6() int {
	return t.trie6.Size()
}

// Clear removes all prefixes from both tries.
func (t *Table[V]) Clear() {
	t.trie4.Clear()
	t.trie6.Clear()
}

// All4 returns an iterator over the IPv4 prefixes in natural CIDR sort
// order.
func (t *Table[V]) All4() iter.Seq2[netip.Prefix, V] {
	return func(yield func(netip.Prefix, V) bool) {
		for key, val := range t.trie4.All() {
			if !yield(prefixFromKey(key, true), val) {
				return
			}
		}
	}
}

// All6 returns an iterator over the IPv6 prefixes in natural CIDR sort
// order.
func (t *Table[V]) All6() iter.Seq2[netip.Prefix, V] {
	return func(yield func(netip.Prefix, V) bool) {
		for key, val := range t.trie6.All() {
			if !yield(prefixFromKey(key, false), val) {
				return
			}
		}
	}
}

// All returns an iterator over all prefixes, IPv4 first, both families
// in natural CIDR sort order.
func (t *Table[V]) All() iter.Seq2[netip.Prefix, V] {
	return func(yield func(netip.Prefix, V) bool) {
		for pfx, val := range t.All4() {
			if !yield(pfx, val) {
				return
			}
		}
		for pfx, val := range t.All6() {
			if !yield(pfx, val) {
				return
			}
		}
	}
}
