// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package random generates random, normalized prefixes and addresses
// for tests and benchmarks.
package random

import (
	"math/rand/v2"
	"net/netip"
)

// Addr4 returns a random IPv4 address.
func Addr4(prng *rand.Rand) netip.Addr {
	var b [4]byte
	for i := range b {
		b[i] = byte(prng.Uint32() & 0xff)
	}
	return netip.AddrFrom4(b)
}

// Addr6 returns a random IPv6 address.
func Addr6(prng *rand.Rand) netip.Addr {
	var b [16]byte
	for i := range b {
		b[i] = byte(prng.Uint32() & 0xff)
	}
	return netip.AddrFrom16(b)
}

// Addr returns a random IPv4 or IPv6 address, both families equally
// likely.
func Addr(prng *rand.Rand) netip.Addr {
	if prng.IntN(2) == 1 {
		return Addr4(prng)
	}
	return Addr6(prng)
}

// Prefix4 returns a random, normalized IPv4 prefix.
func Prefix4(prng *rand.Rand) netip.Prefix {
	pfx, err := Addr4(prng).Prefix(prng.IntN(33))
	if err != nil {
		panic(err)
	}
	return pfx
}

// Prefix6 returns a random, normalized IPv6 prefix.
func Prefix6(prng *rand.Rand) netip.Prefix {
	pfx, err := Addr6(prng).Prefix(prng.IntN(129))
	if err != nil {
		panic(err)
	}
	return pfx
}

// Prefix returns a random, normalized prefix, both families equally
// likely.
func Prefix(prng *rand.Rand) netip.Prefix {
	if prng.IntN(2) == 1 {
		return Prefix4(prng)
	}
	return Prefix6(prng)
}

// Prefixes returns n distinct random prefixes, both families mixed.
func Prefixes(prng *rand.Rand, n int) []netip.Prefix {
	return distinct(prng, n, Prefix)
}

// Prefixes4 returns n distinct random IPv4 prefixes.
func Prefixes4(prng *rand.Rand, n int) []netip.Prefix {
	return distinct(prng, n, Prefix4)
}

// Prefixes6 returns n distinct random IPv6 prefixes.
func Prefixes6(prng *rand.Rand, n int) []netip.Prefix {
	return distinct(prng, n, Prefix6)
}

func distinct(prng *rand.Rand, n int, gen func(*rand.Rand) netip.Prefix) []netip.Prefix {
	seen := make(map[netip.Prefix]bool, n)
	pfxs := make([]netip.Prefix, 0, n)

	for len(pfxs) < n {
		pfx := gen(prng)
		if !seen[pfx] {
			seen[pfx] = true
			pfxs = append(pfxs, pfx)
		}
	}
	return pfxs
}
