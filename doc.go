// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package ptrie provides longest-prefix-match lookups on IPv4 and IPv6
// addresses with a path-compressed binary trie (Patricia trie).
//
// The package has two layers:
//
//   - [Trie]: the generic core, a binary trie over [BitString] keys whose
//     internal nodes may or may not carry a payload. Branches skip over
//     bit positions on which no stored key differs.
//   - [Table]: a thin pair of tries, one per address family, with a
//     [net/netip] based API for routing-table style usage.
//
// The trie is family-agnostic, it only sees bit-strings in network bit
// order. Tables map prefixes to an opaque payload V, the motivating use
// is mapping addresses to autonomous system numbers.
//
// The package is not safe for concurrent mutation, build the table first
// and query it read-only afterwards.
package ptrie
