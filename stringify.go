// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ptrie

import (
	"bytes"
	"fmt"
	"io"
	"net/netip"
	"strings"
)

// kid, a directly covered prefix below some node, collected during the
// recursive descent.
type kid[V any] struct {
	// for traversing
	n   *node[V]
	is4 bool

	// for printing
	cidr netip.Prefix
	val  V
}

// MarshalText implements the [encoding.TextMarshaler] interface,
// just a wrapper for [Table.Fprint].
func (t *Table[V]) MarshalText() ([]byte, error) {
	w := new(bytes.Buffer)
	if err := t.Fprint(w); err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}

// String returns a hierarchical tree diagram of the ordered CIDRs
// as string, just a wrapper for [Table.Fprint].
// If Fprint returns an error, String panics.
func (t *Table[V]) String() string {
	w := new(strings.Builder)
	if err := t.Fprint(w); err != nil {
		panic(err)
	}

	return w.String()
}

// Fprint writes a hierarchical tree diagram of the ordered CIDRs
// with default formatted payload V to w. If w is nil, Fprint panics.
//
// The order from top to bottom is in ascending order of the prefix
// address and the subtree structure is determined by the CIDRs
// coverage.
//
//	▼
//	├─ 10.0.0.0/8 (V)
//	│  ├─ 10.1.0.0/16 (V)
//	│  │  └─ 10.1.2.0/24 (V)
//	│  └─ 10.2.0.0/16 (V)
//	└─ 192.168.0.0/16 (V)
//	▼
//	└─ 2001:db8::/32 (V)
//	   └─ 2001:db8:1::/48 (V)
func (t *Table[V]) Fprint(w io.Writer) error {
	// v4
	if err := t.fprint(w, true); err != nil {
		return err
	}

	// v6
	if err := t.fprint(w, false); err != nil {
		return err
	}

	return nil
}

// fprint is the version dependent adapter to fprintRec.
func (t *Table[V]) fprint(w io.Writer, is4 bool) error {
	trie := t.trieByVersion(is4)
	if trie.IsEmpty() {
		return nil
	}

	if _, err := fmt.Fprint(w, "▼\n"); err != nil {
		return err
	}

	// the root node itself may already be a data node
	var kids []kid[V]
	collectKids(trie.root, is4, &kids)

	return fprintRec(w, kids, "")
}

// fprintRec, the output is a hierarchical CIDR tree starting with
// these kids.
func fprintRec[V any](w io.Writer, kids []kid[V], pad string) error {
	// symbols used in tree
	glyphe := "├─ "
	spacer := "│  "

	// for all direct kids under this node ...
	for i, k := range kids {
		// ... treat last kid special
		if i == len(kids)-1 {
			glyphe = "└─ "
			spacer = "   "
		}

		// print prefix and val, padded with glyphe
		if _, err := fmt.Fprintf(w, "%s%s (%v)\n", pad+glyphe, k.cidr, k.val); err != nil {
			return err
		}

		// rec-descent with this kid's own direct kids
		if err := fprintRec(w, directKids(k.n, k.is4), pad+spacer); err != nil {
			return err
		}
	}

	return nil
}

// directKids returns the nearest data descendants below n, the
// prefixes n covers without any stored prefix in between.
func directKids[V any](n *node[V], is4 bool) []kid[V] {
	var kids []kid[V]
	collectKids(n.left, is4, &kids)
	collectKids(n.right, is4, &kids)
	return kids
}

// collectKids descends through glue until it hits data nodes. Left
// before right keeps the kids in natural CIDR sort order, no explicit
// sorting needed.
func collectKids[V any](n *node[V], is4 bool, kids *[]kid[V]) {
	if n == nil {
		return
	}

	if n.isData {
		*kids = append(*kids, kid[V]{
			n:    n,
			is4:  is4,
			cidr: prefixFromKey(n.key, is4),
			val:  n.value,
		})
		return
	}

	collectKids(n.left, is4, kids)
	collectKids(n.right, is4, kids)
}
