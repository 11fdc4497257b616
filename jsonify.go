// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package ptrie

import (
	"encoding/json"
	"net/netip"
)

// DumpListNode contains CIDR, Value and Subnets, representing the trie
// in a sorted, recursive representation, especially useful for
// serialization.
type DumpListNode[V any] struct {
	CIDR    netip.Prefix      `json:"cidr"`
	Value   V                 `json:"value"`
	Subnets []DumpListNode[V] `json:"subnets,omitempty"`
}

// MarshalJSON dumps the table into two lists: for ipv4 and ipv6.
// Every root and its subnets are arrays, not maps, because the order
// matters.
func (t *Table[V]) MarshalJSON() ([]byte, error) {
	result := struct {
		Ipv4 []DumpListNode[V] `json:"ipv4,omitempty"`
		Ipv6 []DumpListNode[V] `json:"ipv6,omitempty"`
	}{
		Ipv4: t.DumpList4(),
		Ipv6: t.DumpList6(),
	}

	return json.Marshal(result)
}

// DumpList4 dumps the ipv4 tree into a list of roots and their subnets.
func (t *Table[V]) DumpList4() []DumpListNode[V] {
	if t.trie4.IsEmpty() {
		return nil
	}

	var kids []kid[V]
	collectKids(t.trie4.root, true, &kids)
	return dumpList(kids)
}

// DumpList6 dumps the ipv6 tree into a list of roots and their subnets.
func (t *Table[V]) DumpList6() []DumpListNode[V] {
	if t.trie6.IsEmpty() {
		return nil
	}

	var kids []kid[V]
	collectKids(t.trie6.root, false, &kids)
	return dumpList(kids)
}

func dumpList[V any](kids []kid[V]) []DumpListNode[V] {
	nodes := make([]DumpListNode[V], 0, len(kids))
	for _, k := range kids {
		nodes = append(nodes, DumpListNode[V]{
			CIDR:    k.cidr,
			Value:   k.val,
			Subnets: dumpList(directKids(k.n, k.is4)),
		})
	}

	return nodes
}
