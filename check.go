// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

package ght

import "fmt"

// Check walks the whole table and panics at the first broken invariant:
// chain links, tails, depths, every entry in the bucket its cached hash selects,
// cached hashes matching the hash function, and the element count.
// It is meant for tests and debugging, it costs O(entries).
func (t *Table[V]) Check() {
	if t.finalized {
		return
	}
	if len(t.heads) != t.Buckets {
		panic(fmt.Sprintf("Check: Buckets=%d, directory=%d", t.Buckets, len(t.heads)))
	}
	total := 0
	for b, hd := range t.heads {
		d := 0
		prev := nilNode
		for n := hd; n != nilNode; n = t.nodes[n].next {
			e := &t.nodes[n]
			if e.prev != prev {
				panic(fmt.Sprintf("Check: bucket %d node %d prev=%d want %d", b, n, e.prev, prev))
			}
			if t.indexOf(e.hash) != b {
				panic(fmt.Sprintf("Check: node %d hash %#x in bucket %d, belongs in %d", n, e.hash, b, t.indexOf(e.hash)))
			}
			if h := t.hf(e.key); h != e.hash {
				panic(fmt.Sprintf("Check: node %d key %q cached hash %#x, hash is %#x", n, e.key, e.hash, h))
			}
			prev = n
			d++
			if d > len(t.nodes) {
				panic(fmt.Sprintf("Check: bucket %d has a cycle", b))
			}
		}
		if t.tails[b] != prev {
			panic(fmt.Sprintf("Check: bucket %d tail=%d want %d", b, t.tails[b], prev))
		}
		if int(t.depth[b]) != d {
			panic(fmt.Sprintf("Check: bucket %d depth=%d counted %d", b, t.depth[b], d))
		}
		total += d
	}
	if total != t.Elements {
		panic(fmt.Sprintf("Check: Elements=%d counted %d", t.Elements, total))
	}
	free := 0
	for n := t.free; n != nilNode; n = t.nodes[n].next {
		free++
		if free > len(t.nodes) {
			panic("Check: free list has a cycle")
		}
	}
	if total+free != len(t.nodes) {
		panic(fmt.Sprintf("Check: %d in chains + %d free != %d nodes", total, free, len(t.nodes)))
	}
}
