// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

package ght

import "bytes"

// nilNode terminates a chain and the free list.
const nilNode int32 = -1

// An entry. Entries live in the table's slab and are linked by index.
// key is the allocator block holding the copy of the key.
type node[V any] struct {
	key  []byte
	hash uint32
	prev int32
	next int32
	val  V
}

// makeDirectory replaces the directory with n empty buckets.
func (t *Table[V]) makeDirectory(n int) {
	t.heads = make([]int32, n)
	t.tails = make([]int32, n)
	t.depth = make([]int32, n)
	for b := range t.heads {
		t.heads[b], t.tails[b] = nilNode, nilNode
	}
	t.Buckets = n
}

func (t *Table[V]) indexOf(h uint32) int {
	return int(h % uint32(len(t.heads)))
}

// newNode takes a node from the free list or grows the slab.
func (t *Table[V]) newNode(key []byte, h uint32, val V) int32 {
	var n int32
	if t.free != nilNode {
		n = t.free
		t.free = t.nodes[n].next
	} else {
		t.nodes = append(t.nodes, node[V]{})
		n = int32(len(t.nodes) - 1)
	}
	t.nodes[n] = node[V]{key: key, hash: h, prev: nilNode, next: nilNode, val: val}
	return n
}

// freeNode puts an unlinked node on the free list, dropping its references.
func (t *Table[V]) freeNode(n int32) {
	t.nodes[n] = node[V]{prev: nilNode, next: t.free}
	t.free = n
}

// find returns the node in bucket b holding key, or nilNode.
func (t *Table[V]) find(b int, h uint32, key []byte) int32 {
	for n := t.heads[b]; n != nilNode; n = t.nodes[n].next {
		e := &t.nodes[n]
		if e.hash == h && len(e.key) == len(key) && bytes.Equal(e.key, key) {
			return n
		}
	}
	return nilNode
}

func (t *Table[V]) pushFront(b int, n int32) {
	e := &t.nodes[n]
	e.prev = nilNode
	e.next = t.heads[b]
	if e.next != nilNode {
		t.nodes[e.next].prev = n
	} else {
		t.tails[b] = n
	}
	t.heads[b] = n
	t.depth[b]++
}

func (t *Table[V]) unlink(b int, n int32) {
	e := &t.nodes[n]
	if e.prev != nilNode {
		t.nodes[e.prev].next = e.next
	} else {
		t.heads[b] = e.next
	}
	if e.next != nilNode {
		t.nodes[e.next].prev = e.prev
	} else {
		t.tails[b] = e.prev
	}
	e.prev, e.next = nilNode, nilNode
	t.depth[b]--
}

func (t *Table[V]) moveToFront(b int, n int32) {
	if t.heads[b] == n {
		return
	}
	t.unlink(b, n)
	t.pushFront(b, n)
}

// swapPrev exchanges n with its predecessor: pp <-> p <-> n <-> nn becomes pp <-> n <-> p <-> nn.
func (t *Table[V]) swapPrev(b int, n int32) {
	p := t.nodes[n].prev
	if p == nilNode {
		return
	}
	pp, nn := t.nodes[p].prev, t.nodes[n].next
	if pp != nilNode {
		t.nodes[pp].next = n
	} else {
		t.heads[b] = n
	}
	if nn != nilNode {
		t.nodes[nn].prev = p
	} else {
		t.tails[b] = p
	}
	t.nodes[n].prev, t.nodes[n].next = pp, p
	t.nodes[p].prev, t.nodes[p].next = n, nn
}
