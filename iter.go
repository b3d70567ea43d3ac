// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

package ght

// Iterator walks a table in bucket order and then chain order.
// The entry that will be returned next is found before the current one is
// handed out, so the current entry may be removed while iterating.
// Inserting or rehashing during an iteration is not supported. After
// Finalize a live iterator is exhausted.
// The zero Iterator is exhausted, start with First.
type Iterator struct {
	bucket int   // bucket holding next
	next   int32 // node returned by the next call to Next, plus one
}

// First positions it at the first entry and returns it.
func (t *Table[V]) First(it *Iterator) (key []byte, val V, ok bool) {
	b, n := t.scan(0)
	it.bucket, it.next = b, n+1
	return t.Next(it)
}

// Next returns the entry at it and advances it.
// The key must not be modified and is only valid while the entry is in the table.
func (t *Table[V]) Next(it *Iterator) (key []byte, val V, ok bool) {
	n := it.next - 1
	if n == nilNode || int(n) >= len(t.nodes) {
		return nil, val, false
	}
	if nx := t.nodes[n].next; nx != nilNode {
		it.next = nx + 1
	} else {
		b, nb := t.scan(it.bucket + 1)
		it.bucket, it.next = b, nb+1
	}
	return t.nodes[n].key, t.nodes[n].val, true
}

// scan finds the first non empty bucket at or after b.
func (t *Table[V]) scan(b int) (int, int32) {
	for ; b < len(t.heads); b++ {
		if t.heads[b] != nilNode {
			return b, t.heads[b]
		}
	}
	return b, nilNode
}

// Map calls iter for every entry until it returns true.
// iter may remove the entry it was called with.
func (t *Table[V]) Map(iter func(key []byte, val V) (stop bool)) {
	var it Iterator
	for k, v, ok := t.First(&it); ok; k, v, ok = t.Next(&it) {
		if iter(k, v) {
			return
		}
	}
}
