// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

package ght

// Allocator supplies the block that holds an entry's copy of its key.
// Alloc returns a block of exactly size bytes, or nil if it can't.
// Free takes back a block previously returned by Alloc on the same allocator.
// Only key blocks come from the Allocator. Entry metadata lives in the
// table's node slab, grown by append, so a failing Allocator makes Insert
// fail but can't starve the slab.
type Allocator interface {
	Alloc(size int) []byte
	Free(b []byte)
}

// heap is the default allocator, it just uses the Go heap.
type heap struct{}

func (heap) Alloc(size int) []byte {
	return make([]byte, size)
}

func (heap) Free(b []byte) {}

// DefaultAllocator is used when no allocator is configured.
var DefaultAllocator Allocator = heap{}
