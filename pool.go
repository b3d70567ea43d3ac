// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

package ght

import (
	"unsafe"

	"github.com/willf/bitset"
)

// Pool is an Allocator for tables whose keys have a small maximum length,
// for example encoded numeric keys. Blocks are carved out of chunks of
// n blocks each and a bitset per chunk records which blocks are in use.
// A chunk is returned to the Go heap when its last block is freed.
// Requests larger than the block size are rejected.
type Pool struct {
	size   int // largest block served
	stride int // distance between blocks, at least 1 so every block has an address
	n      int // blocks per chunk
	max    int // maximum number of chunks, 0 means no limit
	chunks []*chunk
	Allocs int // successful allocations
	Frees  int // blocks returned
	Fails  int // rejected allocations
}

type chunk struct {
	mem  []byte
	used *bitset.BitSet
	base uintptr
}

// NewPool returns a pool serving blocks of up to size bytes, n blocks per chunk.
// If maxChunks > 0 the pool never grows beyond maxChunks chunks and Alloc
// returns nil once they are full.
func NewPool(size, n, maxChunks int) *Pool {
	if size < 0 || n <= 0 || maxChunks < 0 {
		panic("NewPool")
	}
	stride := size
	if stride == 0 {
		stride = 1
	}
	return &Pool{size: size, stride: stride, n: n, max: maxChunks}
}

// Alloc returns a zeroed block of size bytes, which must not exceed p's block size.
func (p *Pool) Alloc(size int) []byte {
	if size < 0 || size > p.size {
		p.Fails++
		return nil
	}
	for _, c := range p.chunks {
		if i, ok := c.used.NextClear(0); ok {
			return p.take(c, i, size)
		}
	}
	if p.max > 0 && len(p.chunks) >= p.max {
		p.Fails++
		return nil
	}
	c := &chunk{mem: make([]byte, p.stride*p.n), used: bitset.New(uint(p.n))}
	c.base = uintptr(unsafe.Pointer(&c.mem[0]))
	p.chunks = append(p.chunks, c)
	return p.take(c, 0, size)
}

func (p *Pool) take(c *chunk, i uint, size int) []byte {
	c.used.Set(i)
	p.Allocs++
	off := int(i) * p.stride
	b := c.mem[off : off+size : off+p.stride]
	for k := range b {
		b[k] = 0
	}
	return b
}

// Free returns b to its chunk. Freeing a block twice, or a block that did not
// come from p, panics.
func (p *Pool) Free(b []byte) {
	if cap(b) == 0 {
		panic("Pool.Free: empty block")
	}
	ptr := uintptr(unsafe.Pointer(&b[:1][0]))
	for k, c := range p.chunks {
		if ptr < c.base || ptr >= c.base+uintptr(len(c.mem)) {
			continue
		}
		i := uint((ptr - c.base) / uintptr(p.stride))
		if !c.used.Test(i) {
			panic("Pool.Free: double free")
		}
		c.used.Clear(i)
		p.Frees++
		if c.used.None() {
			p.chunks = append(p.chunks[:k], p.chunks[k+1:]...)
		}
		return
	}
	panic("Pool.Free: block not from this pool")
}

// InUse returns the number of blocks currently handed out.
func (p *Pool) InUse() int {
	n := 0
	for _, c := range p.chunks {
		n += int(c.used.Count())
	}
	return n
}

// Chunks returns the number of chunks currently held.
func (p *Pool) Chunks() int {
	return len(p.chunks)
}
