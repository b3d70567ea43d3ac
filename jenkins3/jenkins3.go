// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

// Package jenkins3 implements Bob Jenkins' lookup3 hashlittle2.
// See http://burtleburtle.net/bob/c/lookup3.c
package jenkins3

import (
	"encoding/binary"
	"hash"
)

// The size of a jenkins3 32 bit hash in bytes.
const Size = 4

var _ hash.Hash32 = new(Digest)

// Digest buffers everything written to it, lookup3 is not a streaming hash.
type Digest struct {
	seed uint32
	buf  []byte
}

func rot(x, k uint32) uint32 {
	return x<<k | x>>(32-k)
}

func mix(a, b, c uint32) (uint32, uint32, uint32) {
	a -= c
	a ^= rot(c, 4)
	c += b
	b -= a
	b ^= rot(a, 6)
	a += c
	c -= b
	c ^= rot(b, 8)
	b += a
	a -= c
	a ^= rot(c, 16)
	c += b
	b -= a
	b ^= rot(a, 19)
	a += c
	c -= b
	c ^= rot(b, 4)
	b += a
	return a, b, c
}

func final(a, b, c uint32) (uint32, uint32, uint32) {
	c ^= b
	c -= rot(b, 14)
	a ^= c
	a -= rot(c, 11)
	b ^= a
	b -= rot(a, 25)
	c ^= b
	c -= rot(b, 16)
	a ^= c
	a -= rot(c, 4)
	b ^= a
	b -= rot(a, 14)
	c ^= b
	c -= rot(b, 24)
	return a, b, c
}

// Hash2 is hashlittle2. It returns two 32 bit hashes of k, pc is better mixed than pb.
// The inputs pc and pb are the two seeds.
func Hash2(k []byte, pc, pb uint32) (rpc, rpb uint32) {
	var a, b, c uint32
	a = 0xdeadbeef + uint32(len(k)) + pc
	b, c = a, a
	c += pb

	le := binary.LittleEndian
	for len(k) > 12 {
		a += le.Uint32(k[0:])
		b += le.Uint32(k[4:])
		c += le.Uint32(k[8:])
		a, b, c = mix(a, b, c)
		k = k[12:]
	}

	// last block, the switch falls through from the longest tail to the shortest
	switch len(k) {
	case 12:
		c += uint32(k[11]) << 24
		fallthrough
	case 11:
		c += uint32(k[10]) << 16
		fallthrough
	case 10:
		c += uint32(k[9]) << 8
		fallthrough
	case 9:
		c += uint32(k[8])
		fallthrough
	case 8:
		b += uint32(k[7]) << 24
		fallthrough
	case 7:
		b += uint32(k[6]) << 16
		fallthrough
	case 6:
		b += uint32(k[5]) << 8
		fallthrough
	case 5:
		b += uint32(k[4])
		fallthrough
	case 4:
		a += uint32(k[3]) << 24
		fallthrough
	case 3:
		a += uint32(k[2]) << 16
		fallthrough
	case 2:
		a += uint32(k[1]) << 8
		fallthrough
	case 1:
		a += uint32(k[0])
	case 0:
		return c, b // zero length strings require no mixing
	}
	_, b, c = final(a, b, c)
	return c, b
}

// Sum32 returns the 32 bit hash of data given the seed.
func Sum32(data []byte, seed uint32) uint32 {
	rpc, _ := Hash2(data, seed, seed)
	return rpc
}

// New returns a new hash.Hash32 that computes the jenkins3 hash with seed.
func New(seed uint32) hash.Hash32 {
	return &Digest{seed: seed}
}

// Reset the hash state.
func (d *Digest) Reset() {
	d.buf = d.buf[:0]
}

// Size of the resulting hash.
func (d *Digest) Size() int { return Size }

// BlockSize is 1 byte.
func (d *Digest) BlockSize() int { return 1 }

// Write accumulates p, the hash is computed by Sum and Sum32.
func (d *Digest) Write(p []byte) (nn int, err error) {
	d.buf = append(d.buf, p...)
	return len(p), nil
}

// Sum appends the current hash to b, big endian.
func (d *Digest) Sum(b []byte) []byte {
	h := d.Sum32()
	return append(b, byte(h>>24), byte(h>>16), byte(h>>8), byte(h))
}

// Sum32 returns the current hash.
func (d *Digest) Sum32() uint32 {
	return Sum32(d.buf, d.seed)
}
