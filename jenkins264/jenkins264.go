// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.
// See http://burtleburtle.net/bob/c/lookup8.c and http://burtleburtle.net/bob/hash/evahash.html

// Package jenkins264 is Bob Jenkins' second generation 64 bit hash, lookup8.
package jenkins264

import "encoding/binary"

const golden = 0x9e3779b97f4a7c13

func mix64(a, b, c uint64) (uint64, uint64, uint64) {
	a -= b
	a -= c
	a ^= c >> 43
	b -= c
	b -= a
	b ^= a << 9
	c -= a
	c -= b
	c ^= b >> 8
	a -= b
	a -= c
	a ^= c >> 38
	b -= c
	b -= a
	b ^= a << 23
	c -= a
	c -= b
	c ^= b >> 5
	a -= b
	a -= c
	a ^= c >> 35
	b -= c
	b -= a
	b ^= a << 49
	c -= a
	c -= b
	c ^= b >> 11
	a -= b
	a -= c
	a ^= c >> 12
	b -= c
	b -= a
	b ^= a << 18
	c -= a
	c -= b
	c ^= b >> 22
	return a, b, c
}

// Hash returns the 64 bit hash of k. seed can be any value, the previous hash
// of a key for example.
func Hash(k []byte, seed uint64) uint64 {
	a, b, c := seed, seed, uint64(golden)
	length := uint64(len(k))
	for ; len(k) >= 24; k = k[24:] {
		a += binary.LittleEndian.Uint64(k[0:])
		b += binary.LittleEndian.Uint64(k[8:])
		c += binary.LittleEndian.Uint64(k[16:])
		a, b, c = mix64(a, b, c)
	}

	// the low byte of c is reserved for the length
	c += length
	for i := len(k) - 1; i >= 0; i-- {
		v := uint64(k[i])
		switch {
		case i >= 16:
			c += v << (8 * uint(i-15))
		case i >= 8:
			b += v << (8 * uint(i-8))
		default:
			a += v << (8 * uint(i))
		}
	}
	_, _, c = mix64(a, b, c)
	return c
}

// Sum32 folds Hash into 32 bits.
func Sum32(k []byte, seed uint64) uint32 {
	h := Hash(k, seed)
	return uint32(h) ^ uint32(h>>32)
}
