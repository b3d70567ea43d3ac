// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

package ght

import (
	"hash/crc32"

	"github.com/cespare/xxhash/v2"
	"github.com/dataence/cityhash"
	"github.com/pkg/errors"
	"github.com/spaolacci/murmur3"
	"leb.io/aeshash"
	"leb.io/ght/jenkins264"
	"leb.io/ght/jenkins3"
)

// HashFunc maps a key to a 32 bit hash. It must be deterministic and
// accept an empty key.
type HashFunc func(key []byte) uint32

// OneAtATime is Bob Jenkins' one-at-a-time hash, the default.
func OneAtATime(key []byte) uint32 {
	var h uint32
	for _, c := range key {
		h += uint32(c)
		h += h << 10
		h ^= h >> 6
	}
	h += h << 3
	h ^= h >> 11
	h += h << 15
	return h
}

// Rotating is the classic rotating hash. Fast and weak.
func Rotating(key []byte) uint32 {
	h := uint32(len(key))
	for _, c := range key {
		h = (h << 4) ^ (h >> 28) ^ uint32(c)
	}
	return h
}

// CRC uses the IEEE CRC-32 of the key as its hash.
func CRC(key []byte) uint32 {
	return crc32.ChecksumIEEE(key)
}

// HashNames lists the names accepted by HashByName.
var HashNames = []string{"oaat", "rot", "crc", "j3", "j264", "m3", "city", "aes", "xx"}

// HashByName selects a hash function by name. The seed is used by j3, j264, m3 and aes,
// the others ignore it. The empty name selects the default, oaat.
func HashByName(name string, seed uint64) (HashFunc, error) {
	switch name {
	case "", "oaat":
		return OneAtATime, nil
	case "rot":
		return Rotating, nil
	case "crc":
		return CRC, nil
	case "j3":
		s := uint32(seed)
		return func(key []byte) uint32 { return jenkins3.Sum32(key, s) }, nil
	case "j264":
		return func(key []byte) uint32 { return jenkins264.Sum32(key, seed) }, nil
	case "m3":
		s := uint32(seed)
		return func(key []byte) uint32 { return murmur3.Sum32WithSeed(key, s) }, nil
	case "city":
		return func(key []byte) uint32 { return cityhash.CityHash32(key, uint32(len(key))) }, nil
	case "aes":
		return func(key []byte) uint32 { return uint32(aeshash.Hash(key, seed)) }, nil
	case "xx":
		return func(key []byte) uint32 { return uint32(xxhash.Sum64(key)) }, nil
	default:
		return nil, errors.Errorf("ght: unknown hash function %q", name)
	}
}
