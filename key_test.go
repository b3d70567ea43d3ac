// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

package ght_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	. "leb.io/ght"
)

func TestKeyEncoder(t *testing.T) {
	e := NewKeyEncoder()
	seen := map[string]uint64{}
	for _, v := range []uint64{0, 1, 2, 127, 128, 255, 256, 1 << 20, 1<<32 - 1, 1 << 32, 1<<64 - 1} {
		k, err := e.Key(v)
		require.NoError(t, err)
		prev, dup := seen[string(k)]
		require.False(t, dup, "%d and %d encode the same", v, prev)
		seen[string(k)] = v
	}

	type point struct {
		X, Y int32
	}
	a := string(e.MustKey(point{1, 2}))
	b := string(e.MustKey(point{2, 1}))
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, string(e.MustKey(point{1, 2})))
}

func TestKeyEncoderTable(t *testing.T) {
	e := NewKeyEncoder()
	c := New[string](16)
	require.NoError(t, c.Insert("one", e.MustKey(uint32(1))))
	require.NoError(t, c.Insert("two", e.MustKey(uint32(2))))
	v, ok := c.Get(e.MustKey(uint32(1)))
	assert.True(t, ok)
	assert.Equal(t, "one", v)
	_, ok = c.Get(e.MustKey(uint32(3)))
	assert.False(t, ok)
}
