// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

package ght_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	. "leb.io/ght"
)

func TestIterateEmpty(t *testing.T) {
	c := New[int](8)
	var it Iterator
	_, _, ok := c.First(&it)
	assert.False(t, ok)

	var zero Iterator
	_, _, ok = c.Next(&zero)
	assert.False(t, ok)
}

func TestIterateOrder(t *testing.T) {
	// keys "0".."3" hash to their digit, two buckets
	hf := func(k []byte) uint32 { return uint32(k[0] - '0') }
	c := New[int](2, WithHash(hf))
	for i := 0; i < 4; i++ {
		require.NoError(t, c.Insert(i, []byte(fmt.Sprint(i))))
	}
	var got []string
	var it Iterator
	for k, _, ok := c.First(&it); ok; k, _, ok = c.Next(&it) {
		got = append(got, string(k))
	}
	assert.Equal(t, []string{"2", "0", "3", "1"}, got)
}

func TestIterateAll(t *testing.T) {
	c := New[int](-7, WithRehash(true))
	want := map[string]int{}
	for i := 0; i < 1000; i++ {
		k := fmt.Sprintf("k%d", i)
		require.NoError(t, c.Insert(i, []byte(k)))
		want[k] = i
	}
	got := map[string]int{}
	var it Iterator
	for k, v, ok := c.First(&it); ok; k, v, ok = c.Next(&it) {
		_, dup := got[string(k)]
		require.False(t, dup, "%s seen twice", k)
		got[string(k)] = v
	}
	assert.Equal(t, want, got)
}

func TestIterateAndRemove(t *testing.T) {
	c := New[int](16)
	const n = 1000
	for i := 0; i < n; i++ {
		require.NoError(t, c.Insert(i, []byte(fmt.Sprint(i))))
	}
	seen := 0
	var it Iterator
	for k, v, ok := c.First(&it); ok; k, v, ok = c.Next(&it) {
		seen++
		if v%2 == 0 {
			got, err := c.Remove(k)
			require.NoError(t, err)
			require.Equal(t, v, got)
		}
	}
	assert.Equal(t, n, seen)
	assert.Equal(t, n/2, c.Len())
	c.Check()

	// drain the rest, every entry is removed as it is returned
	seen = 0
	for k, _, ok := c.First(&it); ok; k, _, ok = c.Next(&it) {
		seen++
		_, err := c.Remove(k)
		require.NoError(t, err)
	}
	assert.Equal(t, n/2, seen)
	assert.Equal(t, 0, c.Len())
	c.Check()
}

func TestMap(t *testing.T) {
	c := New[int](8)
	for i := 0; i < 100; i++ {
		require.NoError(t, c.Insert(i, []byte(fmt.Sprint(i))))
	}
	sum, calls := 0, 0
	c.Map(func(k []byte, v int) bool {
		sum += v
		calls++
		return false
	})
	assert.Equal(t, 100, calls)
	assert.Equal(t, 4950, sum)

	calls = 0
	c.Map(func(k []byte, v int) bool {
		calls++
		return calls == 10
	})
	assert.Equal(t, 10, calls)

	c.Map(func(k []byte, v int) bool {
		_, err := c.Remove(k)
		require.NoError(t, err)
		return false
	})
	assert.Equal(t, 0, c.Len())
}

func TestIterateAfterFinalize(t *testing.T) {
	c := New[int](4)
	for i := 0; i < 10; i++ {
		require.NoError(t, c.Insert(i, []byte(fmt.Sprint(i))))
	}
	var it Iterator
	_, _, ok := c.First(&it)
	require.True(t, ok)
	c.Finalize()
	_, _, ok = c.Next(&it)
	assert.False(t, ok)
	_, _, ok = c.Next(&it)
	assert.False(t, ok)
}
