// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

package ght_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	. "leb.io/ght"
)

func TestOneAtATime(t *testing.T) {
	var tests = []struct {
		key  string
		want uint32
	}{
		{"", 0},
		{"a", 0xca2e9442},
		{"The quick brown fox jumps over the lazy dog", 0x519e91f5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, OneAtATime([]byte(tt.key)), "%q", tt.key)
	}
}

func TestRotatingAndCRC(t *testing.T) {
	assert.Equal(t, uint32(0), Rotating(nil))
	assert.Equal(t, uint32(113), Rotating([]byte("a")))
	assert.Equal(t, uint32(0xcbf43926), CRC([]byte("123456789")))
}

func TestHashByName(t *testing.T) {
	for _, name := range HashNames {
		hf, err := HashByName(name, 1)
		require.NoError(t, err, name)
		require.NotNil(t, hf, name)
		k := []byte("blabla")
		assert.Equal(t, hf(k), hf(k), "%s is not deterministic", name)
		hf(nil)

		// every function must spread a run of keys over a small table
		seen := map[uint32]bool{}
		for i := 0; i < 1000; i++ {
			seen[hf([]byte(fmt.Sprint(i)))%64] = true
		}
		assert.True(t, len(seen) > 32, "%s used %d of 64 buckets", name, len(seen))
	}

	hf, err := HashByName("", 0)
	require.NoError(t, err)
	assert.Equal(t, OneAtATime([]byte("a")), hf([]byte("a")))

	hf, err = HashByName("m3", 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x248bfa47), hf([]byte("hello")))

	_, err = HashByName("md5", 0)
	assert.Error(t, err)
}

func TestTableWithEveryHash(t *testing.T) {
	for _, name := range HashNames {
		hf, err := HashByName(name, 7)
		require.NoError(t, err)
		c := New[int](-17, WithHash(hf), WithRehash(true))
		for i := 0; i < 500; i++ {
			require.NoError(t, c.Insert(i, []byte(fmt.Sprint(i))), name)
		}
		for i := 0; i < 500; i++ {
			v, ok := c.Get([]byte(fmt.Sprint(i)))
			require.True(t, ok, "%s: %d", name, i)
			assert.Equal(t, i, v)
		}
		c.Check()
	}
}

func BenchmarkHash(b *testing.B) {
	k := []byte("0123456789abcdef")
	for _, name := range HashNames {
		hf, _ := HashByName(name, 0)
		b.Run(name, func(b *testing.B) {
			b.SetBytes(int64(len(k)))
			for i := 0; i < b.N; i++ {
				hf(k)
			}
		})
	}
}
