// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

package jenkins264

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHash(t *testing.T) {
	var tests = []struct {
		key  string
		seed uint64
		want uint64
	}{
		{"", 0, 0x8db63936938575bf},
		{"a", 0, 0x1d48fd74d88633ac},
		{"Four score and seven years ago", 0, 0xf177bfecdbb573be},
		{"Four score and seven years ago", 1, 0x6bef7f4580f17264},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Hash([]byte(tt.key), tt.seed), "%q seed=%d", tt.key, tt.seed)
	}
}

// every length from 0 through two blocks and a tail, every byte position must matter
func TestTails(t *testing.T) {
	seen := map[uint64]int{}
	k := make([]byte, 0, 64)
	for l := 0; l <= 64; l++ {
		h := Hash(k, 0)
		prev, dup := seen[h]
		assert.False(t, dup, "length %d collides with %d", l, prev)
		seen[h] = l
		for i := range k {
			k[i]++
			assert.NotEqual(t, h, Hash(k, 0), "length %d byte %d ignored", l, i)
			k[i]--
		}
		k = append(k, byte(l))
	}
}

func TestSum32(t *testing.T) {
	h := Hash([]byte("a"), 0)
	assert.Equal(t, uint32(h)^uint32(h>>32), Sum32([]byte("a"), 0))
}

func BenchmarkHash24(b *testing.B) {
	k := make([]byte, 24)
	b.SetBytes(24)
	for i := 0; i < b.N; i++ {
		Hash(k, 0)
	}
}
