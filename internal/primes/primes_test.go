// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

package primes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func naive(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

func TestNextPrime(t *testing.T) {
	var tests = []struct{ n, p int }{
		{0, 2}, {1, 2}, {2, 2}, {3, 3}, {4, 5}, {31, 31}, {128, 131},
		{229, 229}, {230, 233}, {1000, 1009}, {5000, 5003}, {65536, 65537},
		{1 << 20, 1048583},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.p, NextPrime(tt.n), "NextPrime(%d)", tt.n)
	}
}

func TestPrimesMatchesTrialDivision(t *testing.T) {
	var got []int
	Primes(0, 200000, func(p int) bool {
		got = append(got, p)
		return true
	})
	var want []int
	for n := 0; n <= 200000; n++ {
		if naive(n) {
			want = append(want, n)
		}
	}
	require.Equal(t, want, got)
}

func TestIsPrime(t *testing.T) {
	for n := -3; n < 3000; n++ {
		assert.Equal(t, naive(n), IsPrime(n), "IsPrime(%d)", n)
	}
}
