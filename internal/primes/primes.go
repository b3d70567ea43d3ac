// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

// Package primes finds primes with a segmented sieve, after plan9 primes.c.
// It's used to pick prime bucket counts.
package primes

import "math"

// small primes, anything below 230 comes straight from here
var pt = []int{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29,
	31, 37, 41, 43, 47, 53, 59, 61, 67, 71,
	73, 79, 83, 89, 97, 101, 103, 107, 109, 113,
	127, 131, 137, 139, 149, 151, 157, 163, 167, 173,
	179, 181, 191, 193, 197, 199, 211, 223, 227, 229,
}

// segment size in numbers, only odd numbers are marked
const segment = 1 << 16

// Primes calls f with each prime p, from <= p <= limit, in increasing order,
// until f returns false. A limit of 0 means no limit.
func Primes(from, limit int, f func(p int) bool) {
	if limit == 0 {
		limit = math.MaxInt32
	}
	if from < 2 {
		from = 2
	}
	for _, p := range pt {
		if p < from {
			continue
		}
		if p > limit || !f(p) {
			return
		}
	}
	if from <= pt[len(pt)-1] {
		from = pt[len(pt)-1] + 1
	}
	if from%2 == 0 {
		from++
	}

	composite := make([]bool, segment/2)
	for lo := from; lo <= limit; lo += segment {
		for k := range composite {
			composite[k] = false
		}
		hi := lo + segment // exclusive, lo is odd so composite[k] stands for lo+2k
		max := int(math.Sqrt(float64(hi))) + 1
		for k := 3; k <= max; k += 2 {
			// first odd multiple of k that is >= lo and > k
			j := (lo + k - 1) / k * k
			if j < k*k {
				j = k * k
			}
			if j%2 == 0 {
				j += k
			}
			for ; j < hi; j += 2 * k {
				composite[(j-lo)/2] = true
			}
		}
		for k, c := range composite {
			p := lo + 2*k
			if p > limit {
				return
			}
			if !c && !f(p) {
				return
			}
		}
	}
}

// NextPrime returns the smallest prime >= n.
func NextPrime(n int) (p int) {
	Primes(n, 0, func(v int) bool {
		p = v
		return false
	})
	return
}

// IsPrime reports whether n is prime.
func IsPrime(n int) bool {
	return n >= 2 && NextPrime(n) == n
}
