// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

package ght

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"leb.io/ght/internal/primes"
)

// grow is called by Insert when the load factor exceeds 2.
// The bucket count doubles, or goes to the next prime after double when the
// table is prime sized. MaxBuckets caps the result and once it is reached
// the table stops growing.
func (t *Table[V]) grow() {
	n := 2 * len(t.heads)
	if t.Primes {
		n = primes.NextPrime(n)
	}
	if t.MaxBuckets > 0 && n > t.MaxBuckets {
		if len(t.heads) >= t.MaxBuckets {
			glog.V(2).Infof("ght: at MaxBuckets=%d, not growing, lf=%0.2f", t.MaxBuckets, t.LoadFactor())
			return
		}
		n = t.MaxBuckets
	}
	t.rehash(n)
}

// Resize rebuilds the directory with n buckets. It fails with ErrBounded
// while buckets are bounded, a smaller directory would deepen chains past the bound.
func (t *Table[V]) Resize(n int) error {
	if t.finalized {
		return ErrFinalized
	}
	if t.Bound > 0 {
		return errors.Wrap(ErrBounded, "Resize")
	}
	if n <= 0 {
		return errors.Errorf("ght: Resize to %d buckets", n)
	}
	t.rehash(n)
	return nil
}

// rehash moves every node to its bucket in a new directory of n buckets.
// Cached hashes are used, keys are not hashed again.
func (t *Table[V]) rehash(n int) {
	glog.V(2).Infof("ght: rehash %d -> %d buckets, %d elements", len(t.heads), n, t.Elements)
	old := t.heads
	t.makeDirectory(n)
	for _, hd := range old {
		for i := hd; i != nilNode; {
			next := t.nodes[i].next
			t.pushFront(t.indexOf(t.nodes[i].hash), i)
			i = next
		}
	}
	t.Rehashes++
}
