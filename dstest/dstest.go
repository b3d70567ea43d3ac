// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

// Package dstest fills, verifies and empties a table with a series of
// numeric keys. It's used by the ghtest program and by tests.
package dstest

import (
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/pkg/errors"
	"leb.io/ght"
)

// DSTester is what dstest needs from a data structure.
// *ght.Table[uint64] satisfies it.
type DSTester interface {
	Insert(val uint64, key []byte) error
	Get(key []byte) (uint64, bool)
	Remove(key []byte) (uint64, error)
	GetCounter(stat string) int
}

// return information about what happened during a fill
type FillStats struct {
	Load      float64 // elements per bucket after the fill
	Base      int     // first key
	N         int     // keys offered
	Used      int     // keys inserted
	Evicted   int     // evictions during the fill
	AllocFail int     // inserts refused by the allocator
	Failed    bool    // an insert failed for a reason other than the allocator
}

// DSTest holds the state of a series of trials.
type DSTest struct {
	Seed      int64      // seed used to pick random bases
	FillStats            // stats of the last fill
	I         DSTester   // data structure under test
	R         *rand.Rand // random number generator with no lock
	W         io.Writer  // progress and verbose output, nil for none
	enc       *ght.KeyEncoder
}

// NewTester returns a tester for i. w may be nil.
func NewTester(i DSTester, seed int64, w io.Writer) *DSTest {
	return &DSTest{
		Seed: seed,
		I:    i,
		R:    rand.New(rand.NewSource(seed)),
		W:    w,
		enc:  ght.NewKeyEncoder(),
	}
}

func (d *DSTest) rbetween(a int, b int) int {
	return a + d.R.Intn(b-a+1)
}

func (d *DSTest) printf(format string, args ...interface{}) {
	if d.W != nil {
		fmt.Fprintf(d.W, format, args...)
	}
}

// Key returns the key used for i.
func (d *DSTest) Key(i int) []byte {
	return d.enc.MustKey(uint64(i))
}

// KeyLen returns the length of the longest key Key can produce, the block
// size for a Pool serving a tester's table.
func (d *DSTest) KeyLen() int {
	return len(d.enc.MustKey(uint64(math.MaxUint64)))
}

// Fill inserts n keys starting at base, or at a random base if base < 0.
// The value stored under the k-th key is k, counting from 1.
func (d *DSTest) Fill(base, n int) (*FillStats, error) {
	if base < 0 {
		base = d.rbetween(1, 1<<29)
	}
	fs := FillStats{Base: base, N: n}
	ev := d.I.GetCounter("evictions")
	for i := 0; i < n; i++ {
		err := d.I.Insert(uint64(i+1), d.Key(base+i))
		switch errors.Cause(err) {
		case nil:
			fs.Used++
		case ght.ErrAllocation:
			fs.AllocFail++
		default:
			fs.Failed = true
			d.FillStats = fs
			return &fs, errors.Wrapf(err, "fill: key %d", base+i)
		}
	}
	fs.Evicted = d.I.GetCounter("evictions") - ev
	fs.Load = float64(d.I.GetCounter("elements")) / float64(d.I.GetCounter("buckets"))
	d.printf("    fill: base=%d, n=%d, used=%d, evicted=%d, allocfail=%d, lf=%0.2f\n",
		base, n, fs.Used, fs.Evicted, fs.AllocFail, fs.Load)
	d.FillStats = fs
	return &fs, nil
}

// Verify looks up n keys starting at base and checks their values.
// It returns how many were found. Missing keys are not an error, evicted
// or refused keys are expected to be missing. A wrong value is.
func (d *DSTest) Verify(base, n int) (int, error) {
	found := 0
	for i := 0; i < n; i++ {
		v, ok := d.I.Get(d.Key(base + i))
		if !ok {
			continue
		}
		if v != uint64(i+1) {
			return found, errors.Errorf("verify: key %d has value %d, want %d", base+i, v, i+1)
		}
		found++
	}
	d.printf("    verify: base=%d, n=%d, found=%d\n", base, n, found)
	return found, nil
}

// Delete removes n keys starting at base and checks their values.
// It returns how many were removed.
func (d *DSTest) Delete(base, n int) (int, error) {
	removed := 0
	for i := 0; i < n; i++ {
		v, err := d.I.Remove(d.Key(base + i))
		if errors.Cause(err) == ght.ErrNotFound {
			continue
		}
		if err != nil {
			return removed, errors.Wrapf(err, "delete: key %d", base+i)
		}
		if v != uint64(i+1) {
			return removed, errors.Errorf("delete: key %d has value %d, want %d", base+i, v, i+1)
		}
		removed++
	}
	d.printf("    delete: base=%d, n=%d, removed=%d\n", base, n, removed)
	return removed, nil
}
