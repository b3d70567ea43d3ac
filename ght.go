// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

// Package ght implements a generic hash table with chained buckets.
// Keys are arbitrary byte strings that the table copies, values are whatever
// the caller stores and are never examined or released by the table.
// Chains can be reordered on lookup (move to front or transpose), the table can
// grow automatically, and with bounded buckets it turns into a cache that evicts
// from the tail of a full chain. The table is not safe for concurrent use, and
// with a reordering heuristic even Get modifies it.
package ght

import (
	"fmt"
	"io"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"leb.io/ght/internal/primes"
)

// DefaultBuckets is used when New is asked for 0 buckets.
const DefaultBuckets = 128

// Configuration of a table. All fields are exported but should be changed with the setters.
type Config struct {
	Buckets    int       // current number of buckets
	Heuristics Heuristic // chain reordering on a successful Get
	Rehash     bool      // grow when there are more than 2 entries per bucket
	Bound      int       // bounded bucket depth, 0 means unbounded
	MaxBuckets int       // don't grow automatically beyond this, 0 means no limit
	Primes     bool      // bucket counts are kept prime
}

// Counters. All public, GetCounter gives access by name.
type Counters struct {
	Elements   int // number of entries currently in the table
	Inserts    int // successful inserts
	Lookups    int // calls to Get
	Hits       int // successful calls to Get
	Replaces   int // successful calls to Replace
	Deletes    int // successful calls to Remove
	Evictions  int // entries evicted from bounded buckets
	Rehashes   int // number of times the directory was rebuilt
	AllocFails int // inserts that failed because the allocator returned nil
}

// ReleaseFunc is called with the value and key of an entry evicted from a bounded bucket.
// The key is only valid during the call.
type ReleaseFunc[V any] func(val V, key []byte)

// Table is the hash table. The zero value is not usable, call New.
type Table[V any] struct {
	Config
	Counters
	heads     []int32 // first node of each chain
	tails     []int32 // last node of each chain, the eviction candidate
	depth     []int32 // chain lengths
	nodes     []node[V]
	free      int32 // free list of nodes, linked through next
	hf        HashFunc
	alloc     Allocator
	release   ReleaseFunc[V]
	finalized bool
}

type options struct {
	hf         HashFunc
	alloc      Allocator
	heuristics Heuristic
	rehash     bool
	maxBuckets int
}

// Option configures a table at construction.
type Option func(*options)

// WithHash sets the hash function.
func WithHash(f HashFunc) Option {
	return func(o *options) { o.hf = f }
}

// WithAllocator sets the allocator used for key storage.
func WithAllocator(a Allocator) Option {
	return func(o *options) { o.alloc = a }
}

// WithHeuristics sets the chain reordering heuristic.
func WithHeuristics(h Heuristic) Option {
	return func(o *options) { o.heuristics = h }
}

// WithRehash turns automatic growth on or off.
func WithRehash(on bool) Option {
	return func(o *options) { o.rehash = on }
}

// WithMaxBuckets limits automatic growth.
func WithMaxBuckets(n int) Option {
	return func(o *options) { o.maxBuckets = n }
}

// New creates a table with the given number of buckets.
// If buckets is negative the table uses the next prime >= -buckets and keeps
// the bucket count prime when it grows. 0 selects DefaultBuckets.
func New[V any](buckets int, opts ...Option) *Table[V] {
	prime := false
	switch {
	case buckets < 0:
		buckets = primes.NextPrime(-buckets)
		prime = true
	case buckets == 0:
		buckets = DefaultBuckets
	}

	o := options{hf: OneAtATime, alloc: DefaultAllocator}
	for _, f := range opts {
		f(&o)
	}
	if o.hf == nil {
		o.hf = OneAtATime
	}
	if o.alloc == nil {
		o.alloc = DefaultAllocator
	}

	t := &Table[V]{free: nilNode, hf: o.hf, alloc: o.alloc}
	t.Heuristics = o.heuristics
	t.Rehash = o.rehash
	t.MaxBuckets = o.maxBuckets
	t.Primes = prime
	t.makeDirectory(buckets)
	return t
}

// SetHash changes the hash function. Only allowed while the table is empty.
func (t *Table[V]) SetHash(f HashFunc) error {
	if t.Elements > 0 {
		return errors.Wrap(ErrNotEmpty, "SetHash")
	}
	if f == nil {
		f = OneAtATime
	}
	t.hf = f
	return nil
}

// SetAllocator changes the allocator used for key storage. Only allowed while the table is empty.
func (t *Table[V]) SetAllocator(a Allocator) error {
	if t.Elements > 0 {
		return errors.Wrap(ErrNotEmpty, "SetAllocator")
	}
	if a == nil {
		a = DefaultAllocator
	}
	t.alloc = a
	return nil
}

// SetHeuristics changes the heuristic, existing chains are not reordered.
func (t *Table[V]) SetHeuristics(h Heuristic) {
	t.Heuristics = h
}

// SetRehash turns automatic growth on or off. Growth can't be combined with bounded buckets.
func (t *Table[V]) SetRehash(on bool) error {
	if on && t.Bound > 0 {
		return errors.Wrap(ErrBounded, "SetRehash")
	}
	t.Rehash = on
	return nil
}

// SetMaxBuckets limits automatic growth, 0 means no limit.
func (t *Table[V]) SetMaxBuckets(n int) {
	t.MaxBuckets = n
}

// SetBoundedBuckets limits every chain to limit entries and turns off rehashing.
// release is called for each evicted entry, it may be nil. Chains already
// deeper than limit are trimmed from the tail right away.
// A limit <= 0 makes the buckets unbounded again.
func (t *Table[V]) SetBoundedBuckets(limit int, release ReleaseFunc[V]) {
	if limit <= 0 {
		t.Bound, t.release = 0, nil
		return
	}
	t.Bound, t.release = limit, release
	t.Rehash = false
	for b := range t.depth {
		for int(t.depth[b]) > limit {
			t.evict(b)
		}
	}
}

// Insert stores val under a copy of key.
// It fails with ErrDuplicateKey if the key is already present, the caller still owns val.
// With bounded buckets a full chain first evicts its tail, with rehash enabled the
// table may grow afterwards.
func (t *Table[V]) Insert(val V, key []byte) error {
	if t.finalized {
		return ErrFinalized
	}
	h := t.hf(key)
	b := t.indexOf(h)
	if t.find(b, h, key) != nilNode {
		return ErrDuplicateKey
	}

	blk := t.alloc.Alloc(len(key))
	if blk == nil || len(blk) != len(key) {
		if blk != nil {
			t.alloc.Free(blk)
		}
		t.AllocFails++
		glog.V(1).Infof("ght: allocator refused %d byte block", len(key))
		return errors.Wrapf(ErrAllocation, "insert %d byte key", len(key))
	}
	copy(blk, key)

	if t.Bound > 0 {
		for int(t.depth[b]) >= t.Bound {
			t.evict(b)
		}
	}
	t.pushFront(b, t.newNode(blk, h, val))
	t.Elements++
	t.Inserts++

	if t.Rehash && t.Elements > 2*len(t.heads) {
		t.grow()
	}
	return nil
}

// Get returns the value stored under key and applies the heuristic to its chain.
func (t *Table[V]) Get(key []byte) (V, bool) {
	var zero V
	t.Lookups++
	if t.finalized {
		return zero, false
	}
	h := t.hf(key)
	b := t.indexOf(h)
	n := t.find(b, h, key)
	if n == nilNode {
		return zero, false
	}
	t.Hits++
	val := t.nodes[n].val
	t.promote(b, n)
	return val, true
}

// Replace stores val under an existing key and returns the previous value.
// An absent key is not inserted, ErrNotFound is returned instead.
func (t *Table[V]) Replace(val V, key []byte) (V, error) {
	var zero V
	if t.finalized {
		return zero, ErrFinalized
	}
	h := t.hf(key)
	n := t.find(t.indexOf(h), h, key)
	if n == nilNode {
		return zero, ErrNotFound
	}
	old := t.nodes[n].val
	t.nodes[n].val = val
	t.Replaces++
	return old, nil
}

// Remove deletes key and returns its value, which the caller now owns.
// The release callback is not called.
func (t *Table[V]) Remove(key []byte) (V, error) {
	var zero V
	if t.finalized {
		return zero, ErrFinalized
	}
	h := t.hf(key)
	b := t.indexOf(h)
	n := t.find(b, h, key)
	if n == nilNode {
		return zero, ErrNotFound
	}
	val := t.nodes[n].val
	t.unlink(b, n)
	t.alloc.Free(t.nodes[n].key)
	t.freeNode(n)
	t.Elements--
	t.Deletes++
	if t.Elements < 0 {
		panic("Remove")
	}
	return val, nil
}

// Len returns the number of entries.
func (t *Table[V]) Len() int {
	return t.Elements
}

// Size returns the number of buckets.
func (t *Table[V]) Size() int {
	return len(t.heads)
}

// LoadFactor returns entries per bucket.
func (t *Table[V]) LoadFactor() float64 {
	if len(t.heads) == 0 {
		return 0
	}
	return float64(t.Elements) / float64(len(t.heads))
}

// Finalize returns every key block to the allocator and drops the directory.
// Values are not touched, drain them first with First/Next if they need releasing.
// After Finalize, Insert, Replace and Remove fail with ErrFinalized.
func (t *Table[V]) Finalize() {
	if t.finalized {
		return
	}
	for _, hd := range t.heads {
		for n := hd; n != nilNode; n = t.nodes[n].next {
			t.alloc.Free(t.nodes[n].key)
		}
	}
	t.heads, t.tails, t.depth, t.nodes = nil, nil, nil, nil
	t.free = nilNode
	t.Elements = 0
	t.Buckets = 0
	t.finalized = true
}

// Index returns the bucket key belongs to.
func (t *Table[V]) Index(key []byte) int {
	if len(t.heads) == 0 {
		return -1
	}
	return t.indexOf(t.hf(key))
}

// Chain returns the keys in bucket b, front first. The keys must not be modified.
func (t *Table[V]) Chain(b int) [][]byte {
	var keys [][]byte
	for n := t.heads[b]; n != nilNode; n = t.nodes[n].next {
		keys = append(keys, t.nodes[n].key)
	}
	return keys
}

// Depth returns the number of entries in bucket b.
func (t *Table[V]) Depth(b int) int {
	return int(t.depth[b])
}

// Get the value of a counter by name.
func (t *Table[V]) GetCounter(s string) int {
	switch s {
	case "elements":
		return t.Elements
	case "inserts":
		return t.Inserts
	case "lookups":
		return t.Lookups
	case "hits":
		return t.Hits
	case "replaces":
		return t.Replaces
	case "deletes":
		return t.Deletes
	case "evictions":
		return t.Evictions
	case "rehashes":
		return t.Rehashes
	case "allocfails":
		return t.AllocFails
	case "buckets", "size":
		return len(t.heads)
	default:
		panic("GetCounter")
	}
}

// Print writes the depth of every bucket and a summary to w.
func (t *Table[V]) Print(w io.Writer) {
	max, used := 0, 0
	for b, d := range t.depth {
		fmt.Fprintf(w, "[%d]: %d\n", b, d)
		if d > 0 {
			used++
		}
		if int(d) > max {
			max = int(d)
		}
	}
	fmt.Fprintf(w, "buckets=%d, used=%d, elements=%d, lf=%0.2f, maxdepth=%d, heuristics=%v, rehash=%v, bound=%d\n",
		len(t.heads), used, t.Elements, t.LoadFactor(), max, t.Heuristics, t.Rehash, t.Bound)
}
