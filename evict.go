// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

package ght

import "github.com/golang/glog"

// evict removes the tail of bucket b, hands it to the release callback and
// frees its key block.
func (t *Table[V]) evict(b int) {
	n := t.tails[b]
	if n == nilNode {
		panic("evict")
	}
	t.unlink(b, n)
	e := t.nodes[n]
	glog.V(3).Infof("ght: evict %q from bucket %d, depth %d", e.key, b, t.depth[b])
	if t.release != nil {
		t.release(e.val, e.key)
	}
	t.alloc.Free(e.key)
	t.freeNode(n)
	t.Elements--
	t.Evictions++
}
