// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

package ght

import "github.com/pkg/errors"

// Heuristic selects how a chain is reordered when a lookup hits.
type Heuristic int

const (
	None        Heuristic = iota // chains keep insertion order, newest first
	MoveToFront                  // a hit moves to the front of its chain
	Transpose                    // a hit swaps places with its predecessor
)

var heuristicNames = []string{"none", "mtf", "transpose"}

func (h Heuristic) String() string {
	if h < None || h > Transpose {
		return "Heuristic(?)"
	}
	return heuristicNames[h]
}

// ParseHeuristic accepts the names returned by String.
func ParseHeuristic(s string) (Heuristic, error) {
	for k, v := range heuristicNames {
		if v == s {
			return Heuristic(k), nil
		}
	}
	return None, errors.Errorf("ght: unknown heuristic %q", s)
}

// promote applies the active heuristic to node n in bucket b.
func (t *Table[V]) promote(b int, n int32) {
	switch t.Heuristics {
	case MoveToFront:
		t.moveToFront(b, n)
	case Transpose:
		t.swapPrev(b, n)
	}
}
