// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/pflag"
	"leb.io/ght"
)

// heuristicValue lets a flag hold a ght.Heuristic by name.
type heuristicValue ght.Heuristic

var _ pflag.Value = (*heuristicValue)(nil)

func (h *heuristicValue) String() string { return ght.Heuristic(*h).String() }
func (h *heuristicValue) Type() string   { return "heuristic" }

func (h *heuristicValue) Set(s string) error {
	v, err := ght.ParseHeuristic(s)
	if err != nil {
		return err
	}
	*h = heuristicValue(v)
	return nil
}

// hashValue is a hash function name checked against ght.HashNames.
type hashValue string

var _ pflag.Value = (*hashValue)(nil)

func (h *hashValue) String() string { return string(*h) }
func (h *hashValue) Type() string   { return "hash" }

func (h *hashValue) Set(s string) error {
	if _, err := ght.HashByName(s, 0); err != nil {
		return err
	}
	*h = hashValue(s)
	return nil
}

// tableFlags are shared by the commands that build a table.
func tableFlags(fl *pflag.FlagSet, heur *ght.Heuristic, hash *string) {
	fl.VarP((*heuristicValue)(heur), "heuristics", "H", "none, mtf or transpose")
	fl.Var((*hashValue)(hash), "hash", "hash function "+fmt.Sprint(ght.HashNames))
}
