// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"leb.io/ght"
)

// delimiters between words
const delims = " \".,;:?!-'/*()=+&%[]#$\n\r\t"

func words(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return strings.ContainsRune(delims, r) })
}

type dictFlags struct {
	mtf       bool
	transpose bool
	bounded   int
	buckets   int
	print     bool
	heur      ght.Heuristic
	hash      string
}

func dictCmd() *cobra.Command {
	var f dictFlags
	cmd := &cobra.Command{
		Use:   "dict dictfile textfile",
		Short: "read words from dictfile and look them up in textfile",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDict(&f, args[0], args[1])
		},
	}
	fl := cmd.Flags()
	fl.BoolVarP(&f.mtf, "mtf", "m", false, "use move-to-front heuristics")
	fl.BoolVarP(&f.transpose, "transpose", "t", false, "use transpose heuristics")
	fl.IntVarP(&f.bounded, "bounded", "b", 0, "use bounded buckets of this depth, the table becomes a cache")
	fl.IntVar(&f.buckets, "buckets", 1000, "initial buckets")
	fl.BoolVar(&f.print, "print", false, "print the bucket depths")
	tableFlags(fl, &f.heur, &f.hash)
	return cmd
}

func runDict(f *dictFlags, dictName, textName string) error {
	hf, err := ght.HashByName(f.hash, 0)
	if err != nil {
		return err
	}
	c := ght.New[int](f.buckets, ght.WithRehash(true), ght.WithHash(hf), ght.WithHeuristics(f.heur))
	switch {
	case f.mtf:
		c.SetHeuristics(ght.MoveToFront)
	case f.transpose:
		c.SetHeuristics(ght.Transpose)
	}
	evicted := 0
	if f.bounded > 0 {
		// rehashing makes no sense in cache mode, SetBoundedBuckets turns it off
		c.SetBoundedBuckets(f.bounded, func(v int, key []byte) { evicted++ })
	}

	buf, err := os.ReadFile(dictName)
	if err != nil {
		return errors.Wrap(err, "dict")
	}
	cnt, unique := 0, 0
	for _, w := range words(string(buf)) {
		if c.Insert(cnt, []byte(w)) == nil {
			unique++
		}
		cnt++
	}
	fmt.Printf("Done reading %d unique words from the wordlist.\nTotal number of words is %d.\n\n", unique, cnt)

	buf, err = os.ReadFile(textName)
	if err != nil {
		return errors.Wrap(err, "dict")
	}
	cnt, found := 0, 0
	for _, w := range words(string(buf)) {
		if _, ok := c.Get([]byte(w)); ok {
			found++
		}
		cnt++
	}
	fmt.Printf("Found %d words out of %d words\n", found, cnt)
	if f.bounded > 0 {
		fmt.Printf("Evicted %d words, %d left\n", evicted, c.Len())
	}
	if f.print {
		c.Print(os.Stdout)
	}
	c.Finalize()
	return nil
}
