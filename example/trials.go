// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"leb.io/ght"
	"leb.io/ght/dstest"
	"leb.io/ght/internal/siginfo"
	"leb.io/hrff"
)

type trialFlags struct {
	buckets    int
	n          int
	trials     int
	base       int
	seed       int64
	hash       string
	heuristics ght.Heuristic
	rehash     bool
	maxBuckets int
	bound      int
	pool       int
	verbose    bool
	print      bool
	cpuprofile string
}

var labels = []string{"init", "fill", "verify", "delete"}

func tdiff(begin, end time.Time) time.Duration {
	return end.Sub(begin)
}

func hu(v uint64, u string) hrff.Int64 {
	return hrff.Int64{V: int64(v), U: u}
}

func rate(n int, d time.Duration) hrff.Float64 {
	return hrff.Float64{V: float64(n) * float64(time.Second) / float64(d), U: "ops/sec"}
}

func trialsCmd() *cobra.Command {
	var f trialFlags
	cmd := &cobra.Command{
		Use:   "trials",
		Short: "fill, verify and empty tables, report rates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.cpuprofile != "" {
				fp, err := os.Create(f.cpuprofile)
				if err != nil {
					return err
				}
				defer fp.Close()
				if err := pprof.StartCPUProfile(fp); err != nil {
					return err
				}
				defer pprof.StopCPUProfile()
			}
			return runTrials(&f)
		},
	}
	fl := cmd.Flags()
	fl.IntVarP(&f.buckets, "buckets", "b", -1000, "buckets, negative for the next prime")
	fl.IntVarP(&f.n, "keys", "n", 100000, "keys per trial")
	fl.IntVarP(&f.trials, "trials", "t", 5, "number of trials")
	fl.IntVar(&f.base, "base", 1, "first key of a fill, -1 for random")
	fl.Int64Var(&f.seed, "seed", 0, "seed for random bases and hash functions")
	f.hash = "oaat"
	tableFlags(fl, &f.heuristics, &f.hash)
	fl.BoolVarP(&f.rehash, "rehash", "r", true, "grow automatically")
	fl.IntVar(&f.maxBuckets, "maxbuckets", 0, "limit for automatic growth, 0 for none")
	fl.IntVar(&f.bound, "bound", 0, "bounded bucket depth, 0 for unbounded")
	fl.IntVar(&f.pool, "pool", 0, "use a pool allocator with this many keys per chunk")
	fl.BoolVar(&f.verbose, "verbose", false, "verbose, glog has -v")
	fl.BoolVar(&f.print, "print", false, "print the bucket depths after each fill")
	fl.StringVar(&f.cpuprofile, "cpuprofile", "", "write cpu profile to file")
	return cmd
}

func runTrials(f *trialFlags) error {
	hf, err := ght.HashByName(f.hash, uint64(f.seed))
	if err != nil {
		return err
	}

	var cur *ght.Table[uint64]
	siginfo.SetHandler(func() {
		if c := cur; c != nil {
			fmt.Printf("trials: %#v\n", c.Counters)
		}
	})

	var tot ght.Counters
	var msb, msa runtime.MemStats
	durations := make([]time.Duration, len(labels))
	print := func(i, n int) {
		if f.verbose {
			fmt.Printf("    %s: %v %h\n", labels[i], durations[i], rate(n, durations[i]))
		}
	}

	d := dstest.NewTester(nil, f.seed, nil)
	if f.verbose {
		d.W = os.Stdout
	}
	for t := 0; t < f.trials; t++ {
		start := time.Now()
		opts := []ght.Option{ght.WithHash(hf), ght.WithHeuristics(f.heuristics), ght.WithRehash(f.rehash), ght.WithMaxBuckets(f.maxBuckets)}
		var pool *ght.Pool
		if f.pool > 0 {
			pool = ght.NewPool(d.KeyLen(), f.pool, 0)
			opts = append(opts, ght.WithAllocator(pool))
		}
		c := ght.New[uint64](f.buckets, opts...)
		if f.bound > 0 {
			c.SetBoundedBuckets(f.bound, nil)
		}
		cur = c
		d.I = c
		durations[0] = tdiff(start, time.Now())
		if t == 0 {
			fmt.Printf("trials: buckets=%d, n=%d, hash=%s, heuristics=%v, rehash=%v, bound=%d\n",
				c.Size(), f.n, f.hash, c.Heuristics, c.Rehash, c.Bound)
		}
		print(0, c.Size())

		runtime.ReadMemStats(&msb)
		start = time.Now()
		fs, err := d.Fill(f.base, f.n)
		durations[1] = tdiff(start, time.Now())
		if err != nil {
			return errors.Wrapf(err, "trial %d", t)
		}
		runtime.ReadMemStats(&msa)
		print(1, fs.Used)
		if f.verbose {
			fmt.Printf("    memory: %h, buckets=%d, lf=%0.2f\n", hu(msa.TotalAlloc-msb.TotalAlloc, "B"), c.Size(), c.LoadFactor())
		}
		if f.print {
			c.Print(os.Stdout)
		}

		start = time.Now()
		found, err := d.Verify(fs.Base, f.n)
		durations[2] = tdiff(start, time.Now())
		if err != nil {
			return errors.Wrapf(err, "trial %d", t)
		}
		if found != c.Len() {
			return errors.Errorf("trial %d: verify found %d of %d elements", t, found, c.Len())
		}
		print(2, f.n)

		start = time.Now()
		removed, err := d.Delete(fs.Base, f.n)
		durations[3] = tdiff(start, time.Now())
		if err != nil {
			return errors.Wrapf(err, "trial %d", t)
		}
		if removed != found || c.Len() != 0 {
			return errors.Errorf("trial %d: delete removed %d, %d elements left", t, removed, c.Len())
		}
		print(3, f.n)
		if pool != nil && pool.InUse() != 0 {
			return errors.Errorf("trial %d: pool has %d blocks in use", t, pool.InUse())
		}

		statAdd(&tot, &c.Counters)
		c.Finalize()
		d.Seed++
		d.R.Seed(d.Seed)
		if f.verbose {
			fmt.Printf("\n")
		}
	}
	fmt.Printf("trials: trials=%d, inserts=%d, lookups=%d, hits=%d, deletes=%d, evictions=%d, rehashes=%d, allocfails=%d\n",
		f.trials, tot.Inserts, tot.Lookups, tot.Hits, tot.Deletes, tot.Evictions, tot.Rehashes, tot.AllocFails)
	return nil
}

func statAdd(tot, add *ght.Counters) {
	tot.Inserts += add.Inserts
	tot.Lookups += add.Lookups
	tot.Hits += add.Hits
	tot.Replaces += add.Replaces
	tot.Deletes += add.Deletes
	tot.Evictions += add.Evictions
	tot.Rehashes += add.Rehashes
	tot.AllocFails += add.AllocFails
}
