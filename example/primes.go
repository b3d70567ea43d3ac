// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"leb.io/ght/internal/primes"
)

func primesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "primes from [limit]",
		Short: "print the primes >= from, up to limit or just the first one",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			if len(args) == 1 {
				fmt.Printf("%d\n", primes.NextPrime(from))
				return nil
			}
			limit, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			if limit < from {
				return fmt.Errorf("limit %d < from %d", limit, from)
			}
			primes.Primes(from, limit, func(p int) bool {
				fmt.Printf("%d\n", p)
				return true
			})
			return nil
		},
	}
}
