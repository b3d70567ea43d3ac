// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

// ghtest exercises the ght hash table.
// "trials" fills, verifies and empties tables and reports rates,
// "dict" looks up the words of one file in a table built from another,
// "primes" prints primes, useful for picking bucket counts.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "ghtest",
		Short: "exercise the ght hash table",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// glog's flags were parsed by cobra, keep glog from complaining
			flag.CommandLine.Parse(nil)
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	root.AddCommand(trialsCmd(), dictCmd(), primesCmd())

	err := root.Execute()
	glog.Flush()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
