// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

// Package siginfo runs a function when the user asks for status with ^T.
// On Linux, which has no SIGINFO, SIGUSR1 is used instead.
package siginfo

import (
	"os"
	"os/signal"
)

// SetHandler calls f on every status signal until the program exits.
// It returns false if the platform has no status signal.
func SetHandler(f func()) bool {
	if sig == nil {
		return false
	}
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, sig)

	go func() {
		for range ch {
			f()
		}
	}()
	return true
}
