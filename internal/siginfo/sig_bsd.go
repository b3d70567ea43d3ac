// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package siginfo

import (
	"os"
	"syscall"
)

var sig os.Signal = syscall.SIGINFO
