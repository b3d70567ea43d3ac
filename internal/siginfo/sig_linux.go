// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

//go:build linux

package siginfo

import (
	"os"
	"syscall"
)

var sig os.Signal = syscall.SIGUSR1
