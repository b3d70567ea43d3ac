// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

//go:build !darwin && !dragonfly && !freebsd && !netbsd && !openbsd && !linux

package siginfo

import "os"

var sig os.Signal
