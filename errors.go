// Copyright © 2014-2017 Lawrence E. Bakst. All rights reserved.

package ght

import "github.com/pkg/errors"

// Errors returned by the table. Test with errors.Cause(err) == ErrX.
var (
	ErrDuplicateKey = errors.New("ght: duplicate key")
	ErrNotFound     = errors.New("ght: key not found")
	ErrAllocation   = errors.New("ght: allocation failed")
	ErrNotEmpty     = errors.New("ght: table not empty")
	ErrBounded      = errors.New("ght: rehash not allowed with bounded buckets")
	ErrFinalized    = errors.New("ght: table finalized")
)
