// SPDX-License-Identifier: MIT
// Package: bacon/builder
//
// errors.go - sentinel errors for the builder package.

package builder

import "errors"

// ErrNilIndex indicates Build was called without an index.
var ErrNilIndex = errors.New("builder: index is nil")

// ErrConstructFailed wraps a core failure while inserting a vertex or edge.
var ErrConstructFailed = errors.New("builder: construction failed")
