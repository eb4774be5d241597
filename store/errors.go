// SPDX-License-Identifier: MIT
// Package: lvflow/store
//
// errors.go: sentinel and typed errors.

package store

import (
	"errors"
	"fmt"
)

// ErrSizeMismatch indicates a partial file whose header disagrees with the
// expected edge count, or whose body length disagrees with its header.
var ErrSizeMismatch = errors.New("store: partial file size mismatch")

// ErrBadLength indicates a negative expected length passed to AggregateFiles.
var ErrBadLength = errors.New("store: expected length must be ≥ 0")

// FileError records a failed open, read, write or close of a partial file.
type FileError struct {
	Op   string // "open", "read", "write", "close", "create"
	Path string
	Err  error
}

// Error implements the error interface.
func (e *FileError) Error() string {
	return fmt.Sprintf("store: %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *FileError) Unwrap() error { return e.Err }
