package fstree

import "errors"

// ErrIO wraps underlying filesystem failures (permission, transient I/O).
var ErrIO = errors.New("fstree: io error")

// ErrPathInvalid marks a requested path that does not exist or cannot be
// canonicalized.
var ErrPathInvalid = errors.New("fstree: invalid path")
