//go:build !cgo

package main

import "github.com/dusk-indust/filetrace/internal/graphstore"

// newKuzuGraphStore has no CGO-backed implementation in a non-CGO build;
// the caller falls back to the in-memory store.
func newKuzuGraphStore() (graphstore.Store, error) {
	return nil, nil
}
