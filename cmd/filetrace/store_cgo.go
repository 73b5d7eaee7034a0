//go:build cgo

package main

import "github.com/dusk-indust/filetrace/internal/graphstore"

// newKuzuGraphStore opens the CGO-backed KuzuDB store when this binary is
// built with CGO enabled.
func newKuzuGraphStore() (graphstore.Store, error) {
	return graphstore.NewKuzuStore()
}
