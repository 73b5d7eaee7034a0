package graphstore

import (
	"context"
	"sync"
)

var _ Store = (*MemStore)(nil)

// MemStore implements Store using Go maps, guarded by a RWMutex. It is the
// default backend and requires no native dependency.
type MemStore struct {
	mu    sync.RWMutex
	files map[string]struct{}
	edges []Edge
}

// NewMemStore returns an initialized, empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{files: make(map[string]struct{})}
}

// InitSchema is a no-op for the in-memory store.
func (m *MemStore) InitSchema(_ context.Context) error { return nil }

// Replace swaps the entire graph contents, used each time a directory is
// re-analyzed rather than incrementally patched.
func (m *MemStore) Replace(_ context.Context, files []FileNode, edges []Edge) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files = make(map[string]struct{}, len(files))
	for _, f := range files {
		m.files[f.Path] = struct{}{}
	}
	m.edges = append([]Edge(nil), edges...)
	return nil
}

// AssessImpact follows IMPORTS edges to find direct and transitive
// dependents of changedPaths: an edge SourcePath->TargetPath means
// "SourcePath imports TargetPath", so a file is affected when it imports
// something that changed.
func (m *MemStore) AssessImpact(_ context.Context, changedPaths []string) (*ImpactResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	changed := make(map[string]bool, len(changedPaths))
	for _, p := range changedPaths {
		changed[p] = true
	}

	direct := make(map[string]bool)
	for _, e := range m.edges {
		if changed[e.TargetPath] && !changed[e.SourcePath] {
			direct[e.SourcePath] = true
		}
	}

	all := make(map[string]bool, len(direct))
	for k := range direct {
		all[k] = true
	}
	frontier := make(map[string]bool, len(direct))
	for k := range direct {
		frontier[k] = true
	}

	for len(frontier) > 0 {
		next := make(map[string]bool)
		for _, e := range m.edges {
			if frontier[e.TargetPath] && !changed[e.SourcePath] && !all[e.SourcePath] {
				all[e.SourcePath] = true
				next[e.SourcePath] = true
			}
		}
		frontier = next
	}

	var risk float64
	if len(m.files) > 0 {
		risk = float64(len(all)) / float64(len(m.files))
	}

	return &ImpactResult{
		DirectlyAffected:     setToSlice(direct),
		TransitivelyAffected: setToSlice(all),
		RiskScore:            risk,
	}, nil
}

// Stats returns counts of files and edges currently held.
func (m *MemStore) Stats(_ context.Context) (*Stats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return &Stats{FileCount: len(m.files), EdgeCount: len(m.edges)}, nil
}

// Close is a no-op for the in-memory store.
func (m *MemStore) Close() error { return nil }

func setToSlice(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	return out
}
