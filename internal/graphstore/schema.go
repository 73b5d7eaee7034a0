// Package graphstore keeps the most recently analyzed dependency graph in a
// queryable backend so impact assessment can run without recomputing it.
// MemStore walks the stored edges breadth-first in Go; KuzuStore issues a
// variable-length Cypher path query. The schema is scoped to File nodes
// and IMPORTS edges; there is no symbol- or cluster-level data in a
// file-level dependency graph.
package graphstore

import "context"

// FileNode is a single source file tracked in the graph.
type FileNode struct {
	Path string `json:"path"`
}

// Edge is a directed IMPORTS relationship: SourcePath imports TargetPath.
type Edge struct {
	SourcePath string `json:"sourcePath"`
	TargetPath string `json:"targetPath"`
}

// ImpactResult describes the blast radius of changing a set of files.
type ImpactResult struct {
	DirectlyAffected     []string `json:"directlyAffected"`
	TransitivelyAffected []string `json:"transitivelyAffected"`
	RiskScore            float64  `json:"riskScore"`
}

// Stats summarizes the graph's size.
type Stats struct {
	FileCount int `json:"fileCount"`
	EdgeCount int `json:"edgeCount"`
}

// Store is the backend-agnostic interface for the persisted dependency
// graph. Implementations: MemStore (default, always available) and
// KuzuStore (CGO-gated, compiled only when cgo is enabled).
type Store interface {
	InitSchema(ctx context.Context) error
	Replace(ctx context.Context, files []FileNode, edges []Edge) error
	AssessImpact(ctx context.Context, changedPaths []string) (*ImpactResult, error)
	Stats(ctx context.Context) (*Stats, error)
	Close() error
}
