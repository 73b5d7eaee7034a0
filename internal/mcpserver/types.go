// Package mcpserver exposes this service's directory-tree, dependency-graph,
// and impact-assessment capabilities as MCP tools over stdio.
package mcpserver

import "github.com/dusk-indust/filetrace/internal/fstree"

// BuildTreeInput names the directory to walk.
type BuildTreeInput struct {
	Path string `json:"path" jsonschema:"absolute or relative path to the directory to walk"`
}

// BuildTreeOutput carries the resulting tree and the canonicalized root.
type BuildTreeOutput struct {
	Root string      `json:"root"`
	Tree fstree.Tree `json:"tree"`
}

// BuildDependencyGraphInput names the directory to analyze.
type BuildDependencyGraphInput struct {
	Path string `json:"path" jsonschema:"absolute or relative path to the directory to analyze"`
}

// BuildDependencyGraphOutput carries the resolved, init-expanded graph.
type BuildDependencyGraphOutput struct {
	Root            string              `json:"root"`
	DependencyGraph map[string][]string `json:"dependencyGraph"`
}

// AssessImpactInput names the files about to change.
type AssessImpactInput struct {
	ChangedFiles []string `json:"changedFiles" jsonschema:"list of file paths that will be modified"`
}

// AssessImpactOutput carries the blast-radius result.
type AssessImpactOutput struct {
	DirectlyAffected     []string `json:"directlyAffected"`
	TransitivelyAffected []string `json:"transitivelyAffected"`
	RiskScore            float64  `json:"riskScore"`
}
