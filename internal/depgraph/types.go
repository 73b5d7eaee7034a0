// Package depgraph builds a cross-file dependency graph by parsing source
// with tree-sitter structural queries and resolving each import to a
// concrete file path on disk.
package depgraph

// Graph maps a source file's absolute path to the sorted, deduplicated,
// naturally-ordered list of files it depends on.
type Graph map[string][]string
