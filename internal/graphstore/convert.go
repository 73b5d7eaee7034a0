package graphstore

import "github.com/dusk-indust/filetrace/internal/depgraph"

// FromDependencyGraph flattens a depgraph.Graph into the file/edge slices
// Store.Replace expects.
func FromDependencyGraph(graph depgraph.Graph) ([]FileNode, []Edge) {
	seen := make(map[string]struct{})
	var files []FileNode
	var edges []Edge

	addFile := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, FileNode{Path: path})
	}

	for source, deps := range graph {
		addFile(source)
		for _, dep := range deps {
			addFile(dep)
			edges = append(edges, Edge{SourcePath: source, TargetPath: dep})
		}
	}
	return files, edges
}
