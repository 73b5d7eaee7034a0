package depgraph

import (
	"path/filepath"
	"sort"

	"github.com/dusk-indust/filetrace/internal/fstree"
)

// ExpandInit adds, to every file that directly depends on a Python
// __init__.py, every dependency that __init__.py reaches transitively
// through other __init__.py files: a file importing a package implicitly
// depends on everything that package's __init__.py pulls in.
func ExpandInit(graph Graph) Graph {
	expanded := make(Graph, len(graph))

	for file, directDeps := range graph {
		final := make(map[string]struct{}, len(directDeps))
		for _, d := range directDeps {
			if d != file {
				final[d] = struct{}{}
			}
		}

		for _, dep := range directDeps {
			if filepath.Base(dep) == "__init__.py" {
				visited := make(map[string]struct{})
				collectTransitiveInitDeps(file, dep, graph, final, visited)
			}
		}

		delete(final, file)

		sorted := make([]string, 0, len(final))
		for d := range final {
			sorted = append(sorted, d)
		}
		sort.Slice(sorted, func(i, j int) bool { return fstree.NaturalLess(sorted[i], sorted[j]) })
		expanded[file] = sorted
	}

	return expanded
}

func collectTransitiveInitDeps(source, initFile string, original Graph, final map[string]struct{}, visited map[string]struct{}) {
	if _, seen := visited[initFile]; seen {
		return
	}
	visited[initFile] = struct{}{}

	for _, dep := range original[initFile] {
		if dep != source {
			final[dep] = struct{}{}
		}
		if filepath.Base(dep) == "__init__.py" {
			collectTransitiveInitDeps(source, dep, original, final, visited)
		}
	}
}
