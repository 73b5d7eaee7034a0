package depgraph

import (
	"os"
	"path/filepath"
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_python "github.com/tree-sitter/tree-sitter-python/bindings/go"
)

// Three patterns dispatched by match.PatternIndex:
//
//	0: import foo.bar
//	1: from foo.bar import baz   /   from .foo import baz
//	2: from . import foo         /   from .. import foo, bar
const pythonQuery = `
(import_statement (dotted_name) @module)
(import_from_statement
  module_name: [
    (dotted_name) @module
    (relative_import (dotted_name) . ) @module
  ]
)
(import_from_statement
  module_name: (relative_import) @dots
  name: [
    (dotted_name) @name
    (aliased_import name: (dotted_name) @name)
  ]
  (#match? @dots "^\\.+$")
)
`

var pythonSuffixes = []string{".py", "/__init__.py"}

func analyzePython(root string, files []string, graph Graph) error {
	language := tree_sitter.NewLanguage(tree_sitter_python.Language())
	query, err := tree_sitter.NewQuery(language, pythonQuery)
	if err != nil {
		return err
	}
	defer query.Close()

	parser := tree_sitter.NewParser()
	defer parser.Close()
	if err := parser.SetLanguage(language); err != nil {
		return err
	}

	moduleIdx := captureIndex(query, "module")
	dotsIdx := captureIndex(query, "dots")
	nameIdx := captureIndex(query, "name")

	for _, file := range files {
		if strings.ToLower(filepath.Ext(file)) != ".py" {
			continue
		}
		content, err := os.ReadFile(file)
		if err != nil {
			continue
		}
		tree := parser.Parse(content, nil)
		if tree == nil {
			continue
		}
		parentDir := filepath.Dir(file)

		cursor := tree_sitter.NewQueryCursor()
		matches := cursor.Matches(query, tree.RootNode(), content)
		for match := matches.Next(); match != nil; match = matches.Next() {
			switch match.PatternIndex {
			case 0, 1:
				for _, cap := range match.Captures {
					if int(cap.Index) != moduleIdx {
						continue
					}
					moduleStr := cap.Node.Utf8Text(content)
					processPythonModule(moduleStr, file, parentDir, root, graph)
				}
			case 2:
				var dots string
				var names []string
				for _, cap := range match.Captures {
					switch int(cap.Index) {
					case dotsIdx:
						dots = cap.Node.Utf8Text(content)
					case nameIdx:
						names = append(names, cap.Node.Utf8Text(content))
					}
				}
				if dots != "" {
					for _, name := range names {
						processPythonModule(dots+name, file, parentDir, root, graph)
					}
				}
			}
		}
		cursor.Close()
		tree.Close()
	}
	return nil
}

// processPythonModule rewrites a dotted module reference (absolute or
// relative) into a filesystem-relative path and resolves it, appending to
// graph[file] on success.
func processPythonModule(moduleStr, file, parentDir, root string, graph Graph) {
	var clean string
	if strings.HasPrefix(moduleStr, ".") {
		numDots := 0
		for numDots < len(moduleStr) && moduleStr[numDots] == '.' {
			numDots++
		}
		var prefix string
		if numDots > 1 {
			prefix = strings.Repeat("../", numDots-1)
		}
		modulePart := moduleStr[numDots:]
		clean = prefix + strings.ReplaceAll(modulePart, ".", "/")
	} else {
		clean = strings.ReplaceAll(moduleStr, ".", "/")
	}

	if resolved, ok := resolveRelative(parentDir, clean, root, pythonSuffixes); ok && resolved != file {
		graph[file] = append(graph[file], resolved)
	}
}
