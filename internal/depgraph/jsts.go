package depgraph

import (
	"os"
	"path/filepath"
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

const jsTSQuery = `
(import_statement source: (string (string_fragment) @path))
(call_expression
  function: (identifier) @_fn
  arguments: (arguments (string (string_fragment) @path))
  (#eq? @_fn "require"))
`

var jsTSSuffixes = []string{"", ".js", ".jsx", ".ts", ".tsx", "/index.js", "/index.jsx", "/index.ts", "/index.tsx"}

func jsTSExtension(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".js", ".jsx", ".ts", ".tsx":
		return true
	default:
		return false
	}
}

// analyzeJSTypeScript scans files for import/require statements and
// accumulates resolved dependencies into graph. TSX grammar is used for
// every candidate file since its grammar is a superset of plain TS/JS
// syntax for the import forms this query matches.
func analyzeJSTypeScript(root string, files []string, graph Graph) error {
	language := tree_sitter.NewLanguage(tree_sitter_typescript.LanguageTSX())
	query, err := tree_sitter.NewQuery(language, jsTSQuery)
	if err != nil {
		return err
	}
	defer query.Close()

	parser := tree_sitter.NewParser()
	defer parser.Close()
	if err := parser.SetLanguage(language); err != nil {
		return err
	}

	pathCaptureIdx := captureIndex(query, "path")

	for _, file := range files {
		if !jsTSExtension(file) {
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
		var deps []string
		for match := matches.Next(); match != nil; match = matches.Next() {
			for _, cap := range match.Captures {
				if int(cap.Index) != pathCaptureIdx {
					continue
				}
				raw := cap.Node.Utf8Text(content)
				clean := strings.Trim(strings.Trim(raw, "\""), "'")
				if resolved, ok := resolveRelative(parentDir, clean, root, jsTSSuffixes); ok && resolved != file {
					deps = append(deps, resolved)
				}
			}
		}
		cursor.Close()
		tree.Close()

		if len(deps) > 0 {
			graph[file] = append(graph[file], deps...)
		}
	}
	return nil
}

// captureIndex returns the index of the named capture in query, or -1 if
// the query has no such capture (which would be a programmer error in a
// literal query string, never a runtime condition).
func captureIndex(query *tree_sitter.Query, name string) int {
	for i, n := range query.CaptureNames() {
		if n == name {
			return i
		}
	}
	return -1
}
