package depgraph

import (
	"os"
	"path/filepath"
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_rust "github.com/tree-sitter/tree-sitter-rust/bindings/go"
)

const rustQuery = `
(mod_item name: (identifier) @module)
(use_declaration argument: [ (identifier) @module (scoped_identifier) @module ])
`

var rustSuffixes = []string{".rs", "/mod.rs"}

func analyzeRust(root string, files []string, graph Graph) error {
	language := tree_sitter.NewLanguage(tree_sitter_rust.Language())
	query, err := tree_sitter.NewQuery(language, rustQuery)
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

	for _, file := range files {
		if strings.ToLower(filepath.Ext(file)) != ".rs" {
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
				if int(cap.Index) != moduleIdx {
					continue
				}
				moduleStr := cap.Node.Utf8Text(content)
				var clean string
				switch {
				case strings.HasPrefix(moduleStr, "self::"):
					clean = strings.TrimPrefix(moduleStr, "self::")
				case strings.HasPrefix(moduleStr, "super::"):
					clean = "../" + strings.TrimPrefix(moduleStr, "super::")
				default:
					clean = moduleStr
				}
				clean = strings.ReplaceAll(clean, "::", "/")

				if resolved, ok := resolveRelative(parentDir, clean, root, rustSuffixes); ok && resolved != file {
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
