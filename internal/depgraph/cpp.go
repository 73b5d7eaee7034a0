package depgraph

import (
	"os"
	"path/filepath"
	"strings"
	"unsafe"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_c "github.com/tree-sitter/tree-sitter-c/bindings/go"
	tree_sitter_cpp "github.com/tree-sitter/tree-sitter-cpp/bindings/go"
)

const cppQuery = `(preproc_include path: (string_literal (string_content) @header))`

var cppSuffixes = []string{"", ".h", ".hpp", ".hxx"}

func cExtension(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".c"
}

func cppExtension(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cpp", ".h", ".hpp", ".hxx":
		return true
	default:
		return false
	}
}

// analyzeCpp walks every candidate C and C++ file once, parsing .c sources
// with the C grammar and .cpp/.h/.hpp/.hxx files with the C++ grammar. The
// preproc_include construct the query targets is identical across both
// grammars, but plain C sources can hold constructs the C++ parser chokes
// on (K&R-style declarations, for instance), so .c files get their own
// parser rather than going through the C++ grammar. Headers, including
// C-only ones, are always parsed as C++.
func analyzeCpp(root string, files []string, graph Graph) error {
	cExtractor, err := newCppExtractor(tree_sitter_c.Language())
	if err != nil {
		return err
	}
	defer cExtractor.close()

	cppExtractor, err := newCppExtractor(tree_sitter_cpp.Language())
	if err != nil {
		return err
	}
	defer cppExtractor.close()

	for _, file := range files {
		var extractor *cppExtractorState
		switch {
		case cExtension(file):
			extractor = cExtractor
		case cppExtension(file):
			extractor = cppExtractor
		default:
			continue
		}

		deps, err := extractor.extract(root, file)
		if err != nil {
			continue
		}
		if len(deps) > 0 {
			graph[file] = append(graph[file], deps...)
		}
	}
	return nil
}

type cppExtractorState struct {
	parser    *tree_sitter.Parser
	query     *tree_sitter.Query
	headerIdx int
}

func newCppExtractor(lang unsafe.Pointer) (*cppExtractorState, error) {
	language := tree_sitter.NewLanguage(lang)
	query, err := tree_sitter.NewQuery(language, cppQuery)
	if err != nil {
		return nil, err
	}

	parser := tree_sitter.NewParser()
	if err := parser.SetLanguage(language); err != nil {
		query.Close()
		parser.Close()
		return nil, err
	}

	return &cppExtractorState{
		parser:    parser,
		query:     query,
		headerIdx: captureIndex(query, "header"),
	}, nil
}

func (e *cppExtractorState) close() {
	e.query.Close()
	e.parser.Close()
}

func (e *cppExtractorState) extract(root, file string) ([]string, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	tree := e.parser.Parse(content, nil)
	if tree == nil {
		return nil, nil
	}
	defer tree.Close()

	parentDir := filepath.Dir(file)

	cursor := tree_sitter.NewQueryCursor()
	defer cursor.Close()
	matches := cursor.Matches(e.query, tree.RootNode(), content)

	var deps []string
	for match := matches.Next(); match != nil; match = matches.Next() {
		for _, cap := range match.Captures {
			if int(cap.Index) != e.headerIdx {
				continue
			}
			raw := cap.Node.Utf8Text(content)
			clean := strings.Trim(strings.Trim(raw, "\""), "'")
			if resolved, ok := resolveRelative(parentDir, clean, root, cppSuffixes); ok && resolved != file {
				deps = append(deps, resolved)
			}
		}
	}
	return deps, nil
}
