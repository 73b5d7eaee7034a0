// Package fstree builds an ignore-aware view of a directory tree and
// flattens it into a naturally-sorted file list.
package fstree

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// TreeNode is a tagged file-or-folder entry. Children is nil for files.
type TreeNode struct {
	Type     string               `json:"type"` // "file" | "folder"
	Path     string               `json:"path"`
	Children map[string]*TreeNode `json:"children,omitempty"`
}

// Tree is the top-level mapping from base name to TreeNode.
type Tree map[string]*TreeNode

// ValidatePath canonicalizes requestedPath and verifies it exists.
func ValidatePath(requestedPath string) (string, error) {
	if requestedPath == "" {
		requestedPath = "."
	}
	if _, err := os.Stat(requestedPath); err != nil {
		return "", fmt.Errorf("%w: path does not exist: %s", ErrPathInvalid, requestedPath)
	}
	resolved, err := filepath.Abs(requestedPath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPathInvalid, err)
	}
	resolved, err = filepath.EvalSymlinks(resolved)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPathInvalid, err)
	}
	return resolved, nil
}

// Build walks root recursively and returns the ignore-filtered Tree.
// matcher is the IgnoreMatcher for root itself; subdirectories with their
// own .gitignore get a freshly compiled matcher that replaces it for their
// subtree, rather than merging with the parent's rules. Each directory's
// entries are sorted folders first, then by NaturalLess, before insertion,
// but Tree and Children are maps: the returned value keeps no entry order,
// and its JSON encoding lists keys in byte-wise order.
func Build(root string, matcher IgnoreMatcher) (Tree, error) {
	return buildDir(root, root, matcher)
}

func buildDir(dir, root string, matcher IgnoreMatcher) (Tree, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: reading directory %s: %v", ErrIO, dir, err)
	}

	type dirent struct {
		name  string
		isDir bool
	}
	kept := make([]dirent, 0, len(entries))
	for _, e := range entries {
		isDir := e.IsDir()
		relPath, err := filepath.Rel(root, filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrIO, err)
		}
		if matcher.Matched(filepath.ToSlash(relPath), isDir) {
			continue
		}
		kept = append(kept, dirent{name: e.Name(), isDir: isDir})
	}

	sort.Slice(kept, func(i, j int) bool {
		if kept[i].isDir != kept[j].isDir {
			return kept[i].isDir // folders first
		}
		return NaturalLess(kept[i].name, kept[j].name)
	})

	tree := make(Tree, len(kept))
	for _, d := range kept {
		childPath := filepath.Join(dir, d.name)
		if d.isDir {
			childMatcher := matcher
			if hasOwnGitignore(childPath) {
				m, err := NewMatcher(childPath)
				if err != nil {
					return nil, fmt.Errorf("%w: compiling .gitignore in %s: %v", ErrIO, childPath, err)
				}
				childMatcher = m
			}
			children, err := buildDir(childPath, root, childMatcher)
			if err != nil {
				return nil, err
			}
			tree[d.name] = &TreeNode{Type: "folder", Path: childPath, Children: children}
		} else {
			tree[d.name] = &TreeNode{Type: "file", Path: childPath}
		}
	}
	return tree, nil
}
