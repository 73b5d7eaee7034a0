package fstree

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewMatcherWithExtraMergesProjectExcludes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".gitignore"), "ignored.txt\n")
	writeFile(t, filepath.Join(root, "ignored.txt"), "x")
	writeFile(t, filepath.Join(root, "kept.txt"), "x")
	writeFile(t, filepath.Join(root, "vendor", "lib.go"), "package vendor")

	matcher, err := NewMatcherWithExtra(root, []string{"vendor/"})
	require.NoError(t, err)
	tree, err := Build(root, matcher)
	require.NoError(t, err)

	_, hasIgnored := tree["ignored.txt"]
	_, hasVendor := tree["vendor"]
	_, hasKept := tree["kept.txt"]
	require.False(t, hasIgnored)
	require.False(t, hasVendor)
	require.True(t, hasKept)
}

func TestNewMatcherWithExtraNoPatternsReturnsBaseMatcher(t *testing.T) {
	root := t.TempDir()
	matcher, err := NewMatcherWithExtra(root, nil)
	require.NoError(t, err)
	require.False(t, matcher.Matched("anything.txt", false))
}
