package fstree

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestBuildRespectsGitignore(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".gitignore"), "ignored.txt\nbuild/\n")
	writeFile(t, filepath.Join(root, "kept.txt"), "x")
	writeFile(t, filepath.Join(root, "ignored.txt"), "x")
	writeFile(t, filepath.Join(root, "build", "out.bin"), "x")
	writeFile(t, filepath.Join(root, "src", "main.go"), "package main")

	matcher, err := NewMatcher(root)
	require.NoError(t, err)
	tree, err := Build(root, matcher)
	require.NoError(t, err)

	_, hasIgnored := tree["ignored.txt"]
	require.False(t, hasIgnored)
	_, hasBuild := tree["build"]
	require.False(t, hasBuild)
	_, hasKept := tree["kept.txt"]
	require.True(t, hasKept)
	srcNode, hasSrc := tree["src"]
	require.True(t, hasSrc)
	require.Equal(t, "folder", srcNode.Type)
	_, hasGitignore := tree[".gitignore"]
	require.True(t, hasGitignore, "gitignore file itself is not implicitly hidden")
}

func TestBuildNestedGitignoreReplacesParentMatcher(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".gitignore"), "*.log\n")
	writeFile(t, filepath.Join(root, "sub", ".gitignore"), "local.txt\n")
	writeFile(t, filepath.Join(root, "sub", "local.txt"), "x")
	writeFile(t, filepath.Join(root, "sub", "app.log"), "x")

	matcher, err := NewMatcher(root)
	require.NoError(t, err)
	tree, err := Build(root, matcher)
	require.NoError(t, err)

	sub := tree["sub"]
	require.NotNil(t, sub)
	_, hasLocal := sub.Children["local.txt"]
	require.False(t, hasLocal, "subdirectory's own .gitignore rule applies")
	_, hasLog := sub.Children["app.log"]
	require.True(t, hasLog, "nested matcher replaces, not merges with, the parent's rules")
}

func TestBuildKeepsFoldersAndFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b.txt"), "x")
	writeFile(t, filepath.Join(root, "a.txt"), "x")
	writeFile(t, filepath.Join(root, "zfolder", "x.txt"), "x")

	matcher, err := NewMatcher(root)
	require.NoError(t, err)
	tree, err := Build(root, matcher)
	require.NoError(t, err)

	require.Len(t, tree, 3)
	_, hasFolder := tree["zfolder"]
	require.True(t, hasFolder)
}

func TestValidatePathRejectsMissing(t *testing.T) {
	_, err := ValidatePath(filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
	require.ErrorIs(t, err, ErrPathInvalid)
}

func TestCollectFilesDepthFirstSorted(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b.txt"), "x")
	writeFile(t, filepath.Join(root, "a", "10.txt"), "x")
	writeFile(t, filepath.Join(root, "a", "2.txt"), "x")

	matcher, err := NewMatcher(root)
	require.NoError(t, err)
	tree, err := Build(root, matcher)
	require.NoError(t, err)

	files := CollectFiles(tree)
	require.Len(t, files, 3)
	require.Contains(t, files[len(files)-1], "b.txt")
}
