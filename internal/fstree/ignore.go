package fstree

import (
	"os"
	"path/filepath"

	gitignore "github.com/sabhiram/go-gitignore"
)

// IgnoreMatcher reports whether a path is ignored. is_dir lets matchers
// apply directory-only patterns (trailing slash) correctly.
type IgnoreMatcher interface {
	Matched(relPath string, isDir bool) bool
}

// emptyMatcher matches nothing, used for directories with no .gitignore.
type emptyMatcher struct{}

func (emptyMatcher) Matched(string, bool) bool { return false }

// gitIgnoreMatcher adapts github.com/sabhiram/go-gitignore to IgnoreMatcher.
type gitIgnoreMatcher struct {
	gi *gitignore.GitIgnore
}

func (m *gitIgnoreMatcher) Matched(relPath string, isDir bool) bool {
	if m.gi == nil {
		return false
	}
	if isDir {
		// go-gitignore matches directory patterns more reliably with a
		// trailing slash, mirroring git's own directory-only semantics.
		if m.gi.MatchesPath(relPath + "/") {
			return true
		}
	}
	return m.gi.MatchesPath(relPath)
}

// NewMatcher builds a matcher from the .gitignore file in dir, or an
// empty (match-nothing) matcher if dir has no .gitignore.
func NewMatcher(dir string) (IgnoreMatcher, error) {
	path := filepath.Join(dir, ".gitignore")
	if _, err := os.Stat(path); err != nil {
		return emptyMatcher{}, nil
	}
	gi, err := gitignore.CompileIgnoreFile(path)
	if err != nil {
		return nil, err
	}
	return &gitIgnoreMatcher{gi: gi}, nil
}

// hasOwnGitignore reports whether dir contains a .gitignore file.
func hasOwnGitignore(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".gitignore"))
	return err == nil
}

// orMatcher ignores a path when either underlying matcher ignores it.
type orMatcher struct {
	a, b IgnoreMatcher
}

func (m orMatcher) Matched(relPath string, isDir bool) bool {
	return m.a.Matched(relPath, isDir) || m.b.Matched(relPath, isDir)
}

// NewMatcherWithExtra builds the .gitignore matcher for dir the same way
// NewMatcher does, then ORs in extraPatterns (gitignore-syntax lines from a
// project config file) so project-level excludes apply on top of whatever
// .gitignore files are present.
func NewMatcherWithExtra(dir string, extraPatterns []string) (IgnoreMatcher, error) {
	base, err := NewMatcher(dir)
	if err != nil {
		return nil, err
	}
	if len(extraPatterns) == 0 {
		return base, nil
	}
	extra := gitignore.CompileIgnoreLines(extraPatterns...)
	return orMatcher{a: base, b: &gitIgnoreMatcher{gi: extra}}, nil
}
