package depgraph

import (
	"os"
	"path/filepath"
	"strings"
)

// resolveRelative tries each suffix against import joined to parentDir,
// cleaning the result and accepting the first candidate that is both a
// regular file on disk and lexically contained within root. It probes the
// live filesystem rather than a pre-collected file set, since the file
// being imported may have no entry in the tree being walked.
func resolveRelative(parentDir, importStr, root string, suffixes []string) (string, bool) {
	for _, suffix := range suffixes {
		candidate := filepath.Clean(filepath.Join(parentDir, importStr+suffix))
		info, err := os.Stat(candidate)
		if err != nil || info.IsDir() {
			continue
		}
		if !withinRoot(candidate, root) {
			continue
		}
		return candidate, true
	}
	return "", false
}

// withinRoot reports whether candidate is root itself or lexically nested
// under it, preventing resolution from escaping the analysis root via "..".
func withinRoot(candidate, root string) bool {
	rel, err := filepath.Rel(root, candidate)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	return !strings.HasPrefix(rel, "..")
}
