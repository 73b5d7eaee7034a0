package depgraph

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProcessPythonModuleAbsoluteImport(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "pkg", "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "pkg", "sub", "mod.py"), []byte("x"), 0o644))
	file := filepath.Join(root, "main.py")

	graph := make(Graph)
	processPythonModule("pkg.sub.mod", file, root, root, graph)

	require.Equal(t, []string{filepath.Join(root, "pkg", "sub", "mod.py")}, graph[file])
}

func TestProcessPythonModuleRelativeImport(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "pkg"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "pkg", "sibling.py"), []byte("x"), 0o644))
	parentDir := filepath.Join(root, "pkg")
	file := filepath.Join(parentDir, "main.py")

	graph := make(Graph)
	processPythonModule(".sibling", file, parentDir, root, graph)

	require.Equal(t, []string{filepath.Join(root, "pkg", "sibling.py")}, graph[file])
}

func TestProcessPythonModuleParentRelativeImport(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "a", "b"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a", "sibling.py"), []byte("x"), 0o644))
	parentDir := filepath.Join(root, "a", "b")
	file := filepath.Join(parentDir, "main.py")

	graph := make(Graph)
	processPythonModule("..sibling", file, parentDir, root, graph)

	require.Equal(t, []string{filepath.Join(root, "a", "sibling.py")}, graph[file])
}

func TestProcessPythonModuleResolvesInitPy(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "pkg"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "pkg", "__init__.py"), []byte("x"), 0o644))
	file := filepath.Join(root, "main.py")

	graph := make(Graph)
	processPythonModule("pkg", file, root, root, graph)

	require.Equal(t, []string{filepath.Join(root, "pkg", "__init__.py")}, graph[file])
}

// TestProcessPythonModuleSelfImportDropsSelfEdge covers pkg/a.py containing
// "from . import a": the relative import resolves back to a.py itself, and
// that resolution must not appear as a dependency of the file it came from.
func TestProcessPythonModuleSelfImportDropsSelfEdge(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "pkg"), 0o755))
	file := filepath.Join(root, "pkg", "a.py")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	parentDir := filepath.Join(root, "pkg")

	graph := make(Graph)
	processPythonModule(".a", file, parentDir, root, graph)

	require.Empty(t, graph[file])
}
