package depgraph

import (
	"log/slog"
	"time"

	"github.com/dusk-indust/filetrace/internal/fstree"
)

// Analyze walks tree's files and returns the dependency graph for every
// supported language, in the fixed extractor order JS/TS, Python, Rust,
// C/C++, so that a file matched by more than one extractor (never expected
// in practice, since extensions are disjoint) has deterministic results.
func Analyze(root string, tree fstree.Tree, logger *slog.Logger) (Graph, error) {
	return AnalyzeLanguages(root, tree, logger, nil)
}

// AnalyzeLanguages behaves like Analyze but skips any extractor whose name
// is not in languages. A nil or empty languages runs every extractor,
// matching Analyze's default behavior. Recognized names: "javascript",
// "python", "rust", "cpp". Backs a project's filetrace.yml "languages"
// setting, letting a project opt out of extractors it has no use for.
func AnalyzeLanguages(root string, tree fstree.Tree, logger *slog.Logger, languages []string) (Graph, error) {
	start := time.Now()
	files := fstree.CollectFiles(tree)
	graph := make(Graph)

	enabled := enabledSet(languages)

	if enabled["javascript"] {
		if err := analyzeJSTypeScript(root, files, graph); err != nil {
			logger.Warn("javascript/typescript dependency analysis skipped", "error", err)
		}
	}
	if enabled["python"] {
		if err := analyzePython(root, files, graph); err != nil {
			logger.Warn("python dependency analysis skipped", "error", err)
		}
	}
	if enabled["rust"] {
		if err := analyzeRust(root, files, graph); err != nil {
			logger.Warn("rust dependency analysis skipped", "error", err)
		}
	}
	if enabled["cpp"] {
		if err := analyzeCpp(root, files, graph); err != nil {
			logger.Warn("c/c++ dependency analysis skipped", "error", err)
		}
	}

	expanded := ExpandInit(graph)

	logger.Info("dependency analysis finished",
		"root", root,
		"duration", time.Since(start),
		"files_with_dependencies", len(expanded),
	)
	return expanded, nil
}

func enabledSet(languages []string) map[string]bool {
	all := map[string]bool{"javascript": true, "python": true, "rust": true, "cpp": true}
	if len(languages) == 0 {
		return all
	}
	enabled := make(map[string]bool, len(languages))
	for _, l := range languages {
		enabled[l] = true
	}
	return enabled
}
