package httpapi

import (
	"net/http"
	"os"
	"time"

	"github.com/dusk-indust/filetrace/internal/config"
	"github.com/dusk-indust/filetrace/internal/depgraph"
	"github.com/dusk-indust/filetrace/internal/fstree"
	"github.com/dusk-indust/filetrace/internal/graphstore"
	"golang.org/x/sync/errgroup"
)

// loadProjectConfig reads root's filetrace.yml, if any.
func loadProjectConfig(root string) (*config.ProjectConfig, error) {
	return config.LoadProjectConfig(root)
}

// matcherFor builds the ignore matcher for root, layering projectCfg's
// excludeDirs on top of its .gitignore rules.
func matcherFor(root string, projectCfg *config.ProjectConfig) (fstree.IgnoreMatcher, error) {
	extra := make([]string, len(projectCfg.ExcludeDirs))
	for i, d := range projectCfg.ExcludeDirs {
		extra[i] = d + "/"
	}
	return fstree.NewMatcherWithExtra(root, extra)
}

func (s *Server) handleConnect(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, map[string]any{"message": "Connection successful"})
}

func (s *Server) handleDirectory(w http.ResponseWriter, r *http.Request) {
	requested := queryPath(r)
	s.logger.Info("directory request", "path", requested)
	start := time.Now()

	root, err := fstree.ValidatePath(requested)
	if err != nil {
		s.logger.Warn("path validation failed", "path", requested, "error", err)
		writeFailure(w, err.Error())
		return
	}

	projectCfg, err := loadProjectConfig(root)
	if err != nil {
		writeFailure(w, err.Error())
		return
	}
	matcher, err := matcherFor(root, projectCfg)
	if err != nil {
		writeFailure(w, err.Error())
		return
	}
	tree, err := fstree.Build(root, matcher)
	if err != nil {
		s.logger.Warn("failed to build tree", "root", root, "error", err)
		writeFailure(w, err.Error())
		return
	}

	s.logger.Info("directory request complete", "root", root, "duration", time.Since(start))
	writeSuccess(w, map[string]any{"root": root, "tree": tree})
}

func (s *Server) handleDependencies(w http.ResponseWriter, r *http.Request) {
	requested := queryPath(r)
	s.logger.Info("dependencies request", "path", requested)
	start := time.Now()

	root, err := fstree.ValidatePath(requested)
	if err != nil {
		s.logger.Warn("path validation failed", "path", requested, "error", err)
		writeFailure(w, err.Error())
		return
	}

	projectCfg, err := loadProjectConfig(root)
	if err != nil {
		writeFailure(w, err.Error())
		return
	}
	matcher, err := matcherFor(root, projectCfg)
	if err != nil {
		writeFailure(w, err.Error())
		return
	}
	tree, err := fstree.Build(root, matcher)
	if err != nil {
		s.logger.Warn("failed to build tree", "root", root, "error", err)
		writeFailure(w, err.Error())
		return
	}

	graph, err := depgraph.AnalyzeLanguages(root, tree, s.logger, projectCfg.Languages)
	if err != nil {
		s.logger.Warn("dependency analysis failed", "root", root, "error", err)
		graph = make(depgraph.Graph)
	}

	if s.store != nil {
		files, edges := graphstore.FromDependencyGraph(graph)
		if err := s.store.Replace(r.Context(), files, edges); err != nil {
			s.logger.Warn("failed to persist dependency graph", "error", err)
		}
	}

	s.logger.Info("dependencies request complete", "root", root, "duration", time.Since(start))
	writeSuccess(w, map[string]any{"root": root, "dependencyGraph": graph})
}

func (s *Server) handleFile(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		s.logger.Warn("file content request with no path")
		writeFailureStatus(w, http.StatusBadRequest, "Path is required")
		return
	}

	content, err := readFileLimited(path, s.cfg.MaxFileBytes)
	if err != nil {
		s.logger.Warn("failed to read file", "path", path, "error", err)
		writeFailureStatus(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeSuccess(w, map[string]any{"content": string(content)})
}

type filesRequest struct {
	Paths []string `json:"paths"`
}

type fileResult struct {
	Success bool    `json:"success"`
	Content *string `json:"content,omitempty"`
	Error   *string `json:"error,omitempty"`
}

// handleFiles reads every requested file concurrently through a bounded
// errgroup. No goroutine's error is propagated upward: each file's outcome
// is independently reported in the response body rather than aborting the
// batch on the first failure.
func (s *Server) handleFiles(w http.ResponseWriter, r *http.Request) {
	var req filesRequest
	if err := decodeJSON(r, &req); err != nil {
		writeFailureStatus(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.logger.Info("batch file request", "count", len(req.Paths))
	start := time.Now()

	results := make([]fileResult, len(req.Paths))
	g, _ := errgroup.WithContext(r.Context())
	g.SetLimit(16)

	for i, path := range req.Paths {
		i, path := i, path
		g.Go(func() error {
			content, err := readFileLimited(path, s.cfg.MaxFileBytes)
			if err != nil {
				s.logger.Warn("failed to read file in batch", "path", path, "error", err)
				msg := err.Error()
				results[i] = fileResult{Success: false, Error: &msg}
				return nil
			}
			text := string(content)
			results[i] = fileResult{Success: true, Content: &text}
			return nil
		})
	}
	_ = g.Wait()

	byPath := make(map[string]fileResult, len(req.Paths))
	for i, path := range req.Paths {
		byPath[path] = results[i]
	}

	s.logger.Info("batch file request complete", "duration", time.Since(start))
	writeSuccess(w, map[string]any{"files": byPath})
}

type impactRequest struct {
	ChangedFiles []string `json:"changedFiles"`
}

// handleImpact is a supplemental endpoint, not part of the original
// surface: it reports the blast radius of a change set using the
// persisted graphstore.Store rather than recomputing the dependency graph.
func (s *Server) handleImpact(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeFailureStatus(w, http.StatusServiceUnavailable, "impact assessment store unavailable")
		return
	}
	var req impactRequest
	if err := decodeJSON(r, &req); err != nil {
		writeFailureStatus(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.store.AssessImpact(r.Context(), req.ChangedFiles)
	if err != nil {
		writeFailureStatus(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeSuccess(w, map[string]any{"impact": result})
}

func queryPath(r *http.Request) string {
	if p := r.URL.Query().Get("path"); p != "" {
		return p
	}
	return "."
}

func readFileLimited(path string, maxBytes int64) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if maxBytes > 0 && info.Size() > maxBytes {
		return nil, errFileTooLarge(path, info.Size(), maxBytes)
	}
	return os.ReadFile(path)
}
