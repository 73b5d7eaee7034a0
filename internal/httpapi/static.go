package httpapi

import (
	"io/fs"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
)

// handleStatic serves the embedded public/ bundle, falling back to
// index.html for the root path.
func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	requested := strings.TrimPrefix(r.URL.Path, "/")
	if requested == "" {
		requested = "index.html"
	}

	data, err := fs.ReadFile(s.assets, filepath.Join("public", requested))
	if err != nil {
		http.Error(w, "404 Not Found", http.StatusNotFound)
		return
	}

	contentType := mime.TypeByExtension(filepath.Ext(requested))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
