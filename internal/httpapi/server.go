// Package httpapi wires the HTTP surface: directory tree, dependency graph,
// file content, and batch file content, plus a supplemental impact
// assessment endpoint and a catch-all static-asset handler. Route wiring
// uses a bare http.ServeMux with method-prefixed patterns.
package httpapi

import (
	"context"
	"crypto/tls"
	"embed"
	"log/slog"
	"net/http"

	"github.com/dusk-indust/filetrace/internal/config"
	"github.com/dusk-indust/filetrace/internal/graphstore"
)

// Server bundles everything the HTTP handlers need.
type Server struct {
	http   *http.Server
	logger *slog.Logger
	cfg    config.ServerConfig
	store  graphstore.Store
	assets embed.FS
}

// New builds a Server and registers every route on a fresh ServeMux.
func New(cfg config.ServerConfig, store graphstore.Store, assets embed.FS, logger *slog.Logger) *Server {
	s := &Server{logger: logger, cfg: cfg, store: store, assets: assets}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/connect", s.handleConnect)
	mux.HandleFunc("GET /api/directory", s.handleDirectory)
	mux.HandleFunc("GET /api/dependencies", s.handleDependencies)
	mux.HandleFunc("GET /api/file", s.handleFile)
	mux.HandleFunc("POST /api/files", s.handleFiles)
	mux.HandleFunc("POST /api/impact", s.handleImpact)
	mux.HandleFunc("/", s.handleStatic)

	s.http = &http.Server{
		Addr:    "0.0.0.0:" + cfg.Port,
		Handler: corsMiddleware(cfg.AllowedOrigins)(loggingMiddleware(logger)(mux)),
	}
	return s
}

// ListenAndServe starts the server, choosing TLS when CertPath and KeyPath
// both point at valid certificate/key files, and plain HTTP otherwise.
func (s *Server) ListenAndServe() error {
	if s.cfg.CertPath != "" && s.cfg.KeyPath != "" {
		if cert, err := tls.LoadX509KeyPair(s.cfg.CertPath, s.cfg.KeyPath); err == nil {
			s.http.TLSConfig = &tls.Config{Certificates: []tls.Certificate{cert}}
			s.logger.Info("starting https server", "addr", s.http.Addr)
			return s.http.ListenAndServeTLS("", "")
		}
		s.logger.Warn("cert_path or key_path invalid, starting plain http server")
	}
	s.logger.Info("starting http server", "addr", s.http.Addr)
	return s.http.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
