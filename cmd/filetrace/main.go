package main

import (
	"context"
	"embed"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dusk-indust/filetrace/internal/config"
	"github.com/dusk-indust/filetrace/internal/graphstore"
	"github.com/dusk-indust/filetrace/internal/httpapi"
	"github.com/dusk-indust/filetrace/internal/mcpserver"
)

//go:embed all:public
var publicAssets embed.FS

// version is set by the linker at build time.
var version = "dev"

type cliFlags struct {
	ServeMCP bool
	Version  bool
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var flags cliFlags

	fs := flag.NewFlagSet("filetrace", flag.ContinueOnError)
	fs.BoolVar(&flags.ServeMCP, "serve-mcp", false, "run as MCP server on stdio instead of HTTP")
	fs.BoolVar(&flags.Version, "version", false, "print version and exit")
	fs.Usage = func() { printUsage(fs) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if flags.Version {
		fmt.Println(version)
		return nil
	}

	serverCfg := config.LoadServerConfig()
	logger := newLogger(serverCfg.LogLevel)

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}
	projectCfg, err := config.LoadProjectConfig(wd)
	if err != nil {
		return fmt.Errorf("loading project config: %w", err)
	}

	store, err := newGraphStore(logger, projectCfg.FollowKuzu)
	if err != nil {
		return fmt.Errorf("opening graph store: %w", err)
	}
	defer store.Close()
	if err := store.InitSchema(context.Background()); err != nil {
		return fmt.Errorf("initializing graph schema: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if flags.ServeMCP {
		fmt.Fprintf(os.Stderr, "filetrace MCP server v%s starting on stdio\n", version)
		svc := mcpserver.NewService(store, logger)
		err := mcpserver.RunStdio(ctx, svc)
		fmt.Fprintf(os.Stderr, "filetrace MCP server stopped\n")
		return err
	}

	server := httpapi.New(serverCfg, store, publicAssets, logger)

	errCh := make(chan error, 1)
	go func() { errCh <- server.ListenAndServe() }()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// newGraphStore opens the CGO-backed KuzuStore when the project config asks
// for it (followKuzu: true) and CGO support is compiled in, falling back to
// the in-memory store otherwise.
func newGraphStore(logger *slog.Logger, followKuzu bool) (graphstore.Store, error) {
	if !followKuzu {
		return graphstore.NewMemStore(), nil
	}
	store, err := newKuzuGraphStore()
	if err == nil && store != nil {
		return store, nil
	}
	if err != nil {
		logger.Warn("falling back to in-memory graph store", "error", err)
	}
	return graphstore.NewMemStore(), nil
}

func printUsage(fs *flag.FlagSet) {
	w := os.Stderr
	fmt.Fprintf(w, "filetrace v%s — directory tree and dependency graph service\n\n", version)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  filetrace [flags]             Run the HTTP server")
	fmt.Fprintln(w, "  filetrace --serve-mcp         Run as MCP server on stdio")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  PORT              HTTP port (default 3000)")
	fmt.Fprintln(w, "  CERT_PATH         TLS certificate path (enables HTTPS with KEY_PATH)")
	fmt.Fprintln(w, "  KEY_PATH          TLS private key path")
	fmt.Fprintln(w, "  LOG_LEVEL         debug, info, warn, or error (default info)")
	fmt.Fprintln(w, "  ALLOWED_ORIGINS   comma-separated CORS origins (default: any)")
	fmt.Fprintln(w, "  MAX_FILE_BYTES    per-file read limit in bytes (default 5MB)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fs.PrintDefaults()
}
