package httpapi

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/dusk-indust/filetrace/internal/config"
	"github.com/dusk-indust/filetrace/internal/graphstore"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/assets
var testAssets embed.FS

func testServer(t *testing.T) *Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(config.ServerConfig{Port: "0", MaxFileBytes: 1024 * 1024}, graphstore.NewMemStore(), testAssets, logger)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func TestHandleConnect(t *testing.T) {
	s := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/connect", nil)
	rec := httptest.NewRecorder()
	s.handleConnect(rec, req)

	var body map[string]any
	decodeBody(t, rec, &body)
	require.Equal(t, true, body["success"])
}

func TestHandleDirectoryRejectsMissingPath(t *testing.T) {
	s := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/directory?path=/does/not/exist", nil)
	rec := httptest.NewRecorder()
	s.handleDirectory(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	decodeBody(t, rec, &body)
	require.Equal(t, false, body["success"])
}

func TestHandleDirectoryBuildsTree(t *testing.T) {
	s := testServer(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("x"), 0o644))

	req := httptest.NewRequest(http.MethodGet, "/api/directory?path="+dir, nil)
	rec := httptest.NewRecorder()
	s.handleDirectory(rec, req)

	var body map[string]any
	decodeBody(t, rec, &body)
	require.Equal(t, true, body["success"])
	require.NotNil(t, body["tree"])
}

func TestHandleFileRequiresPath(t *testing.T) {
	s := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/file", nil)
	rec := httptest.NewRecorder()
	s.handleFile(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleFileReadsContent(t *testing.T) {
	s := testServer(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "hello.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello world"), 0o644))

	req := httptest.NewRequest(http.MethodGet, "/api/file?path="+path, nil)
	rec := httptest.NewRecorder()
	s.handleFile(rec, req)

	var body map[string]any
	decodeBody(t, rec, &body)
	require.Equal(t, true, body["success"])
	require.Equal(t, "hello world", body["content"])
}

func TestHandleFilesBatchReportsPerFileOutcome(t *testing.T) {
	s := testServer(t)
	dir := t.TempDir()
	ok := filepath.Join(dir, "ok.txt")
	require.NoError(t, os.WriteFile(ok, []byte("data"), 0o644))
	missing := filepath.Join(dir, "missing.txt")

	payload, _ := json.Marshal(filesRequest{Paths: []string{ok, missing}})
	req := httptest.NewRequest(http.MethodPost, "/api/files", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	s.handleFiles(rec, req)

	var body struct {
		Success bool                  `json:"success"`
		Files   map[string]fileResult `json:"files"`
	}
	decodeBody(t, rec, &body)
	require.True(t, body.Success)
	require.True(t, body.Files[ok].Success)
	require.False(t, body.Files[missing].Success)
}

func TestHandleImpactUsesStore(t *testing.T) {
	s := testServer(t)
	require.NoError(t, s.store.Replace(context.Background(), []graphstore.FileNode{{Path: "a.go"}, {Path: "b.go"}},
		[]graphstore.Edge{{SourcePath: "a.go", TargetPath: "b.go"}}))

	payload, _ := json.Marshal(impactRequest{ChangedFiles: []string{"b.go"}})
	req := httptest.NewRequest(http.MethodPost, "/api/impact", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	s.handleImpact(rec, req)

	var body map[string]any
	decodeBody(t, rec, &body)
	require.Equal(t, true, body["success"])
}
