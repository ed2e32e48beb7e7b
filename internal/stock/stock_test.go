package stock

import (
	"archive/zip"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/assemblee-ouverte/assemblee-backend/internal/pkg/logger"
)

func buildArchive(t *testing.T, entries map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, body := range entries {
		if strings.HasSuffix(name, "/") {
			if _, err := w.Create(name); err != nil {
				t.Fatalf("create dir entry %s: %v", name, err)
			}
			continue
		}
		f, err := w.Create(name)
		if err != nil {
			t.Fatalf("create entry %s: %v", name, err)
		}
		if _, err := f.Write([]byte(body)); err != nil {
			t.Fatalf("write entry %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close archive: %v", err)
	}
	return buf.Bytes()
}

func serveArchive(t *testing.T, body []byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/zip")
		w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRefresh_ExtractsOnlyFamilySubtree(t *testing.T) {
	archive := buildArchive(t, map[string]string{
		"json/acteur/":            "",
		"json/acteur/PA1.json":    `{"acteur":{"uid":"PA1"}}`,
		"json/acteur/PA2.json":    `{"acteur":{"uid":"PA2"}}`,
		"json/organe/PO1.json":    `{"organe":{"uid":"PO1"}}`,
		"json/acteur/deep/x.json": `{}`,
	})
	srv := serveArchive(t, archive)

	base := t.TempDir()
	s := New(logger.NewNop(), base, "acteurs.zip", "acteur", srv.URL)
	files, err := s.Refresh(context.Background())
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("expected 3 extracted files, got %d: %v", len(files), files)
	}
	for _, f := range files {
		if !strings.HasPrefix(f, filepath.Join(base, "acteur")) {
			t.Fatalf("file outside working dir: %s", f)
		}
	}
	if _, err := os.Stat(filepath.Join(base, "acteur", "PA1.json")); err != nil {
		t.Fatalf("expected PA1.json: %v", err)
	}
	if _, err := os.Stat(filepath.Join(base, "organe")); !os.IsNotExist(err) {
		t.Fatalf("organe subtree should not be extracted")
	}
}

func TestRefresh_CreatesDirectoryEntries(t *testing.T) {
	archive := buildArchive(t, map[string]string{
		"json/document/":       "",
		"json/document/vide/":  "",
		"json/document/a.json": `{}`,
	})
	srv := serveArchive(t, archive)

	base := t.TempDir()
	s := New(logger.NewNop(), base, "documents.zip", "document", srv.URL)
	if _, err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	info, err := os.Stat(filepath.Join(base, "document", "vide"))
	if err != nil || !info.IsDir() {
		t.Fatalf("empty directory entry not created: %v", err)
	}
}

func TestRefresh_FailsOnBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	s := New(logger.NewNop(), t.TempDir(), "acteurs.zip", "acteur", srv.URL)
	if _, err := s.Refresh(context.Background()); err == nil {
		t.Fatal("expected error on 404 response")
	}
}

func TestRefresh_NoPartialArchiveLeftBehind(t *testing.T) {
	srv := serveArchive(t, []byte("this is not a zip file"))

	base := t.TempDir()
	s := New(logger.NewNop(), base, "acteurs.zip", "acteur", srv.URL)
	if _, err := s.Refresh(context.Background()); err == nil {
		t.Fatal("expected error on corrupt archive")
	}
	entries, err := os.ReadDir(base)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".download-") {
			t.Fatalf("temporary download file left behind: %s", e.Name())
		}
	}
}

func TestRefresh_RejectsTraversalEntries(t *testing.T) {
	archive := buildArchive(t, map[string]string{
		"json/acteur/../../evil.json": `{}`,
	})
	srv := serveArchive(t, archive)

	s := New(logger.NewNop(), t.TempDir(), "acteurs.zip", "acteur", srv.URL)
	if _, err := s.Refresh(context.Background()); err == nil {
		t.Fatal("expected error on traversal entry")
	}
}

func TestFiles_SortedJSONOnly(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "acteur")
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	for _, name := range []string{"b.json", "a.json", "notes.txt", "sub/c.json"} {
		if err := os.WriteFile(filepath.Join(dir, filepath.FromSlash(name)), []byte("{}"), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}

	s := New(logger.NewNop(), base, "acteurs.zip", "acteur", "http://unused")
	files, err := s.Files()
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("expected 3 json files, got %v", files)
	}
	if files[0] != filepath.Join(dir, "a.json") || files[1] != filepath.Join(dir, "b.json") {
		t.Fatalf("files not sorted: %v", files)
	}
}
