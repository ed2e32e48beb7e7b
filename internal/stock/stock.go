// Package stock downloads and unpacks the bulk open-data archives. A Stock
// owns one remote ZIP and the working directory its records are extracted
// into; one Stock exists per entity family (acteur, organe, document).
package stock

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"io/fs"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/assemblee-ouverte/assemblee-backend/internal/pkg/logger"
)

const (
	connectTimeout = 5 * time.Second
	readTimeout    = 30 * time.Second
)

type Stock struct {
	log     *logger.Logger
	client  *http.Client
	url     string
	zipPath string
	dir     string
	prefix  string
}

// New builds a Stock for one entity family. Records are extracted from the
// archive subtree "json/<family>/" into <baseDir>/<family>.
func New(log *logger.Logger, baseDir, zipName, family, url string) *Stock {
	client := &http.Client{
		Timeout: readTimeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{Timeout: connectTimeout}).DialContext,
		},
	}
	return &Stock{
		log:     log.With("stock", family),
		client:  client,
		url:     url,
		zipPath: filepath.Join(baseDir, zipName),
		dir:     filepath.Join(baseDir, family),
		prefix:  "json/" + family + "/",
	}
}

// Dir returns the working directory records are extracted into.
func (s *Stock) Dir() string { return s.dir }

// Refresh downloads the archive and extracts the family subtree, returning
// the extracted file paths. Any fault makes the whole refresh fail; callers
// must not proceed with a stale or partial working directory.
func (s *Stock) Refresh(ctx context.Context) ([]string, error) {
	s.log.Debug("Refreshing stock", "url", s.url, "dir", s.dir)
	if err := s.download(ctx); err != nil {
		return nil, fmt.Errorf("download %s: %w", s.url, err)
	}
	files, err := s.extract()
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", s.zipPath, err)
	}
	return files, nil
}

// download streams the remote ZIP into a temporary file next to the final
// destination, then renames it into place. A partially-downloaded file can
// therefore never be mistaken for a complete archive by a retried run.
func (s *Stock) download(ctx context.Context) error {
	if err := os.MkdirAll(filepath.Dir(s.zipPath), 0o755); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	s.log.Debug("Archive download request", "status", resp.StatusCode, "url", s.url)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d downloading %s", resp.StatusCode, s.url)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.zipPath), ".download-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return os.Rename(tmpPath, s.zipPath)
}

// extract scans the archive's central directory once and copies only the
// entries under the family prefix, preserving relative structure. Directory
// entries are created explicitly so empty intermediate directories exist
// before files are written into them.
func (s *Stock) extract() ([]string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, err
	}

	archive, err := zip.OpenReader(s.zipPath)
	if err != nil {
		return nil, err
	}
	defer archive.Close()

	var extracted []string
	for _, entry := range archive.File {
		if !strings.HasPrefix(entry.Name, s.prefix) {
			continue
		}
		relative := entry.Name[len(s.prefix):]
		target := filepath.Join(s.dir, filepath.FromSlash(relative))
		if !strings.HasPrefix(target, filepath.Clean(s.dir)+string(os.PathSeparator)) && target != filepath.Clean(s.dir) {
			return nil, fmt.Errorf("archive entry escapes working directory: %s", entry.Name)
		}

		if entry.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return nil, err
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return nil, err
		}
		if err := copyEntry(entry, target); err != nil {
			return nil, err
		}
		extracted = append(extracted, target)
	}
	s.log.Debug("Archive extracted", "files", len(extracted), "prefix", s.prefix)
	return extracted, nil
}

func copyEntry(entry *zip.File, target string) error {
	source, err := entry.Open()
	if err != nil {
		return err
	}
	defer source.Close()

	destination, err := os.Create(target)
	if err != nil {
		return err
	}
	if _, err := io.Copy(destination, source); err != nil {
		destination.Close()
		return err
	}
	return destination.Close()
}

// Files walks the working directory and returns every JSON record file,
// sorted for deterministic iteration.
func (s *Stock) Files() ([]string, error) {
	var files []string
	err := filepath.WalkDir(s.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".json") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
