// ABOUTME: Directory-backed site storage for markdown sources and generated output.
// ABOUTME: Scans _posts-style directories, writes HTML pages, and reads/writes posts.json.
package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/google/renameio/v2"

	"github.com/2389-research/blogbuild/internal/models"
)

// DirStore reads sources from one directory and writes output to another.
type DirStore struct {
	sourceDir string // markdown posts (_posts/)
	outputDir string // generated pages (posts/)
	indexPath string // aggregate index (posts.json)
}

// NewDirStore creates a store over the given paths. Nothing is touched on disk.
func NewDirStore(sourceDir, outputDir, indexPath string) (*DirStore, error) {
	return &DirStore{
		sourceDir: sourceDir,
		outputDir: outputDir,
		indexPath: indexPath,
	}, nil
}

// EnsureOutputDir creates the output directory and any missing parents.
func (s *DirStore) EnsureOutputDir() error {
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return fsError(OpMkdir, s.outputDir, err)
	}
	return nil
}

// ListSources returns paths of *.md files in the source directory, sorted by
// filename descending. Subdirectories are ignored.
func (s *DirStore) ListSources() ([]string, error) {
	entries, err := os.ReadDir(s.sourceDir)
	if err != nil {
		return nil, fsError(OpScan, s.sourceDir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		names = append(names, entry.Name())
	}

	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(s.sourceDir, name)
	}
	return paths, nil
}

// ReadSource reads a markdown file. The handle is closed before returning.
func (s *DirStore) ReadSource(path string) (*models.Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fsError(OpRead, path, err)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fsError(OpRead, path, err)
	}
	if !utf8.Valid(data) {
		return nil, fsError(OpRead, path, ErrInvalidUTF8)
	}

	return &models.Source{
		Name:    filepath.Base(path),
		Path:    path,
		Content: string(data),
	}, nil
}

// WritePage writes html to <outputDir>/<slug>.html, replacing any existing file.
func (s *DirStore) WritePage(slug, html string) (string, error) {
	path := filepath.Join(s.outputDir, slug+".html")
	if err := renameio.WriteFile(path, []byte(html), 0o644); err != nil {
		return "", fsError(OpWrite, path, err)
	}
	return path, nil
}

// WriteIndex serializes records as a 2-space indented JSON array.
func (s *DirStore) WriteIndex(records []models.PostRecord) (bool, error) {
	if len(records) == 0 {
		return false, nil
	}

	data, err := encodeIndex(records)
	if err != nil {
		return false, err
	}

	if dir := filepath.Dir(s.indexPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return false, fsError(OpMkdir, dir, err)
		}
	}
	if err := renameio.WriteFile(s.indexPath, data, 0o644); err != nil {
		return false, fsError(OpWrite, s.indexPath, err)
	}
	return true, nil
}

// ReadIndex reads the index file back into records.
func (s *DirStore) ReadIndex() ([]models.PostRecord, error) {
	data, err := os.ReadFile(s.indexPath)
	if err != nil {
		return nil, fsError(OpRead, s.indexPath, err)
	}

	var records []models.PostRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse index %s: %w", s.indexPath, err)
	}
	return records, nil
}

// IndexPath returns the index file location.
func (s *DirStore) IndexPath() string {
	return s.indexPath
}

// Close releases any resources held by the store.
func (s *DirStore) Close() error {
	return nil
}

// encodeIndex renders records as UTF-8 JSON without HTML escaping or a
// trailing newline.
func encodeIndex(records []models.PostRecord) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
