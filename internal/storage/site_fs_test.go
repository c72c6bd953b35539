// ABOUTME: Tests for directory-backed site storage.
// ABOUTME: Covers scan ordering, filesystem errors, page writes, and index serialization.
package storage

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/2389-research/blogbuild/internal/models"
)

func newTestStore(t *testing.T) (*DirStore, string) {
	t.Helper()
	tmpDir := t.TempDir()
	srcDir := filepath.Join(tmpDir, "_posts")
	if err := os.MkdirAll(srcDir, 0o750); err != nil {
		t.Fatalf("failed to create source dir: %v", err)
	}
	store, err := NewDirStore(srcDir, filepath.Join(tmpDir, "posts"), filepath.Join(tmpDir, "posts.json"))
	if err != nil {
		t.Fatalf("NewDirStore error: %v", err)
	}
	return store, tmpDir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestListSourcesNewestFirst(t *testing.T) {
	store, tmpDir := newTestStore(t)
	srcDir := filepath.Join(tmpDir, "_posts")

	for _, name := range []string{
		"2024-12-31-year-end.md",
		"2025-02-01-february.md",
		"2025-10-05-october.md",
		"2025-01-15-january.md",
		"notes.txt",
	} {
		writeFile(t, filepath.Join(srcDir, name), "body")
	}
	if err := os.Mkdir(filepath.Join(srcDir, "drafts.md"), 0o750); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}

	paths, err := store.ListSources()
	if err != nil {
		t.Fatalf("ListSources error: %v", err)
	}

	var names []string
	for _, p := range paths {
		names = append(names, filepath.Base(p))
	}
	want := []string{
		"2025-10-05-october.md",
		"2025-02-01-february.md",
		"2025-01-15-january.md",
		"2024-12-31-year-end.md",
	}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("ListSources() = %v, want %v", names, want)
	}
}

func TestListSourcesEmptyDir(t *testing.T) {
	store, _ := newTestStore(t)

	paths, err := store.ListSources()
	if err != nil {
		t.Fatalf("ListSources error: %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("expected no sources, got %v", paths)
	}
}

func TestListSourcesMissingDir(t *testing.T) {
	tmpDir := t.TempDir()
	store, _ := NewDirStore(filepath.Join(tmpDir, "missing"), filepath.Join(tmpDir, "out"), filepath.Join(tmpDir, "posts.json"))

	_, err := store.ListSources()
	if err == nil {
		t.Fatal("expected error for missing source directory")
	}

	var fsErr *FileSystemError
	if !errors.As(err, &fsErr) {
		t.Fatalf("expected *FileSystemError, got %T", err)
	}
	if fsErr.Op != OpScan {
		t.Errorf("Op = %q, want %q", fsErr.Op, OpScan)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("expected error to wrap fs.ErrNotExist")
	}
}

func TestReadSource(t *testing.T) {
	store, tmpDir := newTestStore(t)
	path := filepath.Join(tmpDir, "_posts", "2025-11-05-first-post.md")
	writeFile(t, path, "---\ntitle: First\n---\nbody")

	src, err := store.ReadSource(path)
	if err != nil {
		t.Fatalf("ReadSource error: %v", err)
	}
	if src.Name != "2025-11-05-first-post.md" {
		t.Errorf("Name = %q", src.Name)
	}
	if src.Content != "---\ntitle: First\n---\nbody" {
		t.Errorf("Content = %q", src.Content)
	}
}

func TestReadSourceMissing(t *testing.T) {
	store, tmpDir := newTestStore(t)

	_, err := store.ReadSource(filepath.Join(tmpDir, "_posts", "gone.md"))
	var fsErr *FileSystemError
	if !errors.As(err, &fsErr) || fsErr.Op != OpRead {
		t.Fatalf("expected read FileSystemError, got %v", err)
	}
}

func TestWritePageOverwrites(t *testing.T) {
	store, tmpDir := newTestStore(t)
	if err := store.EnsureOutputDir(); err != nil {
		t.Fatalf("EnsureOutputDir error: %v", err)
	}

	if _, err := store.WritePage("hello", "old"); err != nil {
		t.Fatalf("WritePage error: %v", err)
	}
	path, err := store.WritePage("hello", "new")
	if err != nil {
		t.Fatalf("WritePage error: %v", err)
	}

	if path != filepath.Join(tmpDir, "posts", "hello.html") {
		t.Errorf("path = %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read page: %v", err)
	}
	if string(data) != "new" {
		t.Errorf("page content = %q, want new", data)
	}

	entries, _ := os.ReadDir(filepath.Join(tmpDir, "posts"))
	if len(entries) != 1 {
		t.Errorf("expected no leftover temp files, got %d entries", len(entries))
	}
}

func TestWritePageWithoutOutputDir(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.WritePage("hello", "x")
	var fsErr *FileSystemError
	if !errors.As(err, &fsErr) || fsErr.Op != OpWrite {
		t.Fatalf("expected write FileSystemError, got %v", err)
	}
}

func TestWriteIndexEmptyIsNoop(t *testing.T) {
	store, _ := newTestStore(t)

	written, err := store.WriteIndex(nil)
	if err != nil {
		t.Fatalf("WriteIndex error: %v", err)
	}
	if written {
		t.Error("expected written=false for empty records")
	}
	if _, err := os.Stat(store.IndexPath()); !os.IsNotExist(err) {
		t.Error("index file should not exist")
	}
}

func TestWriteIndexEmptyKeepsExistingFile(t *testing.T) {
	store, _ := newTestStore(t)
	writeFile(t, store.IndexPath(), "previous")

	if _, err := store.WriteIndex([]models.PostRecord{}); err != nil {
		t.Fatalf("WriteIndex error: %v", err)
	}

	data, _ := os.ReadFile(store.IndexPath())
	if string(data) != "previous" {
		t.Errorf("index content = %q, want untouched", data)
	}
}

func TestWriteIndexFormat(t *testing.T) {
	store, _ := newTestStore(t)
	records := []models.PostRecord{
		{Title: "Tips & <tricks>", Date: "2025-01-02", Slug: "tips", Description: "café"},
		{Title: "Hello", Date: "2025-01-01", Slug: "hello", Description: "A test"},
	}

	written, err := store.WriteIndex(records)
	if err != nil {
		t.Fatalf("WriteIndex error: %v", err)
	}
	if !written {
		t.Fatal("expected written=true")
	}

	data, err := os.ReadFile(store.IndexPath())
	if err != nil {
		t.Fatalf("failed to read index: %v", err)
	}

	want := `[
  {
    "title": "Tips & <tricks>",
    "date": "2025-01-02",
    "slug": "tips",
    "description": "café"
  },
  {
    "title": "Hello",
    "date": "2025-01-01",
    "slug": "hello",
    "description": "A test"
  }
]`
	if string(data) != want {
		t.Errorf("index content:\n%s\nwant:\n%s", data, want)
	}
}

func TestReadIndexRoundtrip(t *testing.T) {
	store, _ := newTestStore(t)
	records := []models.PostRecord{
		{Title: "B", Slug: "b"},
		{Title: "A", Slug: "a"},
	}
	if _, err := store.WriteIndex(records); err != nil {
		t.Fatalf("WriteIndex error: %v", err)
	}

	got, err := store.ReadIndex()
	if err != nil {
		t.Fatalf("ReadIndex error: %v", err)
	}
	if !reflect.DeepEqual(got, records) {
		t.Errorf("ReadIndex() = %+v, want %+v", got, records)
	}
}

func TestReadIndexMissing(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.ReadIndex()
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestReadSourceInvalidUTF8(t *testing.T) {
	store, tmpDir := newTestStore(t)
	path := filepath.Join(tmpDir, "_posts", "2025-01-01-bad.md")
	writeFile(t, path, "---\ntitle: caf\xe9\n---\nbody \xff")

	_, err := store.ReadSource(path)
	var fsErr *FileSystemError
	if !errors.As(err, &fsErr) || fsErr.Op != OpRead {
		t.Fatalf("expected read FileSystemError, got %v", err)
	}
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Errorf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestWritePageFileMode(t *testing.T) {
	store, _ := newTestStore(t)
	if err := store.EnsureOutputDir(); err != nil {
		t.Fatalf("EnsureOutputDir error: %v", err)
	}

	path, err := store.WritePage("hello", "x")
	if err != nil {
		t.Fatalf("WritePage error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat error: %v", err)
	}
	if info.Mode().Perm()&0o444 != 0o444 {
		t.Errorf("expected page to be world-readable, got %v", info.Mode().Perm())
	}
}
