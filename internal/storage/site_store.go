// ABOUTME: Interface definition for blog source and output storage.
// ABOUTME: Defines the contract for scanning posts, writing pages, and the JSON index.
package storage

import (
	"github.com/2389-research/blogbuild/internal/models"
)

// SiteStore defines the filesystem operations a build performs.
type SiteStore interface {
	// EnsureOutputDir creates the output directory if it is absent.
	EnsureOutputDir() error

	// ListSources returns markdown source paths, newest filename first.
	ListSources() ([]string, error)

	// ReadSource reads one markdown file fully.
	ReadSource(path string) (*models.Source, error)

	// WritePage writes <slug>.html into the output directory and returns its path.
	WritePage(slug, html string) (string, error)

	// WriteIndex writes records to the index file. Returns false without
	// touching the file when records is empty.
	WriteIndex(records []models.PostRecord) (bool, error)

	// ReadIndex reads previously written index records.
	ReadIndex() ([]models.PostRecord, error)

	// IndexPath returns the index file location.
	IndexPath() string

	// Close releases any resources held by the store.
	Close() error
}
