// ABOUTME: Filesystem error type shared by all storage operations.
// ABOUTME: Records the failed operation and path while keeping the cause unwrappable.
package storage

import (
	"errors"
	"fmt"
)

// Operation names carried by FileSystemError.
const (
	OpScan  = "scan"
	OpRead  = "read"
	OpMkdir = "mkdir"
	OpWrite = "write"
)

// ErrInvalidUTF8 is returned for source files that are not valid UTF-8.
var ErrInvalidUTF8 = errors.New("file is not valid UTF-8")

// FileSystemError reports a missing, unreadable, or unwritable path.
type FileSystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileSystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileSystemError) Unwrap() error {
	return e.Err
}

func fsError(op, path string, err error) error {
	return &FileSystemError{Op: op, Path: path, Err: err}
}
