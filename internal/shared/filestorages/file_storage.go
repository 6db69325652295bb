package filestorages

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrFileNotFound   = errors.New("file not found")
	ErrNotRegularFile = errors.New("not a regular file")
	ErrInvalidKey     = errors.New("invalid file key")
	ErrInvalidRootDir = errors.New("invalid root directory")
)

// FileStorage gives read access to the log files under a root directory.
// Keys are slash-separated paths relative to the root. Keys that are
// absolute or escape the root are rejected with ErrInvalidKey.
//
//go:generate mockgen -source=file_storage.go -destination=./mocks/file_storage_mock.go -package=mocks
type FileStorage interface {
	Get(ctx context.Context, key string) (io.ReadCloser, error)
}

type fileStorage struct {
	dir string
}

func NewFileStorage(rootDir string) (FileStorage, error) {
	if rootDir == "" {
		return nil, fmt.Errorf("%w: root directory cannot be empty", ErrInvalidRootDir)
	}

	absRootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve absolute path: %w", ErrInvalidRootDir, err)
	}

	return &fileStorage{dir: absRootDir}, nil
}

// NewFileStorageForPath roots a FileStorage at the directory of path and
// returns the key under which path can be read.
func NewFileStorageForPath(path string) (FileStorage, string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: failed to resolve absolute path: %w", ErrInvalidKey, err)
	}
	storage, err := NewFileStorage(filepath.Dir(absPath))
	if err != nil {
		return nil, "", err
	}
	return storage, filepath.Base(absPath), nil
}

func (s *fileStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.validateKey(key); err != nil {
		return nil, err
	}

	fullPath := filepath.Join(s.dir, filepath.FromSlash(key))

	file, err := os.Open(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	if !info.Mode().IsRegular() {
		_ = file.Close()
		return nil, fmt.Errorf("%w: %s", ErrNotRegularFile, key)
	}

	return file, nil
}

func (s *fileStorage) validateKey(key string) error {
	if key == "" {
		return ErrInvalidKey
	}
	if filepath.IsAbs(key) || strings.HasPrefix(key, "/") {
		return ErrInvalidKey
	}
	cleanPath := filepath.Clean(filepath.FromSlash(key))
	if cleanPath == "." || escapesRoot(cleanPath) {
		return ErrInvalidKey
	}
	// Additional check: ensure the resolved path is within the root directory
	fullPath := filepath.Join(s.dir, cleanPath)
	rel, err := filepath.Rel(s.dir, fullPath)
	if err != nil || escapesRoot(rel) {
		return ErrInvalidKey
	}
	return nil
}

// escapesRoot reports whether a cleaned relative path climbs above its root.
// Names that merely start with dots, such as "..hn.log", stay inside.
func escapesRoot(cleanPath string) bool {
	return cleanPath == ".." || strings.HasPrefix(cleanPath, ".."+string(filepath.Separator))
}
