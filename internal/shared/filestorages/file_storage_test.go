package filestorages

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ValidKey(t *testing.T) {
	t.Parallel()

	storage, root := newTestStorage(t)
	ctx := context.Background()

	validKeys := []string{
		"file.log",
		"logs/2015-08-01.tsv",
		"nested/deep/path/file.txt",
		"file-with-dashes.txt",
		"file_with_underscores.txt",
		"file.with.dots.txt",
		"subdir/../file.log",
		"..hn.log",
		"logs/..2015-08-01.tsv",
	}

	for _, key := range validKeys {
		t.Run(key, func(t *testing.T) {
			data := "10 a\n"
			writeFile(t, root, key, data)

			readCloser, err := storage.Get(ctx, key)
			require.NoError(t, err, "key %q should be valid", key)
			defer readCloser.Close()

			content, err := io.ReadAll(readCloser)
			require.NoError(t, err)
			assert.Equal(t, data, string(content))
		})
	}
}

func TestGet_InvalidKey(t *testing.T) {
	t.Parallel()

	storage, _ := newTestStorage(t)
	ctx := context.Background()

	invalidKeys := []string{
		"",
		"/absolute/path",
		"..",
		"../file.txt",
		"../../etc/passwd",
		"logs/../../etc/passwd",
		"../",
		"a/../..",
		".",
	}

	for _, key := range invalidKeys {
		t.Run(key, func(t *testing.T) {
			_, err := storage.Get(ctx, key)
			assert.Error(t, err, "key %q should be invalid", key)
			assert.ErrorIs(t, err, ErrInvalidKey)
		})
	}
}

func TestGet_FileNotFound(t *testing.T) {
	t.Parallel()

	storage, _ := newTestStorage(t)

	_, err := storage.Get(context.Background(), "nonexistent.txt")
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestGet_Directory(t *testing.T) {
	t.Parallel()

	storage, root := newTestStorage(t)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "logs"), 0755))

	_, err := storage.Get(context.Background(), "logs")
	assert.ErrorIs(t, err, ErrNotRegularFile)
}

func TestGet_CancelledContext(t *testing.T) {
	t.Parallel()

	storage, root := newTestStorage(t)
	writeFile(t, root, "file.log", "10 a\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := storage.Get(ctx, "file.log")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewFileStorage_EmptyRoot(t *testing.T) {
	t.Parallel()

	storage, err := NewFileStorage("")
	assert.Nil(t, storage)
	assert.ErrorIs(t, err, ErrInvalidRootDir)
}

func TestNewFileStorageForPath(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "queries.log", "10 a\n")

	storage, key, err := NewFileStorageForPath(filepath.Join(root, "queries.log"))
	require.NoError(t, err)
	assert.Equal(t, "queries.log", key)

	readCloser, err := storage.Get(context.Background(), key)
	require.NoError(t, err)
	defer readCloser.Close()

	content, err := io.ReadAll(readCloser)
	require.NoError(t, err)
	assert.Equal(t, "10 a\n", string(content))
}

func TestNewFileStorageForPath_DotPrefixedName(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "..hn.log", "10 a\n")

	storage, key, err := NewFileStorageForPath(filepath.Join(root, "..hn.log"))
	require.NoError(t, err)
	assert.Equal(t, "..hn.log", key)

	readCloser, err := storage.Get(context.Background(), key)
	require.NoError(t, err)
	require.NoError(t, readCloser.Close())
}

func newTestStorage(t *testing.T) (FileStorage, string) {
	tmpDir := t.TempDir()
	storage, err := NewFileStorage(tmpDir)
	require.NoError(t, err)
	return storage, tmpDir
}

func writeFile(t *testing.T, root, key, data string) {
	t.Helper()
	fullPath := filepath.Join(root, filepath.FromSlash(key))
	require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0755))
	require.NoError(t, os.WriteFile(fullPath, []byte(data), 0644))
}
