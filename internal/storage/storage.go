package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Backend defines the interface for storage backends
type Backend interface {
	Put(ctx context.Context, key string, reader io.Reader) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
}

// FilesystemBackend implements storage using local filesystem
type FilesystemBackend struct {
	dataDir string
}

// NewFilesystemBackend creates a new filesystem storage backend. Keys are
// resolved relative to dataDir; an empty dataDir leaves them as given.
func NewFilesystemBackend(dataDir string) *FilesystemBackend {
	return &FilesystemBackend{
		dataDir: dataDir,
	}
}

func (f *FilesystemBackend) path(key string) string {
	if f.dataDir == "" || filepath.IsAbs(key) {
		return key
	}
	return filepath.Join(f.dataDir, key)
}

// Put stores data in the filesystem
func (f *FilesystemBackend) Put(ctx context.Context, key string, reader io.Reader) error {
	fullPath := f.path(key)

	// Ensure directory exists
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", fullPath, err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		return fmt.Errorf("failed to write to file %s: %w", fullPath, err)
	}

	return ctx.Err()
}

// Get retrieves data from the filesystem
func (f *FilesystemBackend) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fullPath := f.path(key)

	file, err := os.Open(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", fullPath, err)
	}

	return file, nil
}

// ReadAll reads the whole object stored under key
func ReadAll(ctx context.Context, b Backend, key string) ([]byte, error) {
	rc, err := b.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, nil
}
