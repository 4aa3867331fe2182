package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

var _ Backend = (*FileBackend)(nil)

// FileBackend keeps each document in <dir>/<name>_db.json.
type FileBackend struct {
	dir string
}

// NewFileBackend returns a backend rooted at dir. The directory is created
// on first write.
func NewFileBackend(dir string) (*FileBackend, error) {
	if dir == "" {
		return nil, errors.New("file backend: empty data dir")
	}
	return &FileBackend{dir: dir}, nil
}

// Path returns the file that holds name.
func (b *FileBackend) Path(name string) string {
	return filepath.Join(b.dir, name+"_db.json")
}

func (b *FileBackend) Read(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(b.Path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Write replaces the file atomically: renameio writes a temp file in the
// data directory, fsyncs it and renames it over the target.
func (b *FileBackend) Write(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(b.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	target := b.Path(name)
	if err := renameio.WriteFile(target, data, 0o644, renameio.WithTempDir(b.dir)); err != nil {
		return fmt.Errorf("replace %s: %w", filepath.Base(target), err)
	}
	return nil
}

func (b *FileBackend) Close() error { return nil }
