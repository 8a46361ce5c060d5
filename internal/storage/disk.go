package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DiskStorage writes uploads under a local directory which the server
// mounts at /uploads.
type DiskStorage struct {
	dir string
}

func NewDiskStorage(dir string) (*DiskStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	return &DiskStorage{dir: dir}, nil
}

func (s *DiskStorage) Save(_ context.Context, filename, _ string, r io.Reader) error {
	path := filepath.Join(s.dir, filepath.Base(filename))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return fmt.Errorf("write upload file: %w", err)
	}

	return nil
}

// Dir is the directory the server serves /uploads from.
func (s *DiskStorage) Dir() string {
	return s.dir
}
