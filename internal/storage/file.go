package storage

import (
	"fmt"
	"os"
)

// FileStore reads files from the local file system
type FileStore struct{}

// NewFileStore returns a Store backed by the local file system
func NewFileStore() *FileStore {
	return &FileStore{}
}

// Exists reports whether path is a regular file
func (s *FileStore) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// ReadText returns the contents of path
func (s *FileStore) ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return string(data), nil
}

var _ Store = (*FileStore)(nil)
