package invoice

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Store persists invoice text files, one per itemized sale, under a single directory.
type Store struct {
	fs  afero.Fs
	dir string
}

func NewStore(fsys afero.Fs, dir string) *Store {
	return &Store{fs: fsys, dir: dir}
}

// Path returns where the invoice with the given number lives.
func (s *Store) Path(invoiceNo string) string {
	return filepath.Join(s.dir, invoiceNo+".txt")
}

// Write stores the rendered invoice and returns its path.
func (s *Store) Write(invoiceNo, content string) (string, error) {
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create bill directory: %w", err)
	}
	path := s.Path(invoiceNo)
	if err := afero.WriteFile(s.fs, path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write invoice %s: %w", invoiceNo, err)
	}
	return path, nil
}

// Remove deletes an invoice file. A file that is already gone is not an error.
func (s *Store) Remove(path string) error {
	if path == "" {
		return nil
	}
	err := s.fs.Remove(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) || os.IsNotExist(err) {
		return nil
	}
	return fmt.Errorf("remove invoice file %s: %w", path, err)
}

// Read returns the stored text of an invoice file.
func (s *Store) Read(path string) (string, error) {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
