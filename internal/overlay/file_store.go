package overlay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/RodReBer/barraca-toto/internal/model"
)

// FileStore keeps the overlay blob in a JSON file. It is the default driver.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore writing to the given path. The file is
// created on first Save; parent directories must exist.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads and decodes the whole blob. A missing file is an empty overlay.
func (s *FileStore) Load(_ context.Context) ([]model.Product, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read overlay file: %w", err)
	}

	var products []model.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("failed to decode overlay file: %w", err)
	}
	return products, nil
}

// Save writes the whole blob via a temp file and rename, so a crash mid-write
// never leaves a truncated overlay behind.
func (s *FileStore) Save(_ context.Context, products []model.Product) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("failed to encode overlay: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp overlay file: %w", err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write temp overlay file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp overlay file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace overlay file: %w", err)
	}
	return nil
}
