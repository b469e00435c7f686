package prefs

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/twitchkit/twitchkit/filesystem"
)

// Storage loads and saves the whole preferences document.
type Storage interface {
	// Load returns the stored document, or an empty one when nothing is stored yet.
	Load() (*Document, error)
	Save(doc *Document) error
}

// FileStorage keeps the document as a JSON file on the active filesystem backend.
type FileStorage struct {
	path string
}

// NewFileStorage returns a FileStorage for the document at path.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// Path returns the location of the document.
func (s *FileStorage) Path() string {
	return s.path
}

func (s *FileStorage) Load() (*Document, error) {
	fs := filesystem.API()
	if err := fs.MkdirAll(filepath.Dir(s.path), os.ModePerm); err != nil {
		return nil, fmt.Errorf("create %s: %w", filepath.Dir(s.path), err)
	}

	data, err := fs.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return &Document{}, nil
	}
	if err != nil {
		return nil, err
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return &Document{}, nil
	}

	var doc Document
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, ErrMalformedDocument) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return &doc, nil
}

// Save writes the document to a temporary file and renames it into place.
func (s *FileStorage) Save(doc *Document) error {
	data, err := doc.marshal()
	if err != nil {
		return err
	}

	fs := filesystem.API()
	if err := fs.MkdirAll(filepath.Dir(s.path), os.ModePerm); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(s.path), err)
	}

	tmp := s.path + ".tmp"
	if err := fs.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return fs.Rename(tmp, s.path)
}
