// Package storage handles uploaded file persistence.
//
// Two areas: a public directory for profile pictures served as static
// assets, and a protected directory for document-field uploads that are
// only streamed through authorized endpoints.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MediaStore persists uploaded files under randomized names.
type MediaStore struct {
	dir          string
	protectedDir string
}

// NewMediaStore creates the store and its directories.
func NewMediaStore(dir, protectedDir string) (*MediaStore, error) {
	for _, d := range []string{dir, protectedDir} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return nil, fmt.Errorf("create media dir %s: %w", d, err)
		}
	}
	return &MediaStore{dir: dir, protectedDir: protectedDir}, nil
}

// SavePublic stores a public asset and returns its stored filename.
// The original name only contributes its extension.
func (m *MediaStore) SavePublic(originalName string, r io.Reader) (string, error) {
	return save(m.dir, originalName, r)
}

// SaveProtected stores a protected document and returns its stored filename.
func (m *MediaStore) SaveProtected(originalName string, r io.Reader) (string, error) {
	return save(m.protectedDir, originalName, r)
}

// OpenProtected opens a stored protected document for streaming.
func (m *MediaStore) OpenProtected(storedName string) (*os.File, error) {
	path, err := safeJoin(m.protectedDir, storedName)
	if err != nil {
		return nil, err
	}
	return os.Open(path)
}

// PublicPath returns the filesystem path of a public asset.
func (m *MediaStore) PublicPath(storedName string) (string, error) {
	return safeJoin(m.dir, storedName)
}

// DeletePublic removes a public asset. Missing files are not errors.
func (m *MediaStore) DeletePublic(storedName string) error {
	return remove(m.dir, storedName)
}

// DeleteProtected removes a protected document. Missing files are not errors.
func (m *MediaStore) DeleteProtected(storedName string) error {
	return remove(m.protectedDir, storedName)
}

// Dir returns the public media directory (for static file serving).
func (m *MediaStore) Dir() string {
	return m.dir
}

func save(dir, originalName string, r io.Reader) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate file id: %w", err)
	}
	ext := strings.ToLower(filepath.Ext(originalName))
	storedName := id.String() + ext

	path := filepath.Join(dir, storedName)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write file: %w", err)
	}
	return storedName, nil
}

func remove(dir, storedName string) error {
	path, err := safeJoin(dir, storedName)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove file: %w", err)
	}
	return nil
}

// safeJoin rejects names that would escape the storage directory.
func safeJoin(dir, name string) (string, error) {
	if name == "" || name != filepath.Base(name) {
		return "", fmt.Errorf("invalid stored name %q", name)
	}
	return filepath.Join(dir, name), nil
}
