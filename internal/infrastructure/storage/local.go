// Package storage provides the on-disk image store for uploaded evidence,
// resolution photos, and profile pictures.
package storage

import (
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore writes uploads under a root directory, one subdirectory per
// kind ("grievance_imgs", "resolved_imgs", "profile_pics").
type LocalStore struct {
	root string
}

func NewLocalStore(root string) *LocalStore {
	return &LocalStore{root: root}
}

// Save stores the stream and returns the path relative to the store root.
// Filenames are prefixed with random hex so distinct uploads of the same
// original name never collide.
func (s *LocalStore) Save(kind, filename string, r io.Reader) (string, error) {
	dir := filepath.Join(s.root, kind)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("image store: %w", err)
	}

	name := randomPrefix() + "_" + sanitize(filename)
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("image store: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("image store: %w", err)
	}

	return filepath.Join(kind, name), nil
}

func randomPrefix() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return "00000000"
	}
	return fmt.Sprintf("%08x", b)
}

// sanitize strips path separators from a client-supplied filename.
func sanitize(name string) string {
	name = filepath.Base(name)
	return strings.ReplaceAll(name, string(os.PathSeparator), "_")
}
