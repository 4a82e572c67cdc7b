package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// generatedPrefix namespaces uploaded PDFs within the store.
const generatedPrefix = "generated"

// FSStore stores objects under a directory on the local filesystem.
// Objects live under a "generated/" prefix; Put returns baseURL-joined
// public URLs, mirroring a bucket with public objects.
type FSStore struct {
	dir     string
	baseURL string
}

// NewFSStore creates a store rooted at dir. The directory is created on
// first Put. baseURL (e.g. "http://localhost:8080/download") prefixes the
// URLs returned by Put; trailing slashes are trimmed.
func NewFSStore(dir, baseURL string) *FSStore {
	return &FSStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}
}

// Put writes data to dir/generated/name and returns its public URL.
func (s *FSStore) Put(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := validateName(name); err != nil {
		return "", err
	}

	objDir := filepath.Join(s.dir, generatedPrefix)
	if err := os.MkdirAll(objDir, 0o750); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}

	path := filepath.Join(objDir, name)
	if err := os.WriteFile(path, data, 0o640); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}

	return s.baseURL + "/" + name, nil
}

// Get reads dir/generated/name.
func (s *FSStore) Get(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(s.dir, generatedPrefix, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("reading object %s: %w", name, err)
	}
	return data, nil
}

// validateName rejects names that could escape the store directory.
func validateName(name string) error {
	if name == "" || strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q", ErrBadName, name)
	}
	return nil
}
