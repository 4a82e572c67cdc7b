// Package store defines the object-store boundary for finished PDFs and
// provides a filesystem-backed implementation. The conversion core only holds
// the Store interface; swapping in a cloud bucket is a deployment concern.
package store

import (
	"context"
	"errors"
)

// Sentinel errors for store operations.
var (
	ErrNotFound = errors.New("object not found")
	ErrUpload   = errors.New("upload failed")
	ErrBadName  = errors.New("invalid object name")
)

// Store is the blob-storage collaborator boundary.
type Store interface {
	// Put stores data under name and returns a public URL for retrieval.
	Put(ctx context.Context, name string, data []byte) (string, error)
	// Get returns the stored bytes, or ErrNotFound.
	Get(ctx context.Context, name string) ([]byte, error)
}
