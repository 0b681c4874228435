// Package documents provides blob storage for uploaded files and retrieval
// of static registration documents.
package documents

import (
	"context"
	"io"
)

// Stored identifies one persisted upload.
type Stored struct {
	ID       string
	FileName string
}

// Upload is one named byte stream submitted for storage.
type Upload struct {
	FileName string
	Content  io.Reader
}

// Store abstracts the document gateway. The registration core consumes this
// interface; it does not validate file content or size.
type Store interface {
	// Save persists one named byte stream and returns its stored location identifier.
	Save(ctx context.Context, fileName string, content io.Reader) (Stored, error)
	// OpenStatic maps a fixed logical name to a byte stream.
	// Returns entities.ErrDocumentNotFound for unknown names or missing files.
	OpenStatic(ctx context.Context, name string) (io.ReadCloser, string, error)
}
