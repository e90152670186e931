package service

import (
	"context"
	"io"
	"time"
)

// Disposition controls how a browser should handle a presigned object.
type Disposition string

const (
	// DispositionInline renders the object in the browser.
	DispositionInline Disposition = "inline"
	// DispositionAttachment forces a download with the original filename.
	DispositionAttachment Disposition = "attachment"
)

// PresignRequest describes one time-limited access link.
type PresignRequest struct {
	Key         string
	TTL         time.Duration
	Disposition Disposition
	// FileName overrides the download filename when the disposition is
	// attachment. Empty keeps the storage key's base name.
	FileName string
}

// ObjectStorage abstracts the blob store holding media files, thumbnails
// and payment slips. Objects are private; every read goes through a
// presigned URL.
type ObjectStorage interface {
	// Put streams an object under the given key.
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error

	// Delete removes an object. Deleting a missing object is not an error.
	Delete(ctx context.Context, key string) error

	// Presign returns a time-limited URL granting read access to one object.
	Presign(ctx context.Context, req PresignRequest) (string, error)
}
