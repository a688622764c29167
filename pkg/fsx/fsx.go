// Package fsx abstracts file storage so services stay independent of the
// backing store (S3 in production).
package fsx

import "context"

// FileReader reads previously stored files.
type FileReader interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
}

// FileWriter stores files and returns nothing but an error; paths are
// caller-chosen keys relative to the storage root.
type FileWriter interface {
	WriteFile(ctx context.Context, path string, data []byte, contentType string) error
}

// FileSystem is the full storage contract used by upload handlers.
type FileSystem interface {
	FileReader
	FileWriter
	DeleteFile(ctx context.Context, path string) error
	Exists(ctx context.Context, path string) (bool, error)
}
