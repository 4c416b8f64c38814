package reports

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cloud.google.com/go/storage"
)

// Archive stores rendered report documents.
type Archive interface {
	// Store saves data under name and returns its location.
	Store(ctx context.Context, name string, data []byte) (string, error)
}

// LocalArchive writes reports into a directory on disk.
type LocalArchive struct {
	dir string
}

func NewLocalArchive(dir string) *LocalArchive {
	return &LocalArchive{dir: dir}
}

func (a *LocalArchive) Store(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(a.dir, 0o755); err != nil {
		return "", fmt.Errorf("create report directory %q: %w", a.dir, err)
	}
	path := filepath.Join(a.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write report %q: %w", path, err)
	}
	return path, nil
}

// GCSArchive uploads reports to a Cloud Storage bucket.
// It relies on Application Default Credentials.
type GCSArchive struct {
	client *storage.Client
	bucket string
	prefix string
}

// NewGCSArchive creates a storage client for bucket. Objects are written under prefix.
func NewGCSArchive(ctx context.Context, bucket, prefix string) (*GCSArchive, error) {
	if bucket == "" {
		return nil, fmt.Errorf("report bucket is not configured")
	}
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	return &GCSArchive{client: client, bucket: bucket, prefix: prefix}, nil
}

func (a *GCSArchive) Store(ctx context.Context, name string, data []byte) (string, error) {
	object := name
	if a.prefix != "" {
		object = a.prefix + "/" + name
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	w := a.client.Bucket(a.bucket).Object(object).NewWriter(ctx)
	w.ContentType = ContentType
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("upload report %q: %w", object, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalize report upload %q: %w", object, err)
	}
	return fmt.Sprintf("gs://%s/%s", a.bucket, object), nil
}

// Close releases the storage client.
func (a *GCSArchive) Close() error {
	return a.client.Close()
}
