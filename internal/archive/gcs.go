package archive

import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
)

// GCSArchive stores evidence payloads in a Google Cloud Storage bucket.
type GCSArchive struct {
	client *storage.Client
	bucket string
}

// NewGCSArchive wraps an already-authenticated GCS client for bucket.
func NewGCSArchive(client *storage.Client, bucket string) *GCSArchive {
	return &GCSArchive{client: client, bucket: bucket}
}

// Put implements Archive.
func (a *GCSArchive) Put(ctx context.Context, key string, payload []byte) (string, error) {
	w := a.client.Bucket(a.bucket).Object(key).NewWriter(ctx)
	if _, err := w.Write(payload); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("gcs put %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("gcs put %s: %w", key, err)
	}
	return fmt.Sprintf("gs://%s/%s", a.bucket, key), nil
}

// Get implements Archive.
func (a *GCSArchive) Get(ctx context.Context, key string) ([]byte, error) {
	r, err := a.client.Bucket(a.bucket).Object(key).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("gcs get %s: %w", key, err)
	}
	defer func() { _ = r.Close() }()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("gcs get %s: %w", key, err)
	}
	return data, nil
}
