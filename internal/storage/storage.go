package storage

import (
	"context"
	"io"
	"log/slog"

	cfg "github.com/tobbylie/blog/internal/config"
)

// Storage is where a static export is written.
type Storage interface {
	// Save stores body at the slash-separated path
	Save(ctx context.Context, path, contentType string, body io.Reader) error

	// URL returns where the object at path can be reached
	URL(path string) string
}

// New picks S3 when a bucket is configured, otherwise the local directory dir.
// Supports: AWS S3, MinIO, DigitalOcean Spaces, Cloudflare R2, Backblaze B2, etc.
func New(ctx context.Context, c *cfg.Config, dir string) (Storage, error) {
	if !c.S3Enabled() {
		slog.Info("using directory storage", "dir", dir)
		return NewDirStorage(dir)
	}

	slog.Info("initializing S3 storage",
		"bucket", c.S3Bucket,
		"region", c.S3Region,
		"endpoint", c.S3Endpoint,
	)
	return NewS3Storage(ctx, S3Config{
		Region:    c.S3Region,
		Bucket:    c.S3Bucket,
		AccessKey: c.S3AccessKey,
		SecretKey: c.S3SecretKey,
		Endpoint:  c.S3Endpoint,
	})
}
