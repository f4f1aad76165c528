package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cfg "github.com/tobbylie/blog/internal/config"
)

func TestDirStorageSave(t *testing.T) {
	root := t.TempDir()
	s, err := NewDirStorage(root)
	require.NoError(t, err)

	err = s.Save(context.Background(), "post1/index.html", "text/html", strings.NewReader("<h1>hi</h1>"))
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(root, "post1", "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "<h1>hi</h1>", string(got))
	assert.Equal(t, filepath.Join(root, "post1", "index.html"), s.URL("post1/index.html"))
}

func TestDirStorageOverwrites(t *testing.T) {
	s, err := NewDirStorage(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "index.html", "", strings.NewReader("first version")))
	require.NoError(t, s.Save(ctx, "index.html", "", strings.NewReader("second")))

	got, err := os.ReadFile(s.URL("index.html"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))
}

func TestDirStorageRejectsEscapingPaths(t *testing.T) {
	s, err := NewDirStorage(t.TempDir())
	require.NoError(t, err)

	for _, p := range []string{"../outside.html", "/etc/passwd", ""} {
		err := s.Save(context.Background(), p, "", strings.NewReader("x"))
		assert.Error(t, err, p)
	}
	assert.Empty(t, s.URL("../outside.html"))
}

func TestDirStorageCanceledContext(t *testing.T) {
	s, err := NewDirStorage(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.Save(ctx, "a.txt", "", strings.NewReader("x")), context.Canceled)
}

func TestNewDirStorageRequiresRoot(t *testing.T) {
	_, err := NewDirStorage("")
	assert.Error(t, err)
}

func TestNewSelectsDirWithoutBucket(t *testing.T) {
	root := t.TempDir()
	s, err := New(context.Background(), &cfg.Config{}, root)
	require.NoError(t, err)

	dir, ok := s.(*DirStorage)
	require.True(t, ok)
	assert.Equal(t, root, dir.Root())
}

func TestBucketURL(t *testing.T) {
	assert.Equal(t, "https://site.s3.eu-west-1.amazonaws.com",
		bucketURL(S3Config{Bucket: "site", Region: "eu-west-1"}))
	assert.Equal(t, "http://localhost:9000/site",
		bucketURL(S3Config{Bucket: "site", Endpoint: "http://localhost:9000/"}))
}

func TestNewS3StorageRequiresBucket(t *testing.T) {
	_, err := NewS3Storage(context.Background(), S3Config{Region: "us-east-1"})
	assert.Error(t, err)
}
