package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DirStorage writes objects as files below a root directory.
type DirStorage struct {
	root string
}

func NewDirStorage(root string) (*DirStorage, error) {
	if root == "" {
		return nil, fmt.Errorf("dir storage: root is required")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("dir storage: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("dir storage: %w", err)
	}
	return &DirStorage{root: abs}, nil
}

// Save writes body to root/path. Paths escaping root are rejected.
// contentType is not recorded; file servers infer it from the extension.
func (d *DirStorage) Save(ctx context.Context, path, contentType string, body io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name, err := d.resolve(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

// URL returns the file path of path below root.
func (d *DirStorage) URL(path string) string {
	name, err := d.resolve(path)
	if err != nil {
		return ""
	}
	return name
}

func (d *DirStorage) Root() string {
	return d.root
}

func (d *DirStorage) resolve(path string) (string, error) {
	rel := filepath.FromSlash(path)
	if !filepath.IsLocal(rel) {
		return "", fmt.Errorf("invalid storage path %q", path)
	}
	return filepath.Join(d.root, rel), nil
}
