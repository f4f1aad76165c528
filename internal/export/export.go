// Package export renders every page of the blog into a Storage so the site
// can be served by any static file host.
package export

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"mime"
	"path"
	"slices"
	"sync"
	"time"

	"github.com/a-h/templ"
	"github.com/tobbylie/blog/assets"
	"github.com/tobbylie/blog/internal/app"
	"github.com/tobbylie/blog/internal/ctxkeys"
	"github.com/tobbylie/blog/internal/router"
	"github.com/tobbylie/blog/internal/storage"
	"github.com/tobbylie/blog/internal/ui/pages"
	"golang.org/x/sync/errgroup"
)

const DefaultConcurrency = 8

const (
	htmlType = "text/html; charset=utf-8"
	cssType  = "text/css; charset=utf-8"

	// notFoundPath is where static hosts serve 404.html from. It must not
	// collide with a real route so no header link is marked current.
	notFoundPath = "/404.html"
)

type Exporter struct {
	app         *app.App
	store       storage.Storage
	assets      fs.FS
	concurrency int
}

type Option func(*Exporter)

// WithConcurrency bounds the number of uploads in flight. Values below one
// fall back to DefaultConcurrency.
func WithConcurrency(n int) Option {
	return func(e *Exporter) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

// WithAssets replaces the embedded static assets.
func WithAssets(fsys fs.FS) Option {
	return func(e *Exporter) {
		e.assets = fsys
	}
}

func New(a *app.App, store storage.Storage, opts ...Option) *Exporter {
	e := &Exporter{
		app:         a,
		store:       store,
		assets:      assets.AssetsFS,
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Result lists the written object paths, sorted.
type Result struct {
	Files    []string
	Duration time.Duration
}

type file struct {
	path        string
	contentType string
	render      func(ctx context.Context) ([]byte, error)
}

// Run writes the whole site. The first failed write cancels the rest and is
// returned.
func (e *Exporter) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	files, err := e.files()
	if err != nil {
		return nil, err
	}

	var (
		mu      sync.Mutex
		written []string
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	for _, f := range files {
		g.Go(func() error {
			body, err := f.render(ctx)
			if err != nil {
				return fmt.Errorf("render %s: %w", f.path, err)
			}
			if err := e.store.Save(ctx, f.path, f.contentType, bytes.NewReader(body)); err != nil {
				return fmt.Errorf("save %s: %w", f.path, err)
			}

			slog.Debug("exported file", "path", f.path, "bytes", len(body))
			mu.Lock()
			written = append(written, f.path)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.Sort(written)
	result := &Result{Files: written, Duration: time.Since(start)}
	slog.Info("export complete", "files", len(result.Files), "duration_ms", result.Duration.Milliseconds())
	return result, nil
}

func (e *Exporter) files() ([]file, error) {
	blogService := e.app.BlogService

	files := []file{
		e.page("index.html", router.Home().Path(), pages.Home(blogService.Posts())),
		// Unknown slugs all resolve to the same fallback post.
		e.page("404.html", notFoundPath, pages.Post(blogService.Post(""))),
		{path: "sitemap.xml", contentType: "application/xml; charset=utf-8", render: func(context.Context) ([]byte, error) {
			return e.app.SitemapService.GenerateSitemap()
		}},
		static("robots.txt", "text/plain; charset=utf-8", e.app.SitemapService.Robots()),
		static("assets/chroma.css", cssType, e.app.Stylesheet),
	}

	for _, post := range blogService.Catalog().Posts() {
		urlPath := router.Post(post.Slug).Path()
		files = append(files, e.page(path.Join(post.Slug, "index.html"), urlPath, pages.Post(blogService.Post(post.Slug))))
	}

	err := fs.WalkDir(e.assets, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		body, err := fs.ReadFile(e.assets, p)
		if err != nil {
			return err
		}
		files = append(files, static(path.Join("assets", p), contentType(p), body))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read assets: %w", err)
	}

	return files, nil
}

// page renders c the way the server would for a request to urlPath.
func (e *Exporter) page(name, urlPath string, c templ.Component) file {
	cfg := e.app.Cfg.Sanitized()
	return file{
		path:        name,
		contentType: htmlType,
		render: func(ctx context.Context) ([]byte, error) {
			ctx = ctxkeys.WithConfig(ctx, cfg)
			ctx = ctxkeys.WithURLPath(ctx, urlPath)

			var buf bytes.Buffer
			if err := c.Render(ctx, &buf); err != nil {
				return nil, err
			}
			return buf.Bytes(), nil
		},
	}
}

func static(name, contentType string, body []byte) file {
	return file{
		path:        name,
		contentType: contentType,
		render: func(context.Context) ([]byte, error) {
			return body, nil
		},
	}
}

func contentType(name string) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
