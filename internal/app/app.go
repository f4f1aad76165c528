package app

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	blog "github.com/tobbylie/blog"
	"github.com/tobbylie/blog/internal/config"
	"github.com/tobbylie/blog/internal/content"
	"github.com/tobbylie/blog/internal/markdown"
	"github.com/tobbylie/blog/internal/middleware"
	"github.com/tobbylie/blog/internal/service"
)

type App struct {
	Cfg            *config.Config
	Pipeline       *markdown.Pipeline
	BlogService    *service.BlogService
	SitemapService *service.SitemapService
	RateLimiter    *middleware.RateLimiter
	Stylesheet     []byte // chroma CSS for Cfg.CodeStyle
}

// New loads the embedded catalog and wires the services. The catalog is
// immutable for the life of the process.
func New(cfg *config.Config) (*App, error) {
	parser := markdown.NewParser(markdown.WithCodeStyle(cfg.CodeStyle))
	pipeline := markdown.NewPipeline(parser, markdown.NewSanitizer())

	catalog, err := content.Load(blog.ContentFS, blog.ContentDir, parser, content.IncludeDrafts(cfg.ShowDrafts))
	if err != nil {
		return nil, fmt.Errorf("failed to load content: %w", err)
	}

	stylesheet, err := markdown.Stylesheet(parser.CodeStyle())
	if err != nil {
		return nil, fmt.Errorf("failed to build code stylesheet: %w", err)
	}

	blogService := service.NewBlogService(catalog, pipeline)
	sitemapService := service.NewSitemapService(blogService, cfg.AppURL)

	var limiter *middleware.RateLimiter
	if cfg.RateLimit > 0 {
		trusted, err := middleware.ParseTrustedProxies(cfg.TrustedProxies)
		if err != nil {
			return nil, fmt.Errorf("failed to parse TRUSTED_PROXIES: %w", err)
		}
		limiter = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateLimitWindow, trusted...)
	}

	return &App{
		Cfg:            cfg,
		Pipeline:       pipeline,
		BlogService:    blogService,
		SitemapService: sitemapService,
		RateLimiter:    limiter,
		Stylesheet:     stylesheet,
	}, nil
}

func (a *App) Close() error {
	if a.RateLimiter != nil {
		a.RateLimiter.Stop()
	}
	if a.Cfg.SentryDSN != "" {
		sentry.Flush(2 * time.Second)
	}
	return nil
}
