package routes

import (
	"io/fs"
	"net/http"

	"github.com/tobbylie/blog/assets"
	"github.com/tobbylie/blog/internal/app"
	"github.com/tobbylie/blog/internal/handler"
	"github.com/tobbylie/blog/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	home := handler.NewHomeHandler(app.BlogService)
	blog := handler.NewBlogHandler(app.BlogService)
	seo := handler.NewSEOHandler(app.SitemapService)
	generated := handler.NewAssetsHandler(app.Stylesheet)

	mux := http.NewServeMux()

	// Static files
	sub, _ := fs.Sub(assets.AssetsFS, ".")
	mux.Handle("GET /assets/", http.StripPrefix("/assets/", http.FileServer(http.FS(sub))))
	mux.HandleFunc("GET /assets/chroma.css", generated.CodeStylesheet)

	// SEO
	mux.HandleFunc("GET /robots.txt", seo.Robots)
	mux.HandleFunc("GET /sitemap.xml", seo.Sitemap)

	mux.HandleFunc("GET /healthz", generated.Healthz)

	// Pages
	mux.HandleFunc("GET /{$}", home.HomePage)
	mux.HandleFunc("GET /{slug}", blog.ShowPost)

	// 404
	mux.HandleFunc("/{path...}", home.NotFoundPage)

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		middleware.RequestID,      // First, so every log line carries the id
		middleware.RequestLogging,
		middleware.SecurityHeaders,
		middleware.RateLimit(app.RateLimiter),
		middleware.Config(app.Cfg),
		middleware.WithURLPath,
	)
}
