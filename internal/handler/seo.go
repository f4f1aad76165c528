package handler

import (
	"log/slog"
	"net/http"

	"github.com/tobbylie/blog/internal/service"
)

type SEOHandler struct {
	sitemapService *service.SitemapService
}

// NewSEOHandler creates a new SEO handler
func NewSEOHandler(sitemapService *service.SitemapService) *SEOHandler {
	return &SEOHandler{
		sitemapService: sitemapService,
	}
}

// Robots serves the robots.txt file
func (h *SEOHandler) Robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write(h.sitemapService.Robots())
}

// Sitemap generates and serves the sitemap.xml dynamically
func (h *SEOHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	sitemap, err := h.sitemapService.GenerateSitemap()
	if err != nil {
		slog.Error("sitemap generation failed", "error", err)
		http.Error(w, "Failed to generate sitemap", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Write(sitemap)
}
