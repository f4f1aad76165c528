package handler

import (
	"net/http"
	"strings"

	"github.com/tobbylie/blog/internal/router"
	"github.com/tobbylie/blog/internal/service"
	"github.com/tobbylie/blog/internal/ui"
	"github.com/tobbylie/blog/internal/ui/pages"
)

type HomeHandler struct {
	blogService *service.BlogService
}

func NewHomeHandler(blogService *service.BlogService) *HomeHandler {
	return &HomeHandler{
		blogService: blogService,
	}
}

func (h *HomeHandler) HomePage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, pages.Home(h.blogService.Posts()))
}

// NotFoundPage catches every path the mux has no page for. A post path with
// a trailing slash is redirected to its canonical form first.
func (h *HomeHandler) NotFoundPage(w http.ResponseWriter, r *http.Request) {
	escaped := r.URL.EscapedPath()
	if r.Method == http.MethodGet && strings.HasSuffix(escaped, "/") {
		if route, ok := router.Match(escaped); ok && route.Kind == router.KindPost {
			http.Redirect(w, r, route.Path(), http.StatusMovedPermanently)
			return
		}
	}

	ui.RenderStatus(w, r, http.StatusNotFound, pages.NotFound())
}
