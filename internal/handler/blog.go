package handler

import (
	"net/http"

	"github.com/tobbylie/blog/internal/router"
	"github.com/tobbylie/blog/internal/service"
	"github.com/tobbylie/blog/internal/ui"
	"github.com/tobbylie/blog/internal/ui/pages"
)

type BlogHandler struct {
	blogService *service.BlogService
}

func NewBlogHandler(blogService *service.BlogService) *BlogHandler {
	return &BlogHandler{
		blogService: blogService,
	}
}

// ShowPost renders the post for the slug path segment. Unknown slugs still
// render the Post view, with the fallback title and body, under a 404.
// The path is resolved by router.Match rather than the mux wildcard, so an
// escaped slash such as /a%2Fb is not a post.
func (h *BlogHandler) ShowPost(w http.ResponseWriter, r *http.Request) {
	route, ok := router.Match(r.URL.EscapedPath())
	if !ok || route.Kind != router.KindPost {
		ui.RenderStatus(w, r, http.StatusNotFound, pages.NotFound())
		return
	}

	view := h.blogService.Post(route.Slug)

	status := http.StatusOK
	if !view.Found {
		status = http.StatusNotFound
	}
	ui.RenderStatus(w, r, status, pages.Post(view))
}
