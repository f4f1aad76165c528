package pages

import (
	"context"
	"strconv"

	"github.com/tobbylie/blog/internal/ctxkeys"
	"github.com/tobbylie/blog/internal/model"
)

const defaultSiteName = "Blog"

// Stylesheet paths every page links to.
const (
	MainStylesheet    = "/assets/css/main.css"
	UtilityStylesheet = "/assets/css/utilities.css"
	CodeStylesheet    = "/assets/chroma.css"
)

func siteName(ctx context.Context) string {
	cfg := ctxkeys.Config(ctx)
	if cfg == nil || cfg.AppName == "" {
		return defaultSiteName
	}
	return cfg.AppName
}

func pageTitle(ctx context.Context, title string) string {
	site := siteName(ctx)
	if title == "" || title == site {
		return site
	}
	return title + " · " + site
}

func isCurrent(ctx context.Context, path string) bool {
	return ctxkeys.URLPath(ctx) == path
}

func postMeta(post *model.PostSummary) string {
	if post.ReadTime <= 0 {
		return post.Date
	}
	return post.Date + " · " + strconv.Itoa(post.ReadTime) + " min read"
}
