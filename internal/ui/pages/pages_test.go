package pages

import (
	"bytes"
	"context"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tobbylie/blog/internal/config"
	"github.com/tobbylie/blog/internal/ctxkeys"
	"github.com/tobbylie/blog/internal/markdown"
	"github.com/tobbylie/blog/internal/model"
)

func render(t *testing.T, ctx context.Context, c templ.Component) (*goquery.Document, string) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(ctx, &buf))
	html := buf.String()
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc, html
}

func siteContext(path string) context.Context {
	ctx := ctxkeys.WithConfig(context.Background(), &config.Config{AppName: "Notes"})
	return ctxkeys.WithURLPath(ctx, path)
}

func TestLayoutShell(t *testing.T) {
	doc, html := render(t, siteContext("/"), Home(nil))

	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Equal(t, "Notes", doc.Find("title").Text())

	var hrefs []string
	doc.Find(`link[rel="stylesheet"]`).Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		hrefs = append(hrefs, href)
	})
	assert.Equal(t, []string{MainStylesheet, UtilityStylesheet, CodeStylesheet}, hrefs)
}

func TestLayoutWithoutConfig(t *testing.T) {
	doc, _ := render(t, context.Background(), Home(nil))
	assert.Equal(t, defaultSiteName, doc.Find("header.site-header a").Text())
}

func TestHomeMarksCurrentPage(t *testing.T) {
	doc, _ := render(t, siteContext("/"), Home(nil))
	link := doc.Find("header.site-header a")
	current, _ := link.Attr("aria-current")
	assert.Equal(t, "page", current)
	assert.True(t, link.HasClass("hover:no-underline"))
	assert.False(t, link.HasClass("hover:underline"))

	doc, _ = render(t, siteContext("/a/b"), NotFound())
	link = doc.Find("header.site-header a")
	_, ok := link.Attr("aria-current")
	assert.False(t, ok)
	assert.True(t, link.HasClass("hover:underline"))
}

func TestLinkOverridesMergeWithDefaults(t *testing.T) {
	doc, _ := render(t, siteContext("/"), Home([]*model.PostSummary{{Slug: "a", Title: "A"}}))

	title := doc.Find("header.site-header a")
	assert.True(t, title.HasClass("text-inherit"))
	assert.True(t, title.HasClass("font-bold"))
	assert.False(t, title.HasClass("text-sky-700"), "caller color replaces the default")
	assert.False(t, title.HasClass("font-medium"), "caller weight replaces the default")

	post := doc.Find("a.post-link")
	assert.True(t, post.HasClass("font-semibold"))
	assert.True(t, post.HasClass("text-sky-700"))
	assert.False(t, post.HasClass("font-medium"))

	doc, _ = render(t, siteContext("/a"), Post(&model.PostView{Post: model.Post{Title: "A"}}))
	back := doc.Find(".back-button-container a")
	assert.True(t, back.HasClass("text-slate-600"))
	assert.False(t, back.HasClass("text-sky-700"))
}

func TestHomeList(t *testing.T) {
	posts := []*model.PostSummary{
		{Slug: "post1", Title: "First Blog Post", Date: "March 27, 2025", Excerpt: "Hello", ReadTime: 2},
		{Slug: "a b", Title: "<b>Bold</b> & co"},
	}
	doc, _ := render(t, siteContext("/"), Home(posts))

	items := doc.Find("ul.post-list li")
	require.Equal(t, 2, items.Length())

	first := items.Eq(0)
	assert.Equal(t, "March 27, 2025 · 2 min read", first.Find(".post-date").Text())
	assert.Equal(t, "Hello", first.Find(".post-excerpt").Text())

	second := items.Eq(1)
	href, _ := second.Find("a.post-link").Attr("href")
	assert.Equal(t, "/a%20b", href)
	assert.Equal(t, "<b>Bold</b> & co", second.Find("a.post-link").Text(), "titles are text, not markup")
	assert.Zero(t, second.Find("b").Length())
	assert.Zero(t, second.Find(".post-date").Length())
	assert.Zero(t, second.Find(".post-excerpt").Length())
}

func TestHomeEmpty(t *testing.T) {
	doc, _ := render(t, siteContext("/"), Home(nil))
	assert.Zero(t, doc.Find("ul.post-list").Length())
	assert.Equal(t, 1, doc.Find(".post-list-empty").Length())
}

func TestPostView(t *testing.T) {
	pipeline := markdown.NewPipeline(markdown.NewParser(), markdown.NewSanitizer())
	view := &model.PostView{
		Post: model.Post{Slug: "x", Title: "Tom & <Jerry>", Date: "Jan 2, 2024"},
		HTML: pipeline.RenderSafe("Body *text*\n\n<script>alert(1)</script>"),
	}

	doc, html := render(t, siteContext("/x"), Post(view))

	assert.Equal(t, "Tom & <Jerry> · Notes", doc.Find("title").Text())
	assert.Equal(t, "Tom & <Jerry>", doc.Find("#post > h1").Text())
	assert.Equal(t, "Jan 2, 2024", doc.Find(".post-date").Text())
	assert.Equal(t, "text", doc.Find(".markdown-content em").Text())
	assert.NotContains(t, html, "<script")

	back := doc.Find(".back-button-container a")
	href, _ := back.Attr("href")
	assert.Equal(t, "/", href)
	assert.Equal(t, "< Back", back.Text())
}

func TestPostViewOmitsEmptyDate(t *testing.T) {
	view := &model.PostView{Post: model.Post{Title: "Unknown Post"}}
	doc, _ := render(t, siteContext("/nope"), Post(view))

	assert.Zero(t, doc.Find(".post-date").Length())
	assert.Equal(t, 1, doc.Find(".markdown-content").Length())
}

func TestNotFound(t *testing.T) {
	doc, _ := render(t, siteContext("/a/b"), NotFound())
	assert.Equal(t, "Page not found", doc.Find("h1").Text())
	assert.Equal(t, "Page not found · Notes", doc.Find("title").Text())
}
