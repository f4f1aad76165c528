package service

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/tobbylie/blog/internal/content"
	"github.com/tobbylie/blog/internal/markdown"
	"github.com/tobbylie/blog/internal/model"
)

const excerptLength = 160

type BlogService struct {
	catalog   *content.Catalog
	pipeline  *markdown.Pipeline
	summaries []*model.PostSummary
}

// NewBlogService precomputes the Home listing; the catalog is immutable, so
// summaries never go stale.
func NewBlogService(catalog *content.Catalog, pipeline *markdown.Pipeline) *BlogService {
	s := &BlogService{
		catalog:  catalog,
		pipeline: pipeline,
	}

	for _, post := range catalog.Posts() {
		html := pipeline.RenderSafe(post.Body)
		excerpt := post.Description
		if excerpt == "" {
			excerpt = s.excerpt(html)
		}
		s.summaries = append(s.summaries, &model.PostSummary{
			Slug:     post.Slug,
			Title:    post.Title,
			Date:     post.Date,
			Excerpt:  excerpt,
			ReadTime: s.calculateReadTime(post.Body),
		})
	}

	return s
}

// Posts returns the Home listing in catalog order.
func (s *BlogService) Posts() []*model.PostSummary {
	return s.summaries
}

// Post resolves slug and renders its body. Unknown slugs produce the
// fallback post with Found unset.
func (s *BlogService) Post(slug string) *model.PostView {
	_, found := s.catalog.Lookup(slug)
	post := s.catalog.Resolve(slug)

	view := &model.PostView{
		Post:  post,
		HTML:  s.pipeline.RenderSafe(post.Body),
		Found: found,
	}
	if found {
		view.ReadTime = s.calculateReadTime(post.Body)
	}
	return view
}

func (s *BlogService) Catalog() *content.Catalog {
	return s.catalog
}

// excerpt returns the text of the first paragraph, cut on a word boundary.
func (s *BlogService) excerpt(html markdown.SafeHTML) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html.String()))
	if err != nil {
		return ""
	}

	text := strings.Join(strings.Fields(doc.Find("p").First().Text()), " ")
	if utf8.RuneCountInString(text) <= excerptLength {
		return text
	}

	runes := []rune(text)[:excerptLength]
	cut := string(runes)
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, ",.;:") + "…"
}

func (s *BlogService) calculateReadTime(content string) int {
	words := strings.Fields(content)
	wordsPerMinute := 200
	readTime := len(words) / wordsPerMinute
	if readTime < 1 {
		readTime = 1
	}
	return readTime
}
