package service

import (
	"encoding/xml"
	"strings"

	"github.com/tobbylie/blog/internal/model"
	"github.com/tobbylie/blog/internal/router"
)

const sitemapDateLayout = "2006-01-02"

type SitemapService struct {
	blogService *BlogService
	baseURL     string
}

// NewSitemapService creates a new sitemap service
func NewSitemapService(blogService *BlogService, baseURL string) *SitemapService {
	// Ensure baseURL doesn't have trailing slash
	baseURL = strings.TrimSuffix(baseURL, "/")

	return &SitemapService{
		blogService: blogService,
		baseURL:     baseURL,
	}
}

// GenerateSitemap lists Home and every catalog post.
func (s *SitemapService) GenerateSitemap() ([]byte, error) {
	sitemap := model.Sitemap{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []model.SitemapURL{{
			Loc:        s.baseURL + router.Home().Path(),
			ChangeFreq: "weekly",
			Priority:   "1.0",
		}},
	}

	for _, post := range s.blogService.Catalog().Posts() {
		u := model.SitemapURL{
			Loc:        s.baseURL + router.Post(post.Slug).Path(),
			ChangeFreq: "monthly",
			Priority:   "0.8",
		}
		if !post.Published.IsZero() {
			u.LastMod = post.Published.Format(sitemapDateLayout)
		}
		sitemap.URLs = append(sitemap.URLs, u)
	}

	output, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return nil, err
	}

	result := xml.Header + string(output)
	return []byte(result), nil
}

// Robots returns robots.txt allowing everything and pointing at the sitemap.
func (s *SitemapService) Robots() []byte {
	return []byte("User-agent: *\nAllow: /\nSitemap: " + s.baseURL + "/sitemap.xml\n")
}
