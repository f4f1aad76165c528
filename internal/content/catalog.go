// Package content holds the post catalog: the fixed set of posts compiled
// into the binary, keyed by slug. It is built once at startup and never
// changes afterwards, so it is safe for concurrent use without locking.
package content

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/tobbylie/blog/internal/model"
)

// Values returned by Resolve for slugs that are not in the catalog.
const (
	UnknownTitle = "Unknown Post"
	NotFoundBody = "Post not found."
)

// reservedSlugs are single-segment paths the server routes itself, plus the
// top-level pages a static export writes.
var reservedSlugs = map[string]bool{
	"assets":      true,
	"healthz":     true,
	"robots.txt":  true,
	"sitemap.xml": true,
	"index.html":  true,
	"404.html":    true,
}

var (
	ErrEmptySlug     = errors.New("empty slug")
	ErrInvalidSlug   = errors.New("slug must be a single path segment")
	ErrReservedSlug  = errors.New("slug is reserved")
	ErrDuplicateSlug = errors.New("duplicate slug")
	ErrEmptyTitle    = errors.New("empty title")
)

type Catalog struct {
	posts map[string]model.Post
	order []string
}

// New builds a catalog from explicit entries. Every entry needs a valid,
// unique slug and a non-empty title.
func New(posts ...model.Post) (*Catalog, error) {
	c := &Catalog{
		posts: make(map[string]model.Post, len(posts)),
		order: make([]string, 0, len(posts)),
	}

	for _, post := range posts {
		err := ValidateSlug(post.Slug)
		if err != nil {
			return nil, fmt.Errorf("post %q: %w", post.Slug, err)
		}
		if strings.TrimSpace(post.Title) == "" {
			return nil, fmt.Errorf("post %q: %w", post.Slug, ErrEmptyTitle)
		}
		if _, ok := c.posts[post.Slug]; ok {
			return nil, fmt.Errorf("post %q: %w", post.Slug, ErrDuplicateSlug)
		}
		c.posts[post.Slug] = post
		c.order = append(c.order, post.Slug)
	}

	sort.SliceStable(c.order, func(i, j int) bool {
		a, b := c.posts[c.order[i]], c.posts[c.order[j]]
		switch {
		case a.Published.IsZero() != b.Published.IsZero():
			return !a.Published.IsZero()
		case !a.Published.Equal(b.Published):
			return a.Published.After(b.Published)
		}
		return a.Slug < b.Slug
	})

	return c, nil
}

// ValidateSlug reports whether slug can be served as /<slug>.
func ValidateSlug(slug string) error {
	switch {
	case slug == "":
		return ErrEmptySlug
	case strings.Contains(slug, "/"), slug == ".", slug == "..":
		return ErrInvalidSlug
	case reservedSlugs[slug]:
		return ErrReservedSlug
	}
	return nil
}

// Resolve returns the post for slug, or the fallback post when slug is not
// in the catalog. It never fails.
func (c *Catalog) Resolve(slug string) model.Post {
	post, ok := c.Lookup(slug)
	if !ok {
		return model.Post{
			Slug:  slug,
			Title: UnknownTitle,
			Body:  NotFoundBody,
		}
	}
	return post
}

func (c *Catalog) Lookup(slug string) (model.Post, bool) {
	post, ok := c.posts[slug]
	return post, ok
}

// Posts returns every post, newest first. Undated posts come last.
func (c *Catalog) Posts() []model.Post {
	posts := make([]model.Post, 0, len(c.order))
	for _, slug := range c.order {
		posts = append(posts, c.posts[slug])
	}
	return posts
}

func (c *Catalog) Len() int {
	return len(c.order)
}
