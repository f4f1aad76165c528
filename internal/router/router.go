// Package router maps navigational paths to the two page variants the blog
// serves: the Home listing and a Post detail page.
package router

import (
	"net/url"
	"strings"
)

type Kind int

const (
	KindHome Kind = iota
	KindPost
)

func (k Kind) String() string {
	switch k {
	case KindHome:
		return "home"
	case KindPost:
		return "post"
	}
	return "unknown"
}

// Route is a page variant plus its parameters. Slug is set only for posts and
// need not name a known post.
type Route struct {
	Kind Kind
	Slug string
}

func Home() Route {
	return Route{Kind: KindHome}
}

func Post(slug string) Route {
	return Route{Kind: KindPost, Slug: slug}
}

// Match resolves a URL path. "/" and "" are Home; "/<segment>" is a Post,
// with one trailing slash tolerated and percent-escapes decoded. Paths with
// more segments do not match.
func Match(p string) (Route, bool) {
	if p == "" || p == "/" {
		return Home(), true
	}
	if !strings.HasPrefix(p, "/") {
		return Route{}, false
	}

	segment := strings.TrimSuffix(p[1:], "/")
	if segment == "" || strings.Contains(segment, "/") {
		return Route{}, false
	}

	slug, err := url.PathUnescape(segment)
	if err != nil || slug == "" || strings.Contains(slug, "/") {
		return Route{}, false
	}

	return Post(slug), true
}

// Path returns the canonical URL path for r.
func (r Route) Path() string {
	if r.Kind == KindPost {
		return "/" + url.PathEscape(r.Slug)
	}
	return "/"
}

func (r Route) String() string {
	if r.Kind == KindPost {
		return "post(" + r.Slug + ")"
	}
	return r.Kind.String()
}
