package model

import (
	"time"

	"github.com/tobbylie/blog/internal/markdown"
)

// Post is one catalog entry. Body is the full markdown source as embedded.
type Post struct {
	Slug        string
	Title       string
	Date        string    // display date, empty when absent
	Published   time.Time // parsed from Date when it matches a known layout
	Description string
	Body        string
}

// PostSummary is what the Home listing shows for a post.
type PostSummary struct {
	Slug     string
	Title    string
	Date     string
	Excerpt  string
	ReadTime int
}

// PostView is a resolved post ready for display.
type PostView struct {
	Post     Post
	HTML     markdown.SafeHTML
	Found    bool
	ReadTime int
}
