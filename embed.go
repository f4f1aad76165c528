package blog

import "embed"

// ContentFS holds the post catalog sources. Each file under content/blog
// becomes one post, keyed by its file name without the .md extension.
//
//go:embed content/blog/*.md
var ContentFS embed.FS

// ContentDir is the directory inside ContentFS that holds the posts.
const ContentDir = "content/blog"
