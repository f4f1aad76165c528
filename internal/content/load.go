package content

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/tobbylie/blog/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FrontmatterReader extracts YAML frontmatter from a markdown source.
type FrontmatterReader interface {
	ExtractFrontmatter(source []byte) map[string]any
}

// DisplayDateLayout formats dates that frontmatter supplies as timestamps.
const DisplayDateLayout = "January 2, 2006"

var dateLayouts = []string{
	DisplayDateLayout,
	"Jan 2, 2006",
	"2006-01-02",
	time.RFC3339,
}

type LoadOption func(*loadOptions)

type loadOptions struct {
	includeDrafts bool
}

// IncludeDrafts keeps posts marked `draft: true`.
func IncludeDrafts(include bool) LoadOption {
	return func(o *loadOptions) {
		o.includeDrafts = include
	}
}

// Load builds a catalog from the *.md files in dir. The slug is the file name
// without its extension; title, date, description and draft come from the
// frontmatter.
func Load(fsys fs.FS, dir string, fm FrontmatterReader, opts ...LoadOption) (*Catalog, error) {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read content directory %s: %w", dir, err)
	}

	var posts []model.Post
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}

		source, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", entry.Name(), err)
		}

		slug := strings.TrimSuffix(entry.Name(), ".md")
		meta := fm.ExtractFrontmatter(source)

		draft, _ := meta["draft"].(bool)
		if draft && !o.includeDrafts {
			slog.Debug("skipping draft post", "slug", slug)
			continue
		}

		posts = append(posts, postFromMeta(slug, string(source), meta))
	}

	catalog, err := New(posts...)
	if err != nil {
		return nil, err
	}

	slog.Debug("content catalog loaded", "dir", dir, "posts", catalog.Len())
	return catalog, nil
}

func postFromMeta(slug, source string, meta map[string]any) model.Post {
	post := model.Post{
		Slug: slug,
		Body: source,
	}

	title, ok := meta["title"].(string)
	if ok && strings.TrimSpace(title) != "" {
		post.Title = strings.TrimSpace(title)
	} else {
		post.Title = titleFromSlug(slug)
	}

	description, ok := meta["description"].(string)
	if ok {
		post.Description = strings.TrimSpace(description)
	}

	switch date := meta["date"].(type) {
	case string:
		post.Date = strings.TrimSpace(date)
		post.Published = parseDate(post.Date)
	case time.Time:
		post.Date = date.Format(DisplayDateLayout)
		post.Published = date
	}

	return post
}

func parseDate(value string) time.Time {
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t
		}
	}
	return time.Time{}
}

func titleFromSlug(slug string) string {
	name := strings.ReplaceAll(slug, "-", " ")
	name = strings.ReplaceAll(name, "_", " ")

	words := strings.Fields(name)
	caser := cases.Title(language.English)
	for i, word := range words {
		words[i] = caser.String(word)
	}

	title := strings.Join(words, " ")
	if title == "" {
		return slug
	}
	return title
}
