package content

import (
	"io/fs"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tobbylie/blog"
	"github.com/tobbylie/blog/internal/markdown"
	"github.com/tobbylie/blog/internal/model"
)

func loadEmbedded(t *testing.T, opts ...LoadOption) *Catalog {
	t.Helper()
	catalog, err := Load(blog.ContentFS, blog.ContentDir, markdown.NewParser(), opts...)
	require.NoError(t, err)
	return catalog
}

func TestResolveKnownPost(t *testing.T) {
	catalog := loadEmbedded(t)

	source, err := fs.ReadFile(blog.ContentFS, blog.ContentDir+"/post1.md")
	require.NoError(t, err)

	post := catalog.Resolve("post1")
	assert.Equal(t, "post1", post.Slug)
	assert.Equal(t, "First Blog Post", post.Title)
	assert.Equal(t, "March 27, 2025", post.Date)
	assert.Equal(t, string(source), post.Body)
	assert.Equal(t, time.Date(2025, time.March, 27, 0, 0, 0, 0, time.UTC), post.Published)
}

func TestResolveUnknownSlug(t *testing.T) {
	catalog := loadEmbedded(t)

	for _, slug := range []string{"does-not-exist", "", "POST1", "post1 ", "post1/", "../post1", "post2"} {
		post := catalog.Resolve(slug)
		assert.Equal(t, UnknownTitle, post.Title, "slug %q", slug)
		assert.Equal(t, NotFoundBody, post.Body, "slug %q", slug)
		assert.Empty(t, post.Date, "slug %q", slug)

		_, ok := catalog.Lookup(slug)
		assert.False(t, ok, "slug %q", slug)
	}
}

func TestDraftsIncludedOnRequest(t *testing.T) {
	catalog := loadEmbedded(t, IncludeDrafts(true))

	post, ok := catalog.Lookup("post2")
	require.True(t, ok)
	assert.Equal(t, "Second Blog Post", post.Title)
	assert.Empty(t, post.Date)
}

func TestEveryPostHasTitle(t *testing.T) {
	for _, post := range loadEmbedded(t, IncludeDrafts(true)).Posts() {
		assert.NotEmpty(t, post.Title, "slug %q", post.Slug)
	}
}

func TestLoadDerivesMissingMetadata(t *testing.T) {
	fsys := fstest.MapFS{
		"posts/hello-go_world.md": {Data: []byte("no frontmatter")},
		"posts/dated.md":          {Data: []byte("---\ntitle: Dated\ndate: 2024-01-05\ndescription: \" short \"\n---\nbody")},
		"posts/notes.txt":         {Data: []byte("ignored")},
		"posts/sub/nested.md":     {Data: []byte("ignored")},
	}

	catalog, err := Load(fsys, "posts", markdown.NewParser())
	require.NoError(t, err)
	require.Equal(t, 2, catalog.Len())

	post, ok := catalog.Lookup("hello-go_world")
	require.True(t, ok)
	assert.Equal(t, "Hello Go World", post.Title)
	assert.Equal(t, "no frontmatter", post.Body)
	assert.Empty(t, post.Date)

	dated, ok := catalog.Lookup("dated")
	require.True(t, ok)
	assert.Equal(t, "2024-01-05", dated.Date)
	assert.Equal(t, "short", dated.Description)
	assert.Equal(t, time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC), dated.Published)
}

func TestLoadRejectsReservedSlug(t *testing.T) {
	fsys := fstest.MapFS{
		"posts/healthz.md": {Data: []byte("# nope")},
	}

	_, err := Load(fsys, "posts", markdown.NewParser())
	assert.ErrorIs(t, err, ErrReservedSlug)
}

func TestExportPageSlugsAreReserved(t *testing.T) {
	for _, slug := range []string{"index.html", "404.html"} {
		assert.ErrorIs(t, ValidateSlug(slug), ErrReservedSlug, slug)
	}

	fsys := fstest.MapFS{
		"posts/404.html.md": {Data: []byte("# shadow")},
	}
	_, err := Load(fsys, "posts", markdown.NewParser())
	assert.ErrorIs(t, err, ErrReservedSlug)
}

func TestLoadMissingDir(t *testing.T) {
	_, err := Load(fstest.MapFS{}, "posts", markdown.NewParser())
	assert.Error(t, err)
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name  string
		posts []model.Post
		err   error
	}{
		{"empty slug", []model.Post{{Title: "x"}}, ErrEmptySlug},
		{"nested slug", []model.Post{{Slug: "a/b", Title: "x"}}, ErrInvalidSlug},
		{"dot slug", []model.Post{{Slug: "..", Title: "x"}}, ErrInvalidSlug},
		{"reserved slug", []model.Post{{Slug: "sitemap.xml", Title: "x"}}, ErrReservedSlug},
		{"empty title", []model.Post{{Slug: "a", Title: "  "}}, ErrEmptyTitle},
		{"duplicate", []model.Post{{Slug: "a", Title: "x"}, {Slug: "a", Title: "y"}}, ErrDuplicateSlug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.posts...)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestPostsOrder(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC) }

	catalog, err := New(
		model.Post{Slug: "undated-b", Title: "B"},
		model.Post{Slug: "old", Title: "Old", Published: day(1)},
		model.Post{Slug: "undated-a", Title: "A"},
		model.Post{Slug: "new", Title: "New", Published: day(20)},
		model.Post{Slug: "also-new", Title: "Also New", Published: day(20)},
	)
	require.NoError(t, err)

	var slugs []string
	for _, post := range catalog.Posts() {
		slugs = append(slugs, post.Slug)
	}
	assert.Equal(t, []string{"also-new", "new", "old", "undated-a", "undated-b"}, slugs)
}

func TestTitleFromSlug(t *testing.T) {
	assert.Equal(t, "My First Post", titleFromSlug("my-first-post"))
	assert.Equal(t, "Snake Case", titleFromSlug("snake_case"))
	assert.Equal(t, "---", titleFromSlug("---"))
}
