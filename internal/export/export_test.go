package export

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tobbylie/blog/internal/app"
	"github.com/tobbylie/blog/internal/config"
	"github.com/tobbylie/blog/internal/storage"
)

type object struct {
	contentType string
	body        []byte
}

type memStorage struct {
	mu      sync.Mutex
	objects map[string]object
	failOn  string
}

func newMemStorage() *memStorage {
	return &memStorage{objects: make(map[string]object)}
}

func (m *memStorage) Save(ctx context.Context, path, contentType string, body io.Reader) error {
	if path == m.failOn {
		return errors.New("disk full")
	}
	b, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[path] = object{contentType: contentType, body: b}
	return nil
}

func (m *memStorage) URL(path string) string {
	return "mem://" + path
}

func newTestApp(t *testing.T) *app.App {
	t.Helper()
	a, err := app.New(&config.Config{
		AppName:   "Tobby Lie",
		AppEnv:    "development",
		AppURL:    "https://blog.example.com",
		CodeStyle: "github",
	})
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	return a
}

func TestRunWritesEveryRoute(t *testing.T) {
	store := newMemStorage()
	assets := fstest.MapFS{"css/main.css": {Data: []byte("body{}")}}

	result, err := New(newTestApp(t), store, WithAssets(assets), WithConcurrency(2)).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"404.html",
		"assets/chroma.css",
		"assets/css/main.css",
		"index.html",
		"post1/index.html",
		"robots.txt",
		"sitemap.xml",
	}, result.Files)

	assert.Equal(t, htmlType, store.objects["index.html"].contentType)
	assert.Equal(t, cssType, store.objects["assets/chroma.css"].contentType)
	assert.Contains(t, store.objects["assets/css/main.css"].contentType, "text/css")
	assert.Equal(t, "body{}", string(store.objects["assets/css/main.css"].body))
	assert.Contains(t, string(store.objects["sitemap.xml"].body), "<loc>https://blog.example.com/post1</loc>")
}

func TestRunPagesMatchServer(t *testing.T) {
	store := newMemStorage()
	_, err := New(newTestApp(t), store).Run(context.Background())
	require.NoError(t, err)

	doc := func(name string) *goquery.Document {
		d, err := goquery.NewDocumentFromReader(bytes.NewReader(store.objects[name].body))
		require.NoError(t, err)
		return d
	}

	home := doc("index.html")
	href, _ := home.Find("a.post-link").Attr("href")
	assert.Equal(t, "/post1", href)
	assert.Equal(t, "Tobby Lie", home.Find("header.site-header a").Text())

	post := doc("post1/index.html")
	assert.Equal(t, "First Blog Post", post.Find("#post > h1").Text())

	missing := doc("404.html")
	assert.Equal(t, "Unknown Post", missing.Find("#post > h1").Text())
	assert.Equal(t, "Post not found.", missing.Find(".markdown-content p").Text())
}

func TestNotFoundPageIsNotHome(t *testing.T) {
	store := newMemStorage()
	_, err := New(newTestApp(t), store).Run(context.Background())
	require.NoError(t, err)

	home, err := goquery.NewDocumentFromReader(bytes.NewReader(store.objects["index.html"].body))
	require.NoError(t, err)
	current, _ := home.Find("header.site-header a").Attr("aria-current")
	assert.Equal(t, "page", current)

	missing, err := goquery.NewDocumentFromReader(bytes.NewReader(store.objects["404.html"].body))
	require.NoError(t, err)
	assert.Zero(t, missing.Find("[aria-current]").Length())
	back, _ := missing.Find(".back-button-container a").Attr("href")
	assert.Equal(t, "/", back)
}

func TestRunStopsOnFailure(t *testing.T) {
	store := newMemStorage()
	store.failOn = "post1/index.html"

	_, err := New(newTestApp(t), store).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save post1/index.html")
	assert.Contains(t, err.Error(), "disk full")
}

func TestRunCanceled(t *testing.T) {
	dir, err := storage.NewDirStorage(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = New(newTestApp(t), dir).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunIntoDirectory(t *testing.T) {
	root := t.TempDir()
	dir, err := storage.NewDirStorage(root)
	require.NoError(t, err)

	_, err = New(newTestApp(t), dir).Run(context.Background())
	require.NoError(t, err)

	for _, name := range []string{"index.html", "post1/index.html", "404.html", "assets/css/main.css", "assets/chroma.css"} {
		_, err := os.Stat(filepath.Join(root, filepath.FromSlash(name)))
		assert.NoError(t, err, name)
	}
}

func TestContentType(t *testing.T) {
	assert.Contains(t, contentType("style.css"), "text/css")
	assert.Equal(t, "application/octet-stream", contentType("LICENSE"))
}
