package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// activeContent lists markdown inputs carrying constructs that can run code,
// together with the fragments that must not survive rendering.
var activeContent = []struct {
	name      string
	source    string
	forbidden []string
}{
	{"inline script", "hello <script>alert(1)</script> world", []string{"<script", "alert"}},
	{"block script", "<script>\ndocument.cookie\n</script>\n\ntext", []string{"<script", "document.cookie"}},
	{"onclick attribute", `<div onclick="steal()">click</div>`, []string{"onclick", "steal"}},
	{"onerror image", `<img src="x.png" onerror="alert(1)">`, []string{"onerror", "alert"}},
	{"javascript link", "[click](javascript:alert(1))", []string{"javascript", "alert"}},
	{"raw javascript href", `<a href="JaVaScRiPt:alert(1)">x</a>`, []string{"JaVaScRiPt", "alert"}},
	{"style block", "<style>body { display: none }</style>\n\ntext", []string{"<style", "display"}},
	{"inline style", `<p style="background:url(javascript:alert(1))">x</p>`, []string{"style=", "javascript"}},
	{"iframe", `<iframe src="https://evil.example"></iframe>`, []string{"<iframe", "evil"}},
	{"svg onload", `<svg onload="alert(1)"><circle r="1"/></svg>`, []string{"onload", "<svg"}},
	{"object embed", `<object data="x.swf"></object><embed src="x.swf">`, []string{"<object", "<embed"}},
	{"form action", `<form action="https://evil.example"><button>go</button></form>`, []string{"<form", "evil"}},
}

func TestSanitizeRemovesActiveContent(t *testing.T) {
	parser := NewParser()
	sanitizer := NewSanitizer()

	for _, tt := range activeContent {
		t.Run(tt.name, func(t *testing.T) {
			out := sanitizer.Sanitize(parser.ToHTML(tt.source))
			for _, bad := range tt.forbidden {
				assert.NotContains(t, out, bad)
			}
		})
	}
}

func TestSanitizeKeepsSafeMarkup(t *testing.T) {
	s := NewSanitizer()

	assert.Equal(t, "<p><em>a</em> <strong>b</strong></p>", s.Sanitize("<p><em>a</em> <strong>b</strong></p>"))
	assert.Equal(t, "<blockquote><p>q</p></blockquote>", s.Sanitize("<blockquote><p>q</p></blockquote>"))

	link := s.Sanitize(`<a href="https://go.dev">Go</a>`)
	assert.Contains(t, link, `href="https://go.dev"`)
	assert.Contains(t, link, `rel="nofollow"`)

	assert.Contains(t, s.Sanitize(`<code class="language-go">x</code>`), `class="language-go"`)
	assert.Contains(t, s.Sanitize(`<span class="nx">x</span>`), `class="nx"`)
	assert.NotContains(t, s.Sanitize(`<span class="x&quot; onclick=&quot;y">x</span>`), "onclick")
}

func TestSanitizeKeepsSurroundingContent(t *testing.T) {
	out := NewSanitizer().Sanitize(`<p>before</p><script>alert(1)</script><p>after</p>`)
	assert.Equal(t, "<p>before</p><p>after</p>", out)
}

func TestSanitizeIdempotent(t *testing.T) {
	parser := NewParser()
	sanitizer := NewSanitizer()

	sources := []string{
		"Post not found.",
		"# Title\n\nSome \"quoted\" text & more -- with typography...",
		"- [x] done\n- [ ] todo",
		"| a | b |\n|---|---|\n| 1 | 2 |",
		"```go\nfmt.Println(\"hi\")\n```",
		"Line one\nline two",
		"Footnote[^1].\n\n[^1]: note",
		"::: {.note}\nfenced\n:::",
		"<a href='https://example.com' title=\"t\">x</a>",
	}
	for _, tt := range activeContent {
		sources = append(sources, tt.source)
	}

	for _, source := range sources {
		once := sanitizer.Sanitize(parser.ToHTML(source))
		twice := sanitizer.Sanitize(once)
		assert.Equal(t, once, twice, "source %q", source)
	}
}
