package markdown

import (
	"bytes"
	"html"
	"log/slog"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	fences "github.com/stefanfritsch/goldmark-fences"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"go.abhg.dev/goldmark/frontmatter"
)

// DefaultCodeStyle is the chroma style used when none is configured.
const DefaultCodeStyle = "github"

// Parser converts markdown into an HTML fragment. Raw HTML in the source is
// passed through as-is; callers must sanitize the result (see Pipeline).
type Parser struct {
	md        goldmark.Markdown
	codeStyle string
}

type Option func(*Parser)

// WithCodeStyle selects the chroma style whose classes code blocks use.
func WithCodeStyle(style string) Option {
	return func(p *Parser) {
		if style != "" {
			p.codeStyle = style
		}
	}
}

func NewParser(opts ...Option) *Parser {
	p := &Parser{codeStyle: DefaultCodeStyle}
	for _, opt := range opts {
		opt(p)
	}

	p.md = goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			extension.Typographer,
			highlighting.NewHighlighting(
				highlighting.WithStyle(p.codeStyle),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
					chromahtml.TabWidth(4),
				),
			),
			&fences.Extender{},
			&frontmatter.Extender{},
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			goldmarkhtml.WithHardWraps(),
			goldmarkhtml.WithXHTML(),
			goldmarkhtml.WithUnsafe(),
		),
	)

	return p
}

// CodeStyle returns the chroma style name code blocks are rendered for.
func (p *Parser) CodeStyle() string {
	return p.codeStyle
}

func (p *Parser) Parse(source []byte) ([]byte, error) {
	var buf bytes.Buffer
	err := p.md.Convert(source, &buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToHTML renders markdown to an HTML fragment. It never fails: malformed
// markup degrades to literal text, and a conversion error falls back to the
// escaped source in a single paragraph. Invalid UTF-8 is replaced with U+FFFD
// so the fragment is always valid text.
func (p *Parser) ToHTML(source string) string {
	source = strings.ToValidUTF8(source, "\uFFFD")
	out, err := p.Parse([]byte(source))
	if err != nil {
		slog.Warn("markdown conversion failed, falling back to escaped text", "error", err)
		return "<p>" + html.EscapeString(source) + "</p>\n"
	}
	return string(out)
}

func (p *Parser) ExtractFrontmatter(source []byte) map[string]any {
	context := parser.NewContext()
	p.md.Parser().Parse(text.NewReader(source), parser.WithContext(context))

	data := frontmatter.Get(context)
	if data == nil {
		return make(map[string]any)
	}

	var meta map[string]any
	err := data.Decode(&meta)
	if err != nil || meta == nil {
		return make(map[string]any)
	}
	return meta
}
