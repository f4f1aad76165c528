package markdown

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

var (
	// chroma token classes ("chroma", "line", "cl", "kd", "s1", ...).
	tokenClass = regexp.MustCompile(`^[a-z][a-z0-9]*(\s[a-z][a-z0-9]*)*$`)
	// token classes, or language-go, language-sh, ... as goldmark writes for
	// fences chroma has no lexer for.
	codeClass = regexp.MustCompile(`^(language-[\w+#-]+|[a-z][a-z0-9]*(\s[a-z][a-z0-9]*)*)$`)
	// classes written by fenced divs and footnotes.
	blockClass = regexp.MustCompile(`^[\w-]+(\s[\w-]+)*$`)
	checkbox   = regexp.MustCompile(`^checkbox$`)
)

// Sanitizer filters rendered HTML down to an allow-listed subset. Anything
// able to run code in the reader's browser is dropped: script and style
// blocks (with their content), event handler attributes, non http(s)/mailto
// URLs, frames, embeds and comments.
type Sanitizer struct {
	policy *bluemonday.Policy
}

func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: newPolicy()}
}

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()

	p.AllowAttrs("class").Matching(codeClass).OnElements("code")
	p.AllowAttrs("class").Matching(tokenClass).OnElements("pre", "span")
	p.AllowAttrs("class").Matching(blockClass).OnElements("div", "a", "li", "sup", "section")

	// GFM task lists render as disabled checkboxes.
	p.AllowAttrs("type").Matching(checkbox).OnElements("input")
	p.AllowAttrs("checked", "disabled").OnElements("input")

	return p
}

// Sanitize returns the safe subset of fragment. It is idempotent:
// Sanitize(Sanitize(x)) == Sanitize(x).
func (s *Sanitizer) Sanitize(fragment string) string {
	return s.policy.Sanitize(fragment)
}
