package markdown

// SafeHTML is an HTML fragment that has passed through the sanitizer. Only
// Pipeline can produce a non-empty value, so code that accepts SafeHTML cannot
// be handed unsanitized markup.
type SafeHTML struct {
	html string
}

func (h SafeHTML) String() string {
	return h.html
}

// Pipeline renders markdown and sanitizes the result in one step.
type Pipeline struct {
	parser    *Parser
	sanitizer *Sanitizer
}

func NewPipeline(parser *Parser, sanitizer *Sanitizer) *Pipeline {
	return &Pipeline{
		parser:    parser,
		sanitizer: sanitizer,
	}
}

// RenderSafe is Sanitize(ToHTML(markdown)).
func (p *Pipeline) RenderSafe(markdown string) SafeHTML {
	return SafeHTML{html: p.sanitizer.Sanitize(p.parser.ToHTML(markdown))}
}

func (p *Pipeline) Parser() *Parser {
	return p.parser
}
