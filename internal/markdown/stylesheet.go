package markdown

import (
	"bytes"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// Stylesheet returns the CSS for the chroma classes emitted in code blocks.
// Unknown style names fall back to chroma's default style.
func Stylesheet(style string) ([]byte, error) {
	var buf bytes.Buffer
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	err := formatter.WriteCSS(&buf, styles.Get(style))
	if err != nil {
		return nil, fmt.Errorf("failed to write %q stylesheet: %w", style, err)
	}
	return buf.Bytes(), nil
}
