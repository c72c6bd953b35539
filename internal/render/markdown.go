// ABOUTME: Markdown to HTML conversion using goldmark.
// ABOUTME: Plain CommonMark with raw HTML passed through, no dialect extensions.
package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

var md = goldmark.New(
	goldmark.WithRendererOptions(
		html.WithUnsafe(),
	),
)

// Markdown converts a markdown body into an HTML fragment.
func Markdown(body string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(body), &buf); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}
	return buf.String(), nil
}
