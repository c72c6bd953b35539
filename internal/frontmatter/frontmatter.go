// ABOUTME: Minimal frontmatter parser for blog posts delimited by --- lines.
// ABOUTME: Splits content into key/value metadata and the remaining markdown body.
package frontmatter

import (
	"strings"

	"github.com/2389-research/blogbuild/internal/models"
)

const (
	openDelim  = "---\n"
	closeDelim = "\n---\n"
)

// Parse splits content into metadata and body.
//
// Content must open with a "---" line and contain a later line that is
// exactly "---"; otherwise the metadata is empty and the body is the full
// content. Block lines are "key: value" pairs split at the first colon.
// Lines without a colon are ignored.
func Parse(content string) (*models.Metadata, string) {
	meta := models.NewMetadata()
	if !strings.HasPrefix(content, openDelim) {
		return meta, content
	}

	rest := content[len(openDelim):]
	end := strings.Index(rest, closeDelim)
	if end < 0 {
		return meta, content
	}

	block := rest[:end]
	body := rest[end+len(closeDelim):]

	for _, line := range strings.Split(block, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		meta.Set(strings.TrimSpace(key), strings.TrimSpace(value))
	}

	return meta, body
}
