// Package markdown renders department descriptions and strips markup from
// citizen-submitted complaint text.
package markdown

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// Renderer converts markdown to safe HTML and user input to plain text.
type Renderer interface {
	ToHTMLSanitized(markdown string) (string, error)
	PlainText(input string) string
}

type renderer struct {
	md     goldmark.Markdown
	ugc    *bluemonday.Policy
	strict *bluemonday.Policy
}

func NewRenderer() Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
	)

	return &renderer{
		md:     md,
		ugc:    bluemonday.UGCPolicy(),
		strict: bluemonday.StrictPolicy(),
	}
}

func (r *renderer) ToHTMLSanitized(markdown string) (string, error) {
	if strings.TrimSpace(markdown) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return r.ugc.Sanitize(buf.String()), nil
}

// maxStripPasses bounds how many layers of entity encoding PlainText peels.
const maxStripPasses = 8

// PlainText removes every tag and trims the result. Input is decoded before
// each strip so entity-encoded markup is removed rather than revived, and the
// output is decoded so "&" stays "&" in storage.
func (r *renderer) PlainText(input string) string {
	text := input
	for i := 0; i < maxStripPasses; i++ {
		next := html.UnescapeString(r.strict.Sanitize(html.UnescapeString(text)))
		if next == text {
			return strings.TrimSpace(next)
		}
		text = next
	}
	// Still nested after the last pass; keep it escaped.
	return strings.TrimSpace(r.strict.Sanitize(text))
}
