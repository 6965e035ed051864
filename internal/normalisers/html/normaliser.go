// Package html normalises web pages by stripping markup down to
// readable text.
package html

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/pluginsmith-cli/internal/core/domain"
	"github.com/custodia-labs/pluginsmith-cli/internal/core/ports/driven"
	"github.com/custodia-labs/pluginsmith-cli/internal/sections"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles HTML documents.
type Normaliser struct{}

// New creates a new HTML normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedExtensions returns the extensions this normaliser handles.
func (n *Normaliser) SupportedExtensions() []string {
	return []string{"html", "htm"}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 50
}

// Normalise strips the HTML to plain text and derives sections
// heuristically from the result.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawSource) (*domain.SourceDocument, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	text := StripHTML(string(raw.Content))
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrTextExtractionFailed
	}

	return &domain.SourceDocument{
		ID:            uuid.New().String(),
		FileName:      raw.FileName,
		Type:          domain.TypeWebPage,
		ImportedAt:    time.Now(),
		RawContent:    text,
		Sections:      sections.Split(text),
		IsWebResource: raw.IsWebResource,
		SourceURL:     raw.SourceURL,
	}, nil
}

// Pre-compiled regular expressions for HTML stripping.
var (
	scriptTag     = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleTag      = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	blockTags     = regexp.MustCompile(`(?i)</?\s*(p|div|br|h[1-6]|li|tr|td|th|blockquote|pre|hr)[^>]*>`)
	allTags       = regexp.MustCompile(`<[^>]+>`)
	multiNewlines = regexp.MustCompile(`\n{3,}`)
)

// entityReplacer decodes the common HTML entities, in fixed order.
var entityReplacements = []struct{ from, to string }{
	{"&amp;", "&"},
	{"&lt;", "<"},
	{"&gt;", ">"},
	{"&quot;", "\""},
	{"&#39;", "'"},
	{"&nbsp;", " "},
}

// StripHTML reduces an HTML document to readable text: script and style
// blocks are removed wholesale, block-level tags become newlines, all
// remaining tags are dropped, common entities are decoded, and runs of
// three or more newlines collapse to two.
func StripHTML(content string) string {
	content = scriptTag.ReplaceAllString(content, "")
	content = styleTag.ReplaceAllString(content, "")
	content = blockTags.ReplaceAllString(content, "\n")
	content = allTags.ReplaceAllString(content, "")

	for _, e := range entityReplacements {
		content = strings.ReplaceAll(content, e.from, e.to)
	}

	content = multiNewlines.ReplaceAllString(content, "\n\n")
	return strings.TrimSpace(content)
}

// ExtractTitle returns the text of the first <title> tag, or "".
func ExtractTitle(content string) string {
	m := titleTag.FindStringSubmatch(content)
	if len(m) > 1 {
		return strings.TrimSpace(m[1])
	}
	return ""
}

var titleTag = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
