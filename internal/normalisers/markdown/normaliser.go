// Package markdown normalises Markdown documents using the
// structure-aware section splitter.
package markdown

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/pluginsmith-cli/internal/core/domain"
	"github.com/custodia-labs/pluginsmith-cli/internal/core/ports/driven"
	"github.com/custodia-labs/pluginsmith-cli/internal/sections"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles Markdown documents.
type Normaliser struct{}

// New creates a new Markdown normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedExtensions returns the extensions this normaliser handles.
func (n *Normaliser) SupportedExtensions() []string {
	return []string{"md", "markdown"}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 50
}

// Normalise splits the Markdown by its block structure. The raw content
// is kept verbatim; only the section list is derived.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawSource) (*domain.SourceDocument, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	content := string(raw.Content)
	if strings.TrimSpace(content) == "" {
		return nil, domain.ErrTextExtractionFailed
	}

	return &domain.SourceDocument{
		ID:            uuid.New().String(),
		FileName:      raw.FileName,
		Type:          domain.TypeMarkdown,
		ImportedAt:    time.Now(),
		RawContent:    content,
		Sections:      sections.SplitMarkdown(content),
		IsWebResource: raw.IsWebResource,
		SourceURL:     raw.SourceURL,
	}, nil
}
