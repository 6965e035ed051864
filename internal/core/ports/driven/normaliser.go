package driven

import (
	"context"

	"github.com/custodia-labs/pluginsmith-cli/internal/core/domain"
)

// Normaliser transforms raw source bytes into a SourceDocument with
// extracted text and classified sections. Each normaliser handles
// specific file extensions.
type Normaliser interface {
	// SupportedExtensions returns the lower-cased extensions (without
	// dot) this normaliser handles.
	SupportedExtensions() []string

	// Priority returns the selection priority (higher = preferred) when
	// multiple normalisers claim an extension.
	Priority() int

	// Normalise extracts text and sections from the raw source. It
	// fails with domain.ErrTextExtractionFailed when the source yields
	// no usable text.
	Normalise(ctx context.Context, raw *domain.RawSource) (*domain.SourceDocument, error)
}

// NormaliserRegistry selects the appropriate normaliser for a source
// by file extension. When multiple normalisers claim an extension the
// highest priority wins.
type NormaliserRegistry interface {
	// Register adds a normaliser for all its supported extensions.
	Register(normaliser Normaliser)

	// ForExtension returns the normaliser for an extension (with or
	// without leading dot), or domain.ErrUnsupportedFileType.
	ForExtension(ext string) (Normaliser, error)

	// Extensions returns all registered extensions.
	Extensions() []string
}

// CommandRunner executes an external command and returns its stdout.
// Used by normalisers that delegate to system text converters.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// WebFetcher retrieves the bytes and content type of a web resource.
type WebFetcher interface {
	Fetch(ctx context.Context, url string) (content []byte, contentType string, err error)
}
