package driving

import (
	"context"

	"github.com/custodia-labs/pluginsmith-cli/internal/core/domain"
)

// IngestService turns files and URLs into source documents.
type IngestService interface {
	// ImportFile normalises the content of one local file. fileName is
	// the display name (usually the base name of the path).
	ImportFile(ctx context.Context, fileName string, content []byte) (*domain.SourceDocument, error)

	// ImportURL fetches a web resource, sniffs its format and routes it
	// to the matching normaliser.
	ImportURL(ctx context.Context, url string) (*domain.SourceDocument, error)
}
