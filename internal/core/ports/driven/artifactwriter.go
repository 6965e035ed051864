package driven

import (
	"context"

	"github.com/custodia-labs/pluginsmith-cli/internal/core/domain"
)

// ArtifactWriter materialises a generated artifact outside the core:
// into the local marketplace, a chosen directory, or a zip archive.
// The core itself never touches the filesystem.
type ArtifactWriter interface {
	// Install writes the artifact into the local marketplace and
	// updates the marketplace manifest. Returns the install path.
	Install(ctx context.Context, artifact *domain.GeneratedArtifact, project *domain.Project) (string, error)

	// Export writes the artifact under dir/<rootDirectoryName>.
	// Returns the export path.
	Export(ctx context.Context, artifact *domain.GeneratedArtifact, dir string) (string, error)

	// ExportArchive writes the artifact as a zip archive at zipPath.
	ExportArchive(ctx context.Context, artifact *domain.GeneratedArtifact, zipPath string) error
}
