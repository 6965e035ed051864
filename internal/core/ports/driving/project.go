package driving

import (
	"context"

	"github.com/custodia-labs/pluginsmith-cli/internal/core/domain"
)

// ProjectService manages stored projects.
type ProjectService interface {
	// Create makes and stores a new project with a kebab-case name.
	Create(ctx context.Context, displayName string, outputType domain.OutputType) (*domain.Project, error)

	// Get retrieves a project by ID or name.
	Get(ctx context.Context, ref string) (*domain.Project, error)

	// List returns all stored projects, newest first.
	List(ctx context.Context) ([]domain.Project, error)

	// Save persists an updated project, refreshing LastModifiedAt.
	Save(ctx context.Context, project *domain.Project) error

	// Delete removes a project by ID or name.
	Delete(ctx context.Context, ref string) error

	// AttachArtifact commits a generated artifact to the project and
	// marks generation complete.
	AttachArtifact(ctx context.Context, project *domain.Project, artifact *domain.GeneratedArtifact) error
}

// InstallService materialises artifacts through the artifact writer.
type InstallService interface {
	// Install writes the project's artifact into the local marketplace.
	Install(ctx context.Context, project *domain.Project) (string, error)

	// Export writes the project's artifact under dir.
	Export(ctx context.Context, project *domain.Project, dir string) (string, error)

	// ExportArchive writes the project's artifact as a zip archive.
	ExportArchive(ctx context.Context, project *domain.Project, zipPath string) error
}
