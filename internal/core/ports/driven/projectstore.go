package driven

import (
	"context"

	"github.com/custodia-labs/pluginsmith-cli/internal/core/domain"
)

// ProjectStore persists projects between CLI invocations.
type ProjectStore interface {
	// Save inserts or replaces a project.
	Save(ctx context.Context, project *domain.Project) error

	// Get retrieves a project by ID, or domain.ErrNotFound.
	Get(ctx context.Context, id string) (*domain.Project, error)

	// GetByName retrieves a project by its slug name, or domain.ErrNotFound.
	GetByName(ctx context.Context, name string) (*domain.Project, error)

	// List returns all stored projects, newest first.
	List(ctx context.Context) ([]domain.Project, error)

	// Delete removes a project by ID, or domain.ErrNotFound.
	Delete(ctx context.Context, id string) error

	// Close releases resources.
	Close() error
}
