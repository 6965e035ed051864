package services

import (
	"context"
	"strings"
	"time"

	"github.com/custodia-labs/pluginsmith-cli/internal/core/domain"
	"github.com/custodia-labs/pluginsmith-cli/internal/core/ports/driven"
	"github.com/custodia-labs/pluginsmith-cli/internal/core/ports/driving"
)

// Ensure ProjectService implements the interface.
var _ driving.ProjectService = (*ProjectService)(nil)

// ProjectService manages stored projects.
type ProjectService struct {
	store driven.ProjectStore
}

// NewProjectService creates a new project service.
func NewProjectService(store driven.ProjectStore) *ProjectService {
	return &ProjectService{store: store}
}

// Create makes and stores a new project. The display name is slugged
// to kebab-case; the slug must be unique among stored projects.
func (s *ProjectService) Create(ctx context.Context, displayName string, outputType domain.OutputType) (*domain.Project, error) {
	if s.store == nil {
		return nil, domain.ErrNotConfigured
	}

	name := domain.ToKebabCase(displayName)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	if existing, err := s.store.GetByName(ctx, name); err == nil && existing != nil {
		return nil, domain.ErrAlreadyExists
	}

	project := domain.NewProject(name)
	project.DisplayName = strings.TrimSpace(displayName)
	if outputType != "" {
		project.OutputType = outputType
	}

	if err := s.store.Save(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// Get retrieves a project by ID or slug name.
func (s *ProjectService) Get(ctx context.Context, ref string) (*domain.Project, error) {
	if s.store == nil {
		return nil, domain.ErrNotConfigured
	}
	if project, err := s.store.Get(ctx, ref); err == nil {
		return project, nil
	}
	return s.store.GetByName(ctx, domain.ToKebabCase(ref))
}

// List returns all stored projects, newest first.
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	if s.store == nil {
		return nil, domain.ErrNotConfigured
	}
	return s.store.List(ctx)
}

// Save persists an updated project, refreshing LastModifiedAt.
func (s *ProjectService) Save(ctx context.Context, project *domain.Project) error {
	if s.store == nil {
		return domain.ErrNotConfigured
	}
	if project == nil || project.ID == "" {
		return domain.ErrInvalidInput
	}
	project.LastModifiedAt = time.Now()
	return s.store.Save(ctx, project)
}

// Delete removes a project by ID or slug name.
func (s *ProjectService) Delete(ctx context.Context, ref string) error {
	if s.store == nil {
		return domain.ErrNotConfigured
	}
	project, err := s.Get(ctx, ref)
	if err != nil {
		return err
	}
	return s.store.Delete(ctx, project.ID)
}

// AttachArtifact commits a generated artifact to the project and marks
// generation complete. The artifact is stored verbatim for reload.
func (s *ProjectService) AttachArtifact(ctx context.Context, project *domain.Project, artifact *domain.GeneratedArtifact) error {
	if project == nil || artifact == nil {
		return domain.ErrInvalidInput
	}
	project.Artifact = artifact
	project.GenerationStatus = domain.StatusCompleted
	return s.Save(ctx, project)
}
