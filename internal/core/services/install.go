package services

import (
	"context"

	"github.com/custodia-labs/pluginsmith-cli/internal/core/domain"
	"github.com/custodia-labs/pluginsmith-cli/internal/core/ports/driven"
	"github.com/custodia-labs/pluginsmith-cli/internal/core/ports/driving"
)

// Ensure InstallService implements the interface.
var _ driving.InstallService = (*InstallService)(nil)

// InstallService materialises generated artifacts through the artifact
// writer. The core never touches the filesystem itself.
type InstallService struct {
	writer driven.ArtifactWriter
}

// NewInstallService creates a new install service.
func NewInstallService(writer driven.ArtifactWriter) *InstallService {
	return &InstallService{writer: writer}
}

// Install writes the project's artifact into the local marketplace.
func (s *InstallService) Install(ctx context.Context, project *domain.Project) (string, error) {
	artifact, err := s.artifact(project)
	if err != nil {
		return "", err
	}
	return s.writer.Install(ctx, artifact, project)
}

// Export writes the project's artifact under dir.
func (s *InstallService) Export(ctx context.Context, project *domain.Project, dir string) (string, error) {
	artifact, err := s.artifact(project)
	if err != nil {
		return "", err
	}
	return s.writer.Export(ctx, artifact, dir)
}

// ExportArchive writes the project's artifact as a zip archive.
func (s *InstallService) ExportArchive(ctx context.Context, project *domain.Project, zipPath string) error {
	artifact, err := s.artifact(project)
	if err != nil {
		return err
	}
	return s.writer.ExportArchive(ctx, artifact, zipPath)
}

func (s *InstallService) artifact(project *domain.Project) (*domain.GeneratedArtifact, error) {
	if s.writer == nil {
		return nil, domain.ErrNotConfigured
	}
	if project == nil || project.Artifact == nil || len(project.Artifact.Files) == 0 {
		return nil, domain.ErrInvalidInput
	}
	return project.Artifact, nil
}
