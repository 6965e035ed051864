package mcp

import (
	"context"

	"github.com/custodia-labs/pluginsmith-cli/internal/core/domain"
	"github.com/custodia-labs/pluginsmith-cli/internal/core/ports/driving"
)

// mockProjectService is a mock implementation of driving.ProjectService.
type mockProjectService struct {
	projects []domain.Project
	project  *domain.Project
	attached *domain.GeneratedArtifact
	err      error
}

func (m *mockProjectService) Create(_ context.Context, _ string, _ domain.OutputType) (*domain.Project, error) {
	return m.project, m.err
}

func (m *mockProjectService) Get(_ context.Context, _ string) (*domain.Project, error) {
	return m.project, m.err
}

func (m *mockProjectService) List(_ context.Context) ([]domain.Project, error) {
	return m.projects, m.err
}

func (m *mockProjectService) Save(_ context.Context, _ *domain.Project) error {
	return m.err
}

func (m *mockProjectService) Delete(_ context.Context, _ string) error {
	return m.err
}

func (m *mockProjectService) AttachArtifact(_ context.Context, project *domain.Project, artifact *domain.GeneratedArtifact) error {
	m.attached = artifact
	project.Artifact = artifact
	return m.err
}

// mockGenerationService is a mock implementation of driving.GenerationService.
type mockGenerationService struct {
	artifact *domain.GeneratedArtifact
	err      error
}

func (m *mockGenerationService) Generate(_ context.Context, _ *domain.Project, _ driving.ProgressFunc) (*domain.GeneratedArtifact, error) {
	return m.artifact, m.err
}

// mockInstallService is a mock implementation of driving.InstallService.
type mockInstallService struct {
	path string
	err  error
}

func (m *mockInstallService) Install(_ context.Context, _ *domain.Project) (string, error) {
	return m.path, m.err
}

func (m *mockInstallService) Export(_ context.Context, _ *domain.Project, dir string) (string, error) {
	return dir, m.err
}

func (m *mockInstallService) ExportArchive(_ context.Context, _ *domain.Project, _ string) error {
	return m.err
}
