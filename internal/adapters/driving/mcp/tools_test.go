package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pluginsmith-cli/internal/core/domain"
)

func TestServer_handleListProjects(t *testing.T) {
	ctx := context.Background()

	t.Run("returns projects with status", func(t *testing.T) {
		p := domain.NewProject("my-tool")
		p.Sources = []domain.SourceDocument{{FileName: "guide.md"}}
		p.Artifact = &domain.GeneratedArtifact{
			Files: []domain.GeneratedFile{{RelativePath: "README.md"}},
		}

		ports := &Ports{Projects: &mockProjectService{projects: []domain.Project{*p}}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, output, err := server.handleListProjects(ctx, nil, ListProjectsInput{})

		require.NoError(t, err)
		assert.Equal(t, 1, output.Count)
		require.Len(t, output.Projects, 1)
		assert.Equal(t, "my-tool", output.Projects[0].Name)
		assert.Equal(t, "plugin", output.Projects[0].Type)
		assert.Equal(t, 1, output.Projects[0].Sources)
		assert.Equal(t, 1, output.Projects[0].Files)
	})

	t.Run("propagates list error", func(t *testing.T) {
		ports := &Ports{Projects: &mockProjectService{err: errors.New("db closed")}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleListProjects(ctx, nil, ListProjectsInput{})

		assert.Error(t, err)
	})
}

func TestServer_handleGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("generates and attaches artifact", func(t *testing.T) {
		project := domain.NewProject("my-tool")
		artifact := &domain.GeneratedArtifact{
			RootDirectoryName: "my-tool",
			Files: []domain.GeneratedFile{
				{RelativePath: ".claude-plugin/plugin.json"},
				{RelativePath: "README.md"},
			},
		}
		projects := &mockProjectService{project: project}
		ports := &Ports{
			Projects:   projects,
			Generation: &mockGenerationService{artifact: artifact},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, output, err := server.handleGenerate(ctx, nil, GenerateInput{Project: "my-tool"})

		require.NoError(t, err)
		assert.Equal(t, "my-tool", output.Root)
		assert.Equal(t, 2, output.Count)
		assert.Equal(t, []string{".claude-plugin/plugin.json", "README.md"}, output.Files)
		assert.Same(t, artifact, projects.attached)
	})

	t.Run("without generation service", func(t *testing.T) {
		ports := &Ports{Projects: &mockProjectService{}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleGenerate(ctx, nil, GenerateInput{Project: "my-tool"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "generation service unavailable")
	})

	t.Run("propagates generation failure", func(t *testing.T) {
		projects := &mockProjectService{project: domain.NewProject("my-tool")}
		ports := &Ports{
			Projects:   projects,
			Generation: &mockGenerationService{err: errors.New("api unavailable")},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleGenerate(ctx, nil, GenerateInput{Project: "my-tool"})

		require.Error(t, err)
		assert.Nil(t, projects.attached)
	})
}

func TestServer_handleInstall(t *testing.T) {
	ctx := context.Background()

	t.Run("installs and returns path", func(t *testing.T) {
		ports := &Ports{
			Projects: &mockProjectService{project: domain.NewProject("my-tool")},
			Install:  &mockInstallService{path: "/plugins/my-tool"},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, output, err := server.handleInstall(ctx, nil, InstallInput{Project: "my-tool"})

		require.NoError(t, err)
		assert.Equal(t, "/plugins/my-tool", output.Path)
	})

	t.Run("without install service", func(t *testing.T) {
		ports := &Ports{Projects: &mockProjectService{}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleInstall(ctx, nil, InstallInput{Project: "my-tool"})

		require.Error(t, err)
	})
}
