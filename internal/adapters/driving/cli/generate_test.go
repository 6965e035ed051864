package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pluginsmith-cli/internal/core/domain"
)

func TestGenerate_PlainProgress(t *testing.T) {
	p := domain.NewProject("my-tool")
	projects := newFakeProjectService(p)
	gen := &fakeGenerationService{artifact: &domain.GeneratedArtifact{
		RootDirectoryName: "my-tool",
		Files: []domain.GeneratedFile{
			{RelativePath: ".claude-plugin/plugin.json", Content: "{}"},
			{RelativePath: "README.md", Content: "# My Tool"},
		},
	}}

	withDeps(Deps{Projects: projects, Generation: gen}, func() {
		out, err := execute("generate", "my-tool", "--plain")

		require.NoError(t, err)
		assert.Contains(t, out, "[1/2] .claude-plugin/plugin.json")
		assert.Contains(t, out, "Generated 2 files")
		require.NotNil(t, p.Artifact)
		assert.Equal(t, domain.StatusCompleted, p.GenerationStatus)
	})
}

func TestGenerate_FailureLeavesNoArtifact(t *testing.T) {
	p := domain.NewProject("my-tool")
	gen := &fakeGenerationService{err: errors.New("api unavailable")}

	withDeps(Deps{Projects: newFakeProjectService(p), Generation: gen}, func() {
		_, err := execute("generate", "my-tool", "--plain")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "api unavailable")
		assert.Nil(t, p.Artifact)
	})
}

func TestPreview_RequiresArtifact(t *testing.T) {
	p := domain.NewProject("my-tool")

	withDeps(Deps{Projects: newFakeProjectService(p)}, func() {
		_, err := execute("preview", "my-tool")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no generated artifact")
	})
}

func TestPreview_Tree(t *testing.T) {
	p := domain.NewProject("my-tool")
	p.Artifact = &domain.GeneratedArtifact{
		RootDirectoryName: "my-tool",
		Files: []domain.GeneratedFile{
			{RelativePath: "commands/build.md", Content: "# build"},
			{RelativePath: "README.md", Content: "# My Tool"},
		},
	}

	withDeps(Deps{Projects: newFakeProjectService(p)}, func() {
		out, err := execute("preview", "my-tool")

		require.NoError(t, err)
		assert.Contains(t, out, "my-tool/")
		assert.Contains(t, out, "build.md")
	})
}

func TestPreview_SingleFile(t *testing.T) {
	p := domain.NewProject("my-tool")
	p.Artifact = &domain.GeneratedArtifact{
		RootDirectoryName: "my-tool",
		Files: []domain.GeneratedFile{
			{RelativePath: "README.md", Content: "# My Tool\n"},
		},
	}

	defer func() { previewFile = "" }()

	withDeps(Deps{Projects: newFakeProjectService(p)}, func() {
		out, err := execute("preview", "my-tool", "--file", "README.md")

		require.NoError(t, err)
		assert.Equal(t, "# My Tool\n", out)
	})
}

func TestInstall(t *testing.T) {
	p := domain.NewProject("my-tool")
	install := &fakeInstallService{installPath: "/home/u/.claude/plugins/marketplaces/local-cli-uploads/plugins/my-tool"}

	withDeps(Deps{Projects: newFakeProjectService(p), Install: install}, func() {
		out, err := execute("install", "my-tool")

		require.NoError(t, err)
		assert.Contains(t, out, "Installed to")
		assert.Contains(t, out, "local-cli-uploads/plugins/my-tool")
	})
}

func TestExport_Zip(t *testing.T) {
	p := domain.NewProject("my-tool")

	defer func() { exportZip = false }()

	withDeps(Deps{Projects: newFakeProjectService(p), Install: &fakeInstallService{}}, func() {
		out, err := execute("export", "my-tool", "out.zip", "--zip")

		require.NoError(t, err)
		assert.Contains(t, out, "Exported archive to out.zip")
	})
}
