package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pluginsmith-cli/internal/core/domain"
)

// mockGenerator is a test double for ContentGenerator.
type mockGenerator struct {
	analyzeOutput string
	err           error
	calls         []string
}

func (m *mockGenerator) GenerateSkill(_ context.Context, _ []domain.SourceDocument, cfg domain.SkillConfig) (string, error) {
	m.calls = append(m.calls, "skill:"+cfg.Name)
	return "generated skill " + cfg.Name, m.err
}

func (m *mockGenerator) GenerateCommand(_ context.Context, _ []domain.SourceDocument, cfg domain.CommandConfig) (string, error) {
	m.calls = append(m.calls, "command:"+cfg.Name)
	return "generated command " + cfg.Name, m.err
}

func (m *mockGenerator) GenerateAgent(_ context.Context, _ []domain.SourceDocument, cfg domain.AgentConfig) (string, error) {
	m.calls = append(m.calls, "agent:"+cfg.Name)
	return "generated agent " + cfg.Name, m.err
}

func (m *mockGenerator) GenerateReadme(_ context.Context, project *domain.Project) (string, error) {
	m.calls = append(m.calls, "readme")
	return "# " + project.DisplayName + "\n", m.err
}

func (m *mockGenerator) Analyze(_ context.Context, _ []domain.SourceDocument, _ domain.OutputType) (string, error) {
	m.calls = append(m.calls, "analyze")
	return m.analyzeOutput, m.err
}

func (m *mockGenerator) Ping(_ context.Context) error {
	return m.err
}

func pluginProject() *domain.Project {
	project := domain.NewProject("my-tools")
	project.DisplayName = "My Tools"
	project.Description = "Tooling helpers"

	cmdA := domain.NewCommandConfig()
	cmdA.Name = "build"
	cmdB := domain.NewCommandConfig()
	cmdB.Name = "deploy"
	cmdB.InstructionContent = "Run the deploy pipeline."

	skill := domain.NewSkillConfig()
	skill.Name = "api-usage"
	skill.Description = "How to call the API"
	skill.References = []domain.ReferenceFile{
		{ID: "r1", FileName: "api.md", Content: "API docs"},
	}

	project.PluginConfig = domain.PluginConfiguration{
		Commands: []domain.CommandConfig{cmdA, cmdB},
		Skills:   []domain.SkillConfig{skill},
	}
	return project
}

func TestGenerate_PluginShape_FileOrder(t *testing.T) {
	generator := &mockGenerator{}
	service := NewGenerationService(generator)

	artifact, err := service.Generate(context.Background(), pluginProject(), nil)
	require.NoError(t, err)
	require.NotNil(t, artifact)

	// 1 manifest + 2 commands + 1 skill + 1 reference + 1 README.
	require.Len(t, artifact.Files, 6)
	paths := make([]string, len(artifact.Files))
	for i, f := range artifact.Files {
		paths[i] = f.RelativePath
	}
	assert.Equal(t, []string{
		".claude-plugin/plugin.json",
		"commands/build.md",
		"commands/deploy.md",
		"skills/api-usage/SKILL.md",
		"skills/api-usage/references/api.md",
		"README.md",
	}, paths)
	assert.Equal(t, "my-tools", artifact.RootDirectoryName)
}

func TestGenerate_RenderVersusGenerate(t *testing.T) {
	generator := &mockGenerator{}
	service := NewGenerationService(generator)

	artifact, err := service.Generate(context.Background(), pluginProject(), nil)
	require.NoError(t, err)

	// build has no instruction text so the generator produced it;
	// deploy was rendered from its instruction text.
	assert.Equal(t, "generated command build", artifact.Files[1].Content)
	assert.Contains(t, artifact.Files[2].Content, "Run the deploy pipeline.")
	assert.Contains(t, artifact.Files[2].Content, "---\n")
	assert.Contains(t, generator.calls, "command:build")
	assert.NotContains(t, generator.calls, "command:deploy")
}

func TestGenerate_ReadmeAlwaysGenerated(t *testing.T) {
	generator := &mockGenerator{}
	service := NewGenerationService(generator)

	artifact, err := service.Generate(context.Background(), pluginProject(), nil)
	require.NoError(t, err)

	last := artifact.Files[len(artifact.Files)-1]
	assert.Equal(t, "README.md", last.RelativePath)
	assert.Equal(t, "# My Tools\n", last.Content)
	assert.Contains(t, generator.calls, "readme")
}

func TestGenerate_HooksAndMCPIncluded(t *testing.T) {
	project := pluginProject()
	project.PluginConfig.Hooks = &domain.HooksConfig{
		Hooks: []domain.HookEventConfig{{
			ID:    "h1",
			Event: domain.EventPreToolUse,
			Matchers: []domain.HookMatcher{{
				ID:       "m1",
				ToolName: "Bash",
				Hooks:    []domain.HookAction{{ID: "a1", Type: "command", Command: "echo hi", Timeout: domain.DefaultHookTimeout}},
			}},
		}},
	}
	project.PluginConfig.MCPServers = []domain.MCPServerConfig{
		{ID: "1", Name: "docs", Transport: domain.MCPTransportHTTP, URL: "https://example.com/mcp"},
	}

	service := NewGenerationService(&mockGenerator{})
	artifact, err := service.Generate(context.Background(), project, nil)
	require.NoError(t, err)

	paths := make([]string, len(artifact.Files))
	for i, f := range artifact.Files {
		paths[i] = f.RelativePath
	}
	require.Len(t, paths, 8)
	assert.Equal(t, "hooks/hooks.json", paths[5])
	assert.Equal(t, ".mcp.json", paths[6])
	assert.Equal(t, "README.md", paths[7])
}

func TestGenerate_GeneratorFailureLeavesNoArtifact(t *testing.T) {
	wantErr := errors.New("provider overloaded")
	service := NewGenerationService(&mockGenerator{err: wantErr})

	project := pluginProject()
	artifact, err := service.Generate(context.Background(), project, nil)
	assert.ErrorIs(t, err, wantErr)
	assert.Nil(t, artifact)
	assert.Equal(t, domain.StatusFailed, project.GenerationStatus)
}

func TestGenerate_ProgressMonotonic(t *testing.T) {
	service := NewGenerationService(&mockGenerator{})

	var completed []int
	total := 0
	progress := func(_ string, done, all int) {
		completed = append(completed, done)
		total = all
	}

	_, err := service.Generate(context.Background(), pluginProject(), progress)
	require.NoError(t, err)

	// manifest + 2 commands + 1 skill + README.
	assert.Equal(t, 5, total)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, completed)
}

func TestGenerate_SkillShape(t *testing.T) {
	project := domain.NewProject("git-helper")
	project.OutputType = domain.OutputSkill
	project.Sources = []domain.SourceDocument{
		{ID: "1", FileName: "intro.md", RawContent: "intro text"},
		{ID: "2", FileName: "usage.txt", RawContent: "usage text"},
		{
			ID:            "3",
			FileName:      "Git Hooks Guide",
			RawContent:    "hooks text",
			IsWebResource: true,
			SourceURL:     "https://example.com/guide",
		},
	}

	service := NewGenerationService(&mockGenerator{})
	artifact, err := service.Generate(context.Background(), project, nil)
	require.NoError(t, err)

	require.Len(t, artifact.Files, 4)
	assert.Equal(t, "SKILL.md", artifact.Files[0].RelativePath)
	assert.Equal(t, "references/intro.md", artifact.Files[1].RelativePath)
	assert.Equal(t, "intro text", artifact.Files[1].Content)
	assert.Equal(t, "references/usage.txt", artifact.Files[2].RelativePath)
	assert.Equal(t, "references/git-hooks-guide.md", artifact.Files[3].RelativePath)
	assert.Equal(t, "hooks text", artifact.Files[3].Content)
}

func TestGenerate_SkillShape_DefaultSkillSynthesized(t *testing.T) {
	project := domain.NewProject("solo")
	project.OutputType = domain.OutputSkill

	generator := &mockGenerator{}
	service := NewGenerationService(generator)

	artifact, err := service.Generate(context.Background(), project, nil)
	require.NoError(t, err)
	require.NotEmpty(t, artifact.Files)
	assert.Equal(t, "SKILL.md", artifact.Files[0].RelativePath)
	assert.Contains(t, generator.calls, "skill:solo")
}

func TestGenerate_NilProject(t *testing.T) {
	service := NewGenerationService(&mockGenerator{})

	artifact, err := service.Generate(context.Background(), nil, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, artifact)
}
