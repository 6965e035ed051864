package services

import (
	"context"

	"github.com/custodia-labs/pluginsmith-cli/internal/core/domain"
	"github.com/custodia-labs/pluginsmith-cli/internal/core/ports/driven"
	"github.com/custodia-labs/pluginsmith-cli/internal/core/ports/driving"
	"github.com/custodia-labs/pluginsmith-cli/internal/logger"
	"github.com/custodia-labs/pluginsmith-cli/internal/render"
)

// Ensure GenerationService implements the interface.
var _ driving.GenerationService = (*GenerationService)(nil)

// GenerationService assembles a project into a generated artifact.
// File content comes from the template renderer when the user supplied
// instruction text, otherwise from the content generator. Generator
// failures abort the whole assembly and no partial artifact escapes.
type GenerationService struct {
	generator driven.ContentGenerator
}

// NewGenerationService creates a new generation service.
func NewGenerationService(generator driven.ContentGenerator) *GenerationService {
	return &GenerationService{generator: generator}
}

// Generate produces the artifact for the project's output type.
// progress may be nil.
func (s *GenerationService) Generate(ctx context.Context, project *domain.Project, progress driving.ProgressFunc) (*domain.GeneratedArtifact, error) {
	if project == nil {
		return nil, domain.ErrInvalidInput
	}
	if progress == nil {
		progress = func(string, int, int) {}
	}

	project.GenerationStatus = domain.StatusGenerating

	var artifact *domain.GeneratedArtifact
	var err error
	if project.OutputType == domain.OutputSkill {
		artifact, err = s.assembleSkill(ctx, project, progress)
	} else {
		artifact, err = s.assemblePlugin(ctx, project, progress)
	}
	if err != nil {
		project.GenerationStatus = domain.StatusFailed
		return nil, err
	}

	logger.Debug("assembled %d files for %s", len(artifact.Files), project.Name)
	return artifact, nil
}

// assemblePlugin builds the plugin-shape file list in fixed order:
// manifest, commands, skills, agents, hooks, MCP manifest, README.
func (s *GenerationService) assemblePlugin(ctx context.Context, project *domain.Project, progress driving.ProgressFunc) (*domain.GeneratedArtifact, error) {
	cfg := project.PluginConfig
	total := 2 + len(cfg.Commands) + len(cfg.Skills) + len(cfg.Agents)
	completed := 0
	step := func(label string) {
		completed++
		progress(label, completed, total)
	}

	var files []domain.GeneratedFile

	files = append(files, domain.GeneratedFile{
		RelativePath: ".claude-plugin/plugin.json",
		Content:      render.PluginManifest(project),
	})
	step("plugin manifest")

	for _, cmd := range cfg.Commands {
		content, err := s.commandContent(ctx, project, cmd)
		if err != nil {
			return nil, err
		}
		files = append(files, domain.GeneratedFile{
			RelativePath: "commands/" + cmd.Name + ".md",
			Content:      content,
		})
		step("command " + cmd.Name)
	}

	for _, skill := range cfg.Skills {
		content, err := s.skillContent(ctx, project, skill)
		if err != nil {
			return nil, err
		}
		files = append(files, domain.GeneratedFile{
			RelativePath: "skills/" + skill.Name + "/SKILL.md",
			Content:      content,
		})
		for _, ref := range skill.References {
			files = append(files, domain.GeneratedFile{
				RelativePath: "skills/" + skill.Name + "/references/" + ref.FileName,
				Content:      ref.Content,
			})
		}
		for _, example := range skill.Examples {
			files = append(files, domain.GeneratedFile{
				RelativePath: "skills/" + skill.Name + "/examples/" + example.FileName,
				Content:      example.Content,
			})
		}
		step("skill " + skill.Name)
	}

	for _, agent := range cfg.Agents {
		content, err := s.agentContent(ctx, project, agent)
		if err != nil {
			return nil, err
		}
		files = append(files, domain.GeneratedFile{
			RelativePath: "agents/" + agent.Name + ".md",
			Content:      content,
		})
		step("agent " + agent.Name)
	}

	if cfg.Hooks != nil {
		files = append(files, domain.GeneratedFile{
			RelativePath: "hooks/hooks.json",
			Content:      render.Hooks(*cfg.Hooks),
		})
	}

	if len(cfg.MCPServers) > 0 {
		files = append(files, domain.GeneratedFile{
			RelativePath: ".mcp.json",
			Content:      render.MCP(cfg.MCPServers),
		})
	}

	readme, err := s.readme(ctx, project)
	if err != nil {
		return nil, err
	}
	files = append(files, domain.GeneratedFile{
		RelativePath: "README.md",
		Content:      readme,
	})
	step("README")

	return &domain.GeneratedArtifact{
		Files:             files,
		RootDirectoryName: project.Name,
	}, nil
}

// assembleSkill builds the standalone-skill shape: one SKILL.md plus
// one reference file per imported source, the source's raw text
// verbatim. Web sources get a sanitized kebab-case .md name.
func (s *GenerationService) assembleSkill(ctx context.Context, project *domain.Project, progress driving.ProgressFunc) (*domain.GeneratedArtifact, error) {
	total := 2
	skill := domain.DefaultSkill(project.Name)
	if len(project.PluginConfig.Skills) > 0 {
		skill = project.PluginConfig.Skills[0]
	}

	content, err := s.skillContent(ctx, project, skill)
	if err != nil {
		return nil, err
	}
	files := []domain.GeneratedFile{{
		RelativePath: "SKILL.md",
		Content:      content,
	}}
	progress("skill "+skill.Name, 1, total)

	for _, source := range project.Sources {
		files = append(files, domain.GeneratedFile{
			RelativePath: "references/" + referenceName(source),
			Content:      source.RawContent,
		})
	}
	progress("references", 2, total)

	return &domain.GeneratedArtifact{
		Files:             files,
		RootDirectoryName: project.Name,
	}, nil
}

func (s *GenerationService) commandContent(ctx context.Context, project *domain.Project, cmd domain.CommandConfig) (string, error) {
	if cmd.InstructionContent != "" {
		return render.Command(cmd), nil
	}
	if s.generator == nil {
		return "", domain.ErrNotConfigured
	}
	return s.generator.GenerateCommand(ctx, project.Sources, cmd)
}

func (s *GenerationService) skillContent(ctx context.Context, project *domain.Project, skill domain.SkillConfig) (string, error) {
	if skill.InstructionContent != "" {
		return render.Skill(skill), nil
	}
	if s.generator == nil {
		return "", domain.ErrNotConfigured
	}
	return s.generator.GenerateSkill(ctx, project.Sources, skill)
}

func (s *GenerationService) agentContent(ctx context.Context, project *domain.Project, agent domain.AgentConfig) (string, error) {
	if agent.InstructionContent != "" {
		return render.Agent(agent), nil
	}
	if s.generator == nil {
		return "", domain.ErrNotConfigured
	}
	return s.generator.GenerateAgent(ctx, project.Sources, agent)
}

// readme is always generator-produced, there is no user override path.
func (s *GenerationService) readme(ctx context.Context, project *domain.Project) (string, error) {
	if s.generator == nil {
		return "", domain.ErrNotConfigured
	}
	return s.generator.GenerateReadme(ctx, project)
}

// referenceName picks the reference file name for a source document.
func referenceName(source domain.SourceDocument) string {
	if source.IsWebResource {
		return domain.SanitizePluginName(source.FileName) + ".md"
	}
	return source.FileName
}
