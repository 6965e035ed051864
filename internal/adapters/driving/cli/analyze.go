package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/pluginsmith-cli/internal/core/domain"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [project]",
	Short: "Suggest a plugin structure from imported sources",
	Long: `Send the project's imported sources to the content generator and
print the suggested commands, skills, agents, and references.

With --apply the suggestions are written into the project configuration,
replacing nothing that already exists: suggested entries whose name is
already configured are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

var analyzeApply bool

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeApply, "apply", false, "Apply suggestions to the project configuration")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if projectService == nil || suggestionService == nil {
		return errors.New("suggestion service not configured")
	}

	project, err := projectService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get project: %w", err)
	}

	cmd.Printf("Analyzing %d sources...\n", len(project.Sources))
	suggestions, err := suggestionService.Analyze(cmd.Context(), project)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if len(suggestions) == 0 {
		cmd.Println("No suggestions. Try importing more substantial sources.")
		return nil
	}

	for i := range suggestions {
		s := &suggestions[i]
		cmd.Printf("  [%s] %s\n", s.Type, s.Name)
		if s.Description != "" {
			cmd.Printf("      %s\n", s.Description)
		}
		if s.Rationale != "" {
			cmd.Printf("      Why: %s\n", s.Rationale)
		}
	}
	cmd.Printf("Total: %d suggestions\n", len(suggestions))

	if !analyzeApply {
		cmd.Println("\nRun again with --apply to add these to the project.")
		return nil
	}

	applied := applySuggestions(project, suggestions)
	if err := projectService.Save(cmd.Context(), project); err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}
	cmd.Printf("Applied %d suggestions to %s\n", applied, project.Name)
	return nil
}

// applySuggestions merges suggestions into the project configuration.
// Entries whose name is already configured are left untouched.
func applySuggestions(project *domain.Project, suggestions []domain.Suggestion) int {
	cfg := &project.PluginConfig
	applied := 0

	for i := range suggestions {
		s := &suggestions[i]
		name := domain.ToKebabCase(s.Name)
		switch s.Type {
		case domain.SuggestCommand:
			if hasCommand(cfg, name) {
				continue
			}
			c := domain.NewCommandConfig()
			c.Name = name
			c.Description = s.Description
			if len(s.Tools) > 0 {
				c.AllowedTools = s.Tools
			}
			cfg.Commands = append(cfg.Commands, c)
		case domain.SuggestSkill:
			if hasSkill(cfg, name) {
				continue
			}
			sk := domain.NewSkillConfig()
			sk.Name = name
			sk.Description = s.Description
			sk.Tools = s.Tools
			cfg.Skills = append(cfg.Skills, sk)
		case domain.SuggestAgent:
			if hasAgent(cfg, name) {
				continue
			}
			a := domain.NewAgentConfig()
			a.Name = name
			a.Description = s.Description
			if len(s.Tools) > 0 {
				a.Tools = s.Tools
			}
			cfg.Agents = append(cfg.Agents, a)
		case domain.SuggestReference:
			if !attachReference(project, s) {
				continue
			}
		}
		applied++
	}
	return applied
}

// attachReference copies the mapped source document into the last
// configured skill's references. Without a skill or a matching source
// the suggestion has nowhere to land.
func attachReference(project *domain.Project, s *domain.Suggestion) bool {
	cfg := &project.PluginConfig
	if len(cfg.Skills) == 0 {
		return false
	}
	for i := range project.Sources {
		src := &project.Sources[i]
		if src.FileName != s.ContentMapping {
			continue
		}
		skill := &cfg.Skills[len(cfg.Skills)-1]
		skill.References = append(skill.References, domain.ReferenceFile{
			ID:       s.ID,
			FileName: src.FileName,
			Content:  src.RawContent,
		})
		return true
	}
	return false
}

func hasCommand(cfg *domain.PluginConfiguration, name string) bool {
	for i := range cfg.Commands {
		if cfg.Commands[i].Name == name {
			return true
		}
	}
	return false
}

func hasSkill(cfg *domain.PluginConfiguration, name string) bool {
	for i := range cfg.Skills {
		if cfg.Skills[i].Name == name {
			return true
		}
	}
	return false
}

func hasAgent(cfg *domain.PluginConfiguration, name string) bool {
	for i := range cfg.Agents {
		if cfg.Agents[i].Name == name {
			return true
		}
	}
	return false
}
