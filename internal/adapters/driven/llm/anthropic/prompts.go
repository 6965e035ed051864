package anthropic

import (
	"strings"

	"github.com/custodia-labs/pluginsmith-cli/internal/core/domain"
)

// Per-call limits on how much of each source document is inlined into
// the prompt, in runes.
const (
	analysisSourceLimit   = 8000
	skillSourceLimit      = 6000
	generationSourceLimit = 4000
)

// systemPrompt pins the output format for all generation calls.
const systemPrompt = `You are a Claude Code plugin and skill architect. You create precise, well-structured plugin artifacts following the exact Claude Code plugin format.

Key format rules:
- SKILL.md files use YAML frontmatter with: name, description, version
- Command .md files use YAML frontmatter with: description, argument-hint, allowed-tools, model
- Agent .md files use YAML frontmatter with: name, description, tools, model, color
- plugin.json contains: name, description, version, author, keywords
- Skill descriptions must clearly state trigger conditions for when Claude should use the skill
- Content should be actionable and specific, not generic
- Use $ARGUMENTS for argument interpolation in commands
- Reference files in references/ directory using relative paths

Always output clean, production-ready content. No explanatory wrapper text.`

func buildAnalysisPrompt(sources []domain.SourceDocument, outputType domain.OutputType) string {
	typeLabel := "plugin"
	if outputType == domain.OutputSkill {
		typeLabel = "skill"
	}

	var b strings.Builder
	b.WriteString("Analyze the following source documents and suggest a Claude Code " + typeLabel + " structure.\n\n")
	b.WriteString(`For each suggestion, provide:
1. A concise name (kebab-case) and description
2. Which content should become skill instructions vs reference materials
3. What commands would be useful based on the content
4. What trigger conditions/descriptions would make sense
5. Which tools should be allowed

Source documents:

`)
	for _, source := range sources {
		b.WriteString("### " + source.FileName + " (" + string(source.Type) + ")\n")
		b.WriteString(truncate(source.RawContent, analysisSourceLimit) + "\n\n---\n\n")
	}

	b.WriteString(`
Respond ONLY with a JSON object containing a "suggestions" array. Each element:
{
  "type": "skill" | "command" | "agent" | "reference",
  "name": "suggested-name",
  "description": "suggested description",
  "tools": ["Read", "Glob"],
  "contentMapping": "which source section maps here",
  "rationale": "why this suggestion"
}

Example response:
{"suggestions": [{"type": "skill", "name": "example", "description": "...", "tools": [], "contentMapping": "...", "rationale": "..."}]}`)

	return b.String()
}

func buildSkillPrompt(sources []domain.SourceDocument, cfg domain.SkillConfig) string {
	var b strings.Builder
	b.WriteString("Generate a complete SKILL.md file for a Claude Code skill with these specifications:\n\n")
	b.WriteString("Name: " + cfg.Name + "\n")
	b.WriteString("Description: " + cfg.Description + "\n")
	b.WriteString("Version: " + cfg.Version + "\n\n")
	b.WriteString(`The skill should synthesize the following source materials into clear, actionable instructions that Claude can follow when the skill is triggered. Structure with:
- A clear overview of what this skill does
- When to use / when not to use guidelines
- Step-by-step workflow or methodology
- Specific patterns, rules, and templates from the source material
- Reference links to files in references/ directory

Include YAML frontmatter (---name, description, version---).

Source materials:

`)
	for _, source := range sources {
		b.WriteString("### " + source.FileName + "\n")
		b.WriteString(truncate(source.RawContent, skillSourceLimit) + "\n\n")
	}
	b.WriteString("\nOutput ONLY the SKILL.md content. No wrapping text.")
	return b.String()
}

func buildCommandPrompt(sources []domain.SourceDocument, cfg domain.CommandConfig) string {
	var b strings.Builder
	b.WriteString("Generate a complete command markdown file for a Claude Code slash command:\n\n")
	b.WriteString("Name: /" + cfg.Name + "\n")
	b.WriteString("Description: " + cfg.Description + "\n")
	if cfg.ArgumentHint != "" {
		b.WriteString("Argument hint: " + cfg.ArgumentHint + "\n")
	}
	if len(cfg.AllowedTools) > 0 {
		b.WriteString("Allowed tools: " + strings.Join(cfg.AllowedTools, ", ") + "\n")
	}
	if cfg.Model != "" {
		b.WriteString("Model: " + cfg.Model + "\n")
	}

	b.WriteString(`
Include YAML frontmatter with: description, argument-hint, allowed-tools, model.
Then provide clear instructions for what Claude should do when this command is invoked.

Source materials for context:

`)
	for _, source := range sources {
		b.WriteString("### " + source.FileName + "\n")
		b.WriteString(truncate(source.RawContent, generationSourceLimit) + "\n\n")
	}
	b.WriteString("\nOutput ONLY the command .md file content. No wrapping text.")
	return b.String()
}

func buildAgentPrompt(sources []domain.SourceDocument, cfg domain.AgentConfig) string {
	var b strings.Builder
	b.WriteString("Generate a complete agent markdown file for a Claude Code agent:\n\n")
	b.WriteString("Name: " + cfg.Name + "\n")
	b.WriteString("Description: " + cfg.Description + "\n")
	b.WriteString("Tools: " + strings.Join(cfg.Tools, ", ") + "\n")
	b.WriteString("Model: " + cfg.Model + "\n")
	if cfg.Color != "" {
		b.WriteString("Color: " + cfg.Color + "\n")
	}

	b.WriteString(`
Include YAML frontmatter with: name, description, tools, model, color.
Then provide:
- Core mission/purpose
- Specialized approach/methodology
- Step-by-step workflow
- Output format guidance

Source materials for context:

`)
	for _, source := range sources {
		b.WriteString("### " + source.FileName + "\n")
		b.WriteString(truncate(source.RawContent, generationSourceLimit) + "\n\n")
	}
	b.WriteString("\nOutput ONLY the agent .md file content. No wrapping text.")
	return b.String()
}

func buildReadmePrompt(project *domain.Project) string {
	var b strings.Builder
	b.WriteString("Generate a README.md for a Claude Code plugin:\n\n")
	b.WriteString("Plugin name: " + project.Name + "\n")
	b.WriteString("Display name: " + project.DisplayName + "\n")
	b.WriteString("Description: " + project.Description + "\n")
	b.WriteString("Version: " + project.Version + "\n")
	b.WriteString("Author: " + project.Author.Name + "\n\n")

	if len(project.PluginConfig.Commands) > 0 {
		b.WriteString("Commands:\n")
		for _, cmd := range project.PluginConfig.Commands {
			b.WriteString("- /" + cmd.Name + ": " + cmd.Description + "\n")
		}
	}
	if len(project.PluginConfig.Skills) > 0 {
		b.WriteString("\nSkills:\n")
		for _, skill := range project.PluginConfig.Skills {
			b.WriteString("- " + skill.Name + ": " + skill.Description + "\n")
		}
	}
	if len(project.PluginConfig.Agents) > 0 {
		b.WriteString("\nAgents:\n")
		for _, agent := range project.PluginConfig.Agents {
			b.WriteString("- " + agent.Name + ": " + agent.Description + "\n")
		}
	}

	b.WriteString(`
Write a clean, concise README with:
- Title and description
- Installation instructions (mention Claude Code plugin system)
- Usage section with examples
- Available commands/skills/agents

Output ONLY the README.md content.`)

	return b.String()
}

// truncate caps a string at limit runes.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
