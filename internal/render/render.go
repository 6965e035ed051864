// Package render produces the canonical textual form of each plugin
// entity: front-matter markdown for commands, skills and agents, and
// sorted-key pretty-printed JSON for the plugin, hooks and MCP
// manifests. Every function is pure and deterministic; rendering the
// same configuration twice yields byte-identical output.
package render

import (
	"encoding/json"
	"strings"

	"github.com/custodia-labs/pluginsmith-cli/internal/core/domain"
)

// pluginManifest is the .claude-plugin/plugin.json wire format.
// Fields are declared in sorted key order.
type pluginManifest struct {
	Author      *manifestAuthor `json:"author,omitempty"`
	Description string          `json:"description"`
	Keywords    []string        `json:"keywords,omitempty"`
	Name        string          `json:"name"`
	Version     string          `json:"version"`
}

type manifestAuthor struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name"`
	URL   string `json:"url,omitempty"`
}

// PluginManifest renders the plugin.json manifest. The keywords field
// is omitted entirely when the keyword list is empty.
func PluginManifest(project *domain.Project) string {
	m := pluginManifest{
		Author: &manifestAuthor{
			Email: project.Author.Email,
			Name:  project.Author.Name,
			URL:   project.Author.URL,
		},
		Description: project.Description,
		Name:        project.Name,
		Version:     project.Version,
	}
	if len(project.PluginConfig.Keywords) > 0 {
		m.Keywords = project.PluginConfig.Keywords
	}
	return marshalPretty(m)
}

// Command renders a slash command file: front matter followed by the
// instruction body verbatim.
func Command(cmd domain.CommandConfig) string {
	lines := []string{"---"}
	lines = append(lines, "description: "+cmd.Description)

	if cmd.ArgumentHint != "" {
		lines = append(lines, "argument-hint: "+cmd.ArgumentHint)
	}
	if len(cmd.AllowedTools) > 0 {
		lines = append(lines, "allowed-tools: ["+strings.Join(cmd.AllowedTools, ", ")+"]")
	}
	if cmd.Model != "" {
		lines = append(lines, "model: "+cmd.Model)
	}

	lines = append(lines, "---", "", cmd.InstructionContent)
	return strings.Join(lines, "\n")
}

// Skill renders a SKILL.md file.
func Skill(skill domain.SkillConfig) string {
	lines := []string{"---"}
	lines = append(lines, "name: "+skill.Name)
	lines = append(lines, "description: "+skill.Description)

	if skill.Version != "" {
		lines = append(lines, "version: "+skill.Version)
	}
	if len(skill.Tools) > 0 {
		lines = append(lines, "tools: "+strings.Join(skill.Tools, ", "))
	}

	lines = append(lines, "---", "", skill.InstructionContent)
	return strings.Join(lines, "\n")
}

// Agent renders an agent file. The tools and model fields are always
// present, even when empty.
func Agent(agent domain.AgentConfig) string {
	lines := []string{"---"}
	lines = append(lines, "name: "+agent.Name)
	lines = append(lines, "description: "+agent.Description)
	lines = append(lines, "tools: "+strings.Join(agent.Tools, ", "))
	lines = append(lines, "model: "+agent.Model)

	if agent.Color != "" {
		lines = append(lines, "color: "+agent.Color)
	}

	lines = append(lines, "---", "", agent.InstructionContent)
	return strings.Join(lines, "\n")
}

// hooksManifest is the hooks.json wire format.
type hooksManifest struct {
	Description string                   `json:"description,omitempty"`
	Hooks       map[string][]hookMatcher `json:"hooks"`
}

type hookMatcher struct {
	Hooks    []hookAction `json:"hooks"`
	ToolName string       `json:"tool_name,omitempty"`
}

type hookAction struct {
	Command string `json:"command"`
	Timeout *int   `json:"timeout,omitempty"`
	Type    string `json:"type"`
}

// Hooks renders the hooks.json manifest. A hook action's timeout is
// serialized only when it differs from the default of 10; the top-level
// description is included only when non-empty.
func Hooks(hooks domain.HooksConfig) string {
	events := make(map[string][]hookMatcher, len(hooks.Hooks))
	for _, eventCfg := range hooks.Hooks {
		matchers := make([]hookMatcher, 0, len(eventCfg.Matchers))
		for _, m := range eventCfg.Matchers {
			actions := make([]hookAction, 0, len(m.Hooks))
			for _, a := range m.Hooks {
				action := hookAction{Command: a.Command, Type: a.Type}
				if a.Timeout != domain.DefaultHookTimeout {
					timeout := a.Timeout
					action.Timeout = &timeout
				}
				actions = append(actions, action)
			}
			matchers = append(matchers, hookMatcher{
				Hooks:    actions,
				ToolName: m.ToolName,
			})
		}
		events[string(eventCfg.Event)] = matchers
	}

	return marshalPretty(hooksManifest{
		Description: hooks.Description,
		Hooks:       events,
	})
}

// mcpServer is one entry in the .mcp.json wire format.
type mcpServer struct {
	Args    []string `json:"args,omitempty"`
	Command string   `json:"command,omitempty"`
	Type    string   `json:"type"`
	URL     string   `json:"url,omitempty"`
}

// MCP renders the .mcp.json manifest keyed by server name. Servers with
// an empty name are skipped entirely; transport-specific fields appear
// only when non-empty.
func MCP(servers []domain.MCPServerConfig) string {
	manifest := make(map[string]mcpServer)
	for _, s := range servers {
		if s.Name == "" {
			continue
		}
		entry := mcpServer{Type: string(s.Transport)}
		switch s.Transport {
		case domain.MCPTransportHTTP:
			entry.URL = s.URL
		case domain.MCPTransportStdio:
			entry.Command = s.Command
			if len(s.Args) > 0 {
				entry.Args = s.Args
			}
		}
		manifest[s.Name] = entry
	}
	return marshalPretty(manifest)
}

// marshalPretty serializes v as two-space-indented JSON with a trailing
// newline. Map keys are sorted; struct fields are declared in sorted
// order. A serialization failure degrades to "{}" instead of a panic;
// well-typed inputs never hit that path.
func marshalPretty(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data) + "\n"
}
