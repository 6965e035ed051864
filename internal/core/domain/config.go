package domain

import "github.com/google/uuid"

// PluginConfiguration is the full structure of the target output:
// metadata keywords plus the configured commands, skills, agents,
// hooks, and MCP servers.
type PluginConfiguration struct {
	Keywords   []string
	Commands   []CommandConfig
	Skills     []SkillConfig
	Agents     []AgentConfig
	Hooks      *HooksConfig
	MCPServers []MCPServerConfig
}

// CommandConfig describes one slash command file.
// An empty InstructionContent means the content generator produces the
// file body; otherwise the template renderer emits it verbatim.
type CommandConfig struct {
	ID                 string
	Name               string
	Description        string
	ArgumentHint       string
	AllowedTools       []string
	Model              string
	InstructionContent string
}

// NewCommandConfig returns a command with the default tool set.
func NewCommandConfig() CommandConfig {
	return CommandConfig{
		ID:           uuid.New().String(),
		Name:         "my-command",
		AllowedTools: []string{"Read", "Glob", "Grep"},
	}
}

// ReferenceFile is a named file shipped under a skill's references/ directory.
type ReferenceFile struct {
	ID       string
	FileName string
	Content  string
}

// ExampleFile is a named file shipped under a skill's examples/ directory.
type ExampleFile struct {
	ID       string
	FileName string
	Content  string
}

// SkillConfig describes one skill: its SKILL.md plus reference and
// example files.
type SkillConfig struct {
	ID                 string
	Name               string
	Description        string
	Version            string
	Tools              []string
	InstructionContent string
	References         []ReferenceFile
	Examples           []ExampleFile
}

// NewSkillConfig returns a skill with default version.
func NewSkillConfig() SkillConfig {
	return SkillConfig{
		ID:      uuid.New().String(),
		Name:    "my-skill",
		Version: "1.0.0",
	}
}

// DefaultSkill synthesises the skill used by standalone-skill assembly
// when the project has no configured skills.
func DefaultSkill(name string) SkillConfig {
	s := NewSkillConfig()
	s.Name = name
	s.Description = "Use this skill when the user asks about " + name
	return s
}

// AgentConfig describes one agent file.
type AgentConfig struct {
	ID                 string
	Name               string
	Description        string
	Tools              []string
	Model              string
	Color              string
	InstructionContent string
}

// NewAgentConfig returns an agent with the default tool set and model.
func NewAgentConfig() AgentConfig {
	return AgentConfig{
		ID:    uuid.New().String(),
		Name:  "my-agent",
		Tools: []string{"Read", "Glob", "Grep", "Bash"},
		Model: "sonnet",
	}
}
