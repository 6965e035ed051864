package domain

import (
	"time"

	"github.com/google/uuid"
)

// OutputType selects which directory layout assembly produces.
type OutputType string

// Output shapes.
const (
	// OutputPlugin is a full plugin with commands, skills, agents and hooks.
	OutputPlugin OutputType = "plugin"

	// OutputSkill is a standalone skill: SKILL.md plus references.
	OutputSkill OutputType = "skill"
)

// GenerationStatus tracks where a project is in its generation lifecycle.
type GenerationStatus string

// Generation statuses.
const (
	StatusNotStarted GenerationStatus = "notStarted"
	StatusAnalyzing  GenerationStatus = "analyzing"
	StatusGenerating GenerationStatus = "generating"
	StatusPreviewing GenerationStatus = "previewing"
	StatusCompleted  GenerationStatus = "completed"
	StatusFailed     GenerationStatus = "failed"
)

// AuthorInfo is the plugin author metadata for the manifest.
type AuthorInfo struct {
	Name  string
	Email string
	URL   string
}

// Project is the root aggregate: imported sources, output configuration
// and, once generation succeeds, the generated artifact.
type Project struct {
	ID               string
	Name             string
	DisplayName      string
	Description      string
	Version          string
	Author           AuthorInfo
	OutputType       OutputType
	Sources          []SourceDocument
	CreatedAt        time.Time
	LastModifiedAt   time.Time
	PluginConfig     PluginConfiguration
	GenerationStatus GenerationStatus
	Artifact         *GeneratedArtifact
}

// NewProject creates an empty plugin-shaped project.
func NewProject(name string) *Project {
	now := time.Now()
	return &Project{
		ID:               uuid.New().String(),
		Name:             name,
		DisplayName:      ToDisplayName(name),
		Version:          "0.1.0",
		OutputType:       OutputPlugin,
		CreatedAt:        now,
		LastModifiedAt:   now,
		GenerationStatus: StatusNotStarted,
	}
}
