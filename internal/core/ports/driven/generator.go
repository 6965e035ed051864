package driven

import (
	"context"

	"github.com/custodia-labs/pluginsmith-cli/internal/core/domain"
)

// ContentGenerator synthesises natural-language file content from
// source material. It is opaque to the core beyond this contract:
// failures (network, auth, rate limit, malformed response) surface
// unmodified, and the generator owns its own timeout and retry policy.
type ContentGenerator interface {
	// GenerateSkill produces the body of a SKILL.md from the sources.
	GenerateSkill(ctx context.Context, sources []domain.SourceDocument, cfg domain.SkillConfig) (string, error)

	// GenerateCommand produces the body of a command markdown file.
	GenerateCommand(ctx context.Context, sources []domain.SourceDocument, cfg domain.CommandConfig) (string, error)

	// GenerateAgent produces the body of an agent markdown file.
	GenerateAgent(ctx context.Context, sources []domain.SourceDocument, cfg domain.AgentConfig) (string, error)

	// GenerateReadme produces the README.md for the whole project.
	GenerateReadme(ctx context.Context, project *domain.Project) (string, error)

	// Analyze returns the raw model output for a structure analysis of
	// the sources. The caller parses it into suggestions.
	Analyze(ctx context.Context, sources []domain.SourceDocument, outputType domain.OutputType) (string, error)

	// Ping validates the service is reachable and the key is accepted.
	Ping(ctx context.Context) error
}
