package driving

import (
	"context"

	"github.com/custodia-labs/pluginsmith-cli/internal/core/domain"
)

// ProgressFunc reports monotonic generation progress: the current step
// label plus completed and total step counts.
type ProgressFunc func(step string, completed, total int)

// GenerationService assembles a project into a generated artifact.
type GenerationService interface {
	// Generate produces the artifact for the project's output type.
	// On any content-generator failure the whole operation fails and no
	// partial artifact is returned. progress may be nil.
	Generate(ctx context.Context, project *domain.Project, progress ProgressFunc) (*domain.GeneratedArtifact, error)
}

// SuggestionService analyses imported sources into structure proposals.
type SuggestionService interface {
	// Analyze asks the content generator for a structure analysis and
	// parses the response. Malformed model output yields an empty list,
	// never an error; generator failures are returned as-is.
	Analyze(ctx context.Context, project *domain.Project) ([]domain.Suggestion, error)
}
