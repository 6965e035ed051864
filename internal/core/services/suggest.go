package services

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/pluginsmith-cli/internal/core/domain"
	"github.com/custodia-labs/pluginsmith-cli/internal/core/ports/driven"
	"github.com/custodia-labs/pluginsmith-cli/internal/core/ports/driving"
	"github.com/custodia-labs/pluginsmith-cli/internal/logger"
)

// Ensure SuggestionService implements the interface.
var _ driving.SuggestionService = (*SuggestionService)(nil)

// SuggestionService asks the content generator to analyse a project's
// sources and parses the response into structure proposals.
type SuggestionService struct {
	generator driven.ContentGenerator
}

// NewSuggestionService creates a new suggestion service.
func NewSuggestionService(generator driven.ContentGenerator) *SuggestionService {
	return &SuggestionService{generator: generator}
}

// Analyze runs the structure analysis for a project. Generator
// failures are returned as-is; malformed model output degrades to an
// empty suggestion list.
func (s *SuggestionService) Analyze(ctx context.Context, project *domain.Project) ([]domain.Suggestion, error) {
	if s.generator == nil {
		return nil, domain.ErrNotConfigured
	}
	if project == nil || len(project.Sources) == 0 {
		return nil, domain.ErrInvalidInput
	}

	raw, err := s.generator.Analyze(ctx, project.Sources, project.OutputType)
	if err != nil {
		return nil, err
	}

	suggestions := ParseSuggestions(raw)
	logger.Debug("analysis produced %d suggestions", len(suggestions))
	return suggestions, nil
}

// suggestionsEnvelope is the expected shape of the model output.
type suggestionsEnvelope struct {
	Suggestions []rawSuggestion `json:"suggestions"`
}

type rawSuggestion struct {
	Type           string   `json:"type"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Tools          []string `json:"tools"`
	ContentMapping string   `json:"contentMapping"`
	Rationale      string   `json:"rationale"`
}

// ParseSuggestions parses semi-structured model output into typed
// suggestions. It never fails: malformed input yields an empty list
// and entries with unrecognised types are dropped individually.
func ParseSuggestions(raw string) []domain.Suggestion {
	text := strings.TrimSpace(raw)
	text = stripCodeFence(text)

	var envelope suggestionsEnvelope
	if err := json.Unmarshal([]byte(text), &envelope); err != nil {
		return nil
	}

	var suggestions []domain.Suggestion
	for _, entry := range envelope.Suggestions {
		if !domain.ValidSuggestionType(entry.Type) {
			continue
		}
		suggestions = append(suggestions, domain.Suggestion{
			ID:             uuid.New().String(),
			Type:           domain.SuggestionType(entry.Type),
			Name:           entry.Name,
			Description:    entry.Description,
			Tools:          entry.Tools,
			ContentMapping: entry.ContentMapping,
			Rationale:      entry.Rationale,
		})
	}
	return suggestions
}

// stripCodeFence removes a surrounding triple-backtick fence by
// dropping the opening line (with its optional language tag) and the
// closing fence line. Backtick sequences inside the body are left
// untouched.
func stripCodeFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}

	lines := strings.Split(text, "\n")
	lines = lines[1:]
	if n := len(lines); n > 0 && strings.HasPrefix(strings.TrimSpace(lines[n-1]), "```") {
		lines = lines[:n-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
