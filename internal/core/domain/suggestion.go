package domain

// SuggestionType classifies what a suggestion proposes to create.
type SuggestionType string

// Suggestion types. Unrecognised types in model output are dropped.
const (
	SuggestSkill     SuggestionType = "skill"
	SuggestCommand   SuggestionType = "command"
	SuggestAgent     SuggestionType = "agent"
	SuggestReference SuggestionType = "reference"
)

// ValidSuggestionType reports whether raw names a known suggestion type.
func ValidSuggestionType(raw string) bool {
	switch SuggestionType(raw) {
	case SuggestSkill, SuggestCommand, SuggestAgent, SuggestReference:
		return true
	default:
		return false
	}
}

// Suggestion is one structure proposal parsed from model output.
type Suggestion struct {
	ID             string
	Type           SuggestionType
	Name           string
	Description    string
	Tools          []string
	ContentMapping string
	Rationale      string
	Accepted       bool
}
