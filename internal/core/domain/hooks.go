package domain

import "github.com/google/uuid"

// DefaultHookTimeout is the implicit timeout for hook actions.
// Actions with this timeout omit the field when rendered.
const DefaultHookTimeout = 10

// HookEvent is one of the fixed lifecycle events a hook can attach to.
// The values are the literal keys used in the rendered hooks.json.
type HookEvent string

// Hook events.
const (
	EventSessionStart     HookEvent = "SessionStart"
	EventPreToolUse       HookEvent = "PreToolUse"
	EventPostToolUse      HookEvent = "PostToolUse"
	EventUserPromptSubmit HookEvent = "UserPromptSubmit"
	EventStop             HookEvent = "Stop"
)

// HookEvents lists all valid events in declaration order.
func HookEvents() []HookEvent {
	return []HookEvent{
		EventSessionStart,
		EventPreToolUse,
		EventPostToolUse,
		EventUserPromptSubmit,
		EventStop,
	}
}

// HooksConfig is the optional hooks manifest for a plugin.
type HooksConfig struct {
	Description string
	Hooks       []HookEventConfig
}

// HookEventConfig binds one event to an ordered list of matchers.
type HookEventConfig struct {
	ID       string
	Event    HookEvent
	Matchers []HookMatcher
}

// NewHookEventConfig returns an event config for PreToolUse.
func NewHookEventConfig() HookEventConfig {
	return HookEventConfig{
		ID:    uuid.New().String(),
		Event: EventPreToolUse,
	}
}

// HookMatcher filters an event by tool name and carries its actions.
type HookMatcher struct {
	ID       string
	ToolName string
	Hooks    []HookAction
}

// HookAction is one command to run when a matcher fires.
type HookAction struct {
	ID      string
	Type    string
	Command string
	Timeout int
}

// NewHookAction returns a command action with the default timeout.
func NewHookAction() HookAction {
	return HookAction{
		ID:      uuid.New().String(),
		Type:    "command",
		Timeout: DefaultHookTimeout,
	}
}
