// Package anthropic provides a content generator adapter using the
// Anthropic messages API.
package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/pluginsmith-cli/internal/core/domain"
	"github.com/custodia-labs/pluginsmith-cli/internal/core/ports/driven"
	"github.com/custodia-labs/pluginsmith-cli/internal/logger"
)

// Ensure Generator implements the interface.
var _ driven.ContentGenerator = (*Generator)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "https://api.anthropic.com"
	DefaultModel   = "claude-sonnet-4-5-20250929"
	DefaultTimeout = 300 * time.Second

	// anthropicVersion is the required API version header.
	anthropicVersion = "2023-06-01"

	// maxRetries is the number of retries after a retryable server error.
	maxRetries = 2
)

// Config holds configuration for the Anthropic generator.
type Config struct {
	// APIKey is the Anthropic API key (required).
	APIKey string

	// BaseURL is the API base URL (default: https://api.anthropic.com).
	BaseURL string

	// Model is the model to use (default: claude-sonnet-4-5-20250929).
	Model string

	// Timeout is the per-request timeout (default: 300s, generation
	// calls can run long).
	Timeout time.Duration
}

// Generator produces plugin file content through the Anthropic API.
// Requests are rate limited client-side to stay under the per-minute
// request quota of low API tiers.
type Generator struct {
	client  *http.Client
	baseURL string
	apiKey  string
	model   string
	limiter *rate.Limiter
}

// messagesRequest is the Anthropic /v1/messages request format.
type messagesRequest struct {
	Model     string            `json:"model"`
	Messages  []messagesMessage `json:"messages"`
	MaxTokens int               `json:"max_tokens"`
	System    string            `json:"system,omitempty"`
}

// messagesMessage is the Anthropic message format.
type messagesMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// messagesResponse is the Anthropic /v1/messages response format.
type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
	Usage      struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// New creates a new Anthropic generator.
func New(cfg Config) (*Generator, error) {
	if cfg.APIKey == "" {
		return nil, domain.ErrNotConfigured
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Generator{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		limiter: rate.NewLimiter(rate.Every(2*time.Second), 1),
	}, nil
}

// GenerateSkill produces the body of a SKILL.md from the sources.
func (g *Generator) GenerateSkill(ctx context.Context, sources []domain.SourceDocument, cfg domain.SkillConfig) (string, error) {
	return g.sendMessage(ctx, buildSkillPrompt(sources, cfg), 8192)
}

// GenerateCommand produces the body of a command markdown file.
func (g *Generator) GenerateCommand(ctx context.Context, sources []domain.SourceDocument, cfg domain.CommandConfig) (string, error) {
	return g.sendMessage(ctx, buildCommandPrompt(sources, cfg), 4096)
}

// GenerateAgent produces the body of an agent markdown file.
func (g *Generator) GenerateAgent(ctx context.Context, sources []domain.SourceDocument, cfg domain.AgentConfig) (string, error) {
	return g.sendMessage(ctx, buildAgentPrompt(sources, cfg), 4096)
}

// GenerateReadme produces the README.md for the whole project.
func (g *Generator) GenerateReadme(ctx context.Context, project *domain.Project) (string, error) {
	return g.sendMessage(ctx, buildReadmePrompt(project), 4096)
}

// Analyze returns the raw model output for a structure analysis.
func (g *Generator) Analyze(ctx context.Context, sources []domain.SourceDocument, outputType domain.OutputType) (string, error) {
	return g.sendMessage(ctx, buildAnalysisPrompt(sources, outputType), 4096)
}

// Ping validates the API key against the lightweight /v1/models
// endpoint without running inference.
func (g *Generator) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/v1/models", http.NoBody)
	if err != nil {
		return fmt.Errorf("anthropic: create ping request: %w", err)
	}
	req.Header.Set("x-api-key", g.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("anthropic: ping failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("anthropic: API returned status %d (failed to read body: %w)", resp.StatusCode, err)
		}
		return fmt.Errorf("anthropic: API returned status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// retryableStatus reports whether a server status warrants a retry.
// 529 is Anthropic's overloaded signal.
func retryableStatus(code int) bool {
	switch code {
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable, 529:
		return true
	default:
		return false
	}
}

// sendMessage posts one user message and returns the concatenated text
// blocks of the reply. Server errors are retried with exponential
// backoff (2s, 4s); client errors fail immediately.
func (g *Generator) sendMessage(ctx context.Context, prompt string, maxTokens int) (string, error) {
	reqBody := messagesRequest{
		Model:     g.model,
		Messages:  []messagesMessage{{Role: "user", Content: prompt}},
		MaxTokens: maxTokens,
		System:    systemPrompt,
	}
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			delay := time.Duration(1<<attempt) * time.Second
			logger.Debug("anthropic: retrying in %s after: %v", delay, lastErr)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}
		if err := g.limiter.Wait(ctx); err != nil {
			return "", err
		}

		text, retryable, err := g.doRequest(ctx, jsonBody)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if !retryable {
			return "", err
		}
	}
	return "", lastErr
}

func (g *Generator) doRequest(ctx context.Context, jsonBody []byte) (text string, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/messages", bytes.NewReader(jsonBody))
	if err != nil {
		return "", false, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", g.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", true, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", true, fmt.Errorf("read response: %w", err)
	}

	if retryableStatus(resp.StatusCode) {
		return "", true, fmt.Errorf("anthropic error (status %d): %s", resp.StatusCode, string(body))
	}

	var msgResp messagesResponse
	if err := json.Unmarshal(body, &msgResp); err != nil {
		return "", false, fmt.Errorf("decode response: %w", err)
	}
	if msgResp.Error != nil {
		return "", false, fmt.Errorf("anthropic error: %s", msgResp.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", false, fmt.Errorf("anthropic error (status %d): %s", resp.StatusCode, string(body))
	}
	if len(msgResp.Content) == 0 {
		return "", false, fmt.Errorf("anthropic: no response content returned")
	}

	var result strings.Builder
	for _, block := range msgResp.Content {
		if block.Type == "text" {
			result.WriteString(block.Text)
		}
	}
	return result.String(), false, nil
}

// ModelName returns the configured model.
func (g *Generator) ModelName() string {
	return g.model
}
