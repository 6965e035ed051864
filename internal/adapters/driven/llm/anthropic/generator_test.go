package anthropic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pluginsmith-cli/internal/core/domain"
	"github.com/custodia-labs/pluginsmith-cli/internal/core/ports/driven"
)

func textResponse(text string) string {
	return `{"content":[{"type":"text","text":` + mustJSON(text) + `}],"stop_reason":"end_turn"}`
}

func mustJSON(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func newTestGenerator(t *testing.T, handler http.HandlerFunc) *Generator {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	generator, err := New(Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
	})
	require.NoError(t, err)
	return generator
}

func TestNew_RequiresAPIKey(t *testing.T) {
	generator, err := New(Config{})
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
	assert.Nil(t, generator)
}

func TestNew_Defaults(t *testing.T) {
	generator, err := New(Config{APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, generator.ModelName())
	assert.Equal(t, DefaultBaseURL, generator.baseURL)
}

func TestGenerateSkill_Success(t *testing.T) {
	var gotPrompt string
	var gotHeaders http.Header
	generator := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()

		var req messagesRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 1)
		gotPrompt = req.Messages[0].Content

		w.Write([]byte(textResponse("---\nname: my-skill\n---\nBody")))
	})

	skill := domain.NewSkillConfig()
	skill.Name = "my-skill"
	skill.Description = "Does things"
	sources := []domain.SourceDocument{{FileName: "guide.md", RawContent: "the guide"}}

	content, err := generator.GenerateSkill(context.Background(), sources, skill)
	require.NoError(t, err)
	assert.Equal(t, "---\nname: my-skill\n---\nBody", content)

	assert.Equal(t, "test-key", gotHeaders.Get("x-api-key"))
	assert.Equal(t, "2023-06-01", gotHeaders.Get("anthropic-version"))
	assert.Contains(t, gotPrompt, "Name: my-skill")
	assert.Contains(t, gotPrompt, "### guide.md")
	assert.Contains(t, gotPrompt, "the guide")
}

func TestSendMessage_RetriesOnOverload(t *testing.T) {
	attempts := 0
	generator := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(529)
			w.Write([]byte(`{"error":{"type":"overloaded_error","message":"Overloaded"}}`))
			return
		}
		w.Write([]byte(textResponse("ok")))
	})

	content, err := generator.GenerateReadme(context.Background(), domain.NewProject("p"))
	require.NoError(t, err)
	assert.Equal(t, "ok", content)
	assert.Equal(t, 2, attempts)
}

func TestSendMessage_NoRetryOnAuthError(t *testing.T) {
	attempts := 0
	generator := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"type":"authentication_error","message":"invalid x-api-key"}}`))
	})

	_, err := generator.GenerateReadme(context.Background(), domain.NewProject("p"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid x-api-key")
	assert.Equal(t, 1, attempts)
}

func TestSendMessage_ConcatenatesTextBlocks(t *testing.T) {
	generator := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content":[{"type":"text","text":"Hello "},{"type":"text","text":"World"}]}`))
	})

	cmd := domain.NewCommandConfig()
	content, err := generator.GenerateCommand(context.Background(), nil, cmd)
	require.NoError(t, err)
	assert.Equal(t, "Hello World", content)
}

func TestAnalyze_PromptShape(t *testing.T) {
	var gotPrompt string
	generator := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		var req messagesRequest
		json.NewDecoder(r.Body).Decode(&req)
		gotPrompt = req.Messages[0].Content
		w.Write([]byte(textResponse(`{"suggestions":[]}`)))
	})

	sources := []domain.SourceDocument{{FileName: "api.md", Type: domain.TypeMarkdown, RawContent: strings.Repeat("x", 10000)}}
	_, err := generator.Analyze(context.Background(), sources, domain.OutputSkill)
	require.NoError(t, err)

	assert.Contains(t, gotPrompt, "Claude Code skill structure")
	assert.Contains(t, gotPrompt, `"suggestions" array`)
	// Source content is truncated before inlining.
	assert.Less(t, strings.Count(gotPrompt, "x"), 8100)
}

func TestPing(t *testing.T) {
	generator := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/models", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		w.Write([]byte(`{"data":[]}`))
	})

	assert.NoError(t, generator.Ping(context.Background()))
}

func TestPing_BadKey(t *testing.T) {
	generator := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"bad key"}}`))
	})

	err := generator.Ping(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestInterfaceCompliance(t *testing.T) {
	var _ driven.ContentGenerator = (*Generator)(nil)
}
