package html

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pluginsmith-cli/internal/core/domain"
	"github.com/custodia-labs/pluginsmith-cli/internal/core/ports/driven"
)

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "removes script blocks",
			input:    "<p>keep</p><script>alert('x')</script>",
			expected: "keep",
		},
		{
			name:     "removes style blocks",
			input:    "<style>body { color: red }</style><p>keep</p>",
			expected: "keep",
		},
		{
			name:     "block tags become newlines",
			input:    "<h1>Title</h1><p>First</p><p>Second</p>",
			expected: "Title\n\nFirst\n\nSecond",
		},
		{
			name:     "inline tags dropped without newline",
			input:    "<p>a <b>bold</b> word</p>",
			expected: "a bold word",
		},
		{
			name:     "entities decoded",
			input:    "<p>a &amp; b &lt;c&gt; &quot;d&quot; &#39;e&#39;&nbsp;f</p>",
			expected: "a & b <c> \"d\" 'e' f",
		},
		{
			name:     "newline runs collapse",
			input:    "<p>a</p><div></div><div></div><div></div><p>b</p>",
			expected: "a\n\nb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripHTML(tt.input))
		})
	}
}

func TestExtractTitle(t *testing.T) {
	assert.Equal(t, "My Page", ExtractTitle("<html><head><title> My Page </title></head></html>"))
	assert.Empty(t, ExtractTitle("<html><body>no title</body></html>"))
}

func TestNormalise(t *testing.T) {
	n := New()
	input := "<html><body><h1>Setup Guide</h1><p>Run the installer.</p></body></html>"

	doc, err := n.Normalise(context.Background(), &domain.RawSource{
		FileName:      "guide.html",
		Content:       []byte(input),
		IsWebResource: true,
		SourceURL:     "https://example.com/guide",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.TypeWebPage, doc.Type)
	assert.True(t, doc.IsWebResource)
	assert.Equal(t, "Setup Guide\n\nRun the installer.", doc.RawContent)
	assert.NotEmpty(t, doc.Sections)
}

func TestNormalise_OnlyMarkup(t *testing.T) {
	n := New()

	_, err := n.Normalise(context.Background(), &domain.RawSource{
		FileName: "empty.html",
		Content:  []byte("<script>x()</script><style>a{}</style>"),
	})

	assert.ErrorIs(t, err, domain.ErrTextExtractionFailed)
}

func TestNormalise_NilSource(t *testing.T) {
	n := New()

	_, err := n.Normalise(context.Background(), nil)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInterfaceCompliance(t *testing.T) {
	var n driven.Normaliser = New()

	assert.Equal(t, []string{"html", "htm"}, n.SupportedExtensions())
	assert.Equal(t, 50, n.Priority())
}
