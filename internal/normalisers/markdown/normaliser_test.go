package markdown

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pluginsmith-cli/internal/core/domain"
	"github.com/custodia-labs/pluginsmith-cli/internal/core/ports/driven"
)

func TestNormalise(t *testing.T) {
	n := New()
	content := "# Guide\n\nIntro text.\n\n## Installation\n\nRun make install.\n"

	doc, err := n.Normalise(context.Background(), &domain.RawSource{
		FileName: "guide.md",
		Content:  []byte(content),
	})

	require.NoError(t, err)
	assert.Equal(t, "guide.md", doc.FileName)
	assert.Equal(t, domain.TypeMarkdown, doc.Type)
	assert.Equal(t, content, doc.RawContent)
	assert.NotEmpty(t, doc.ID)
	require.Len(t, doc.Sections, 2)
	assert.Equal(t, "Guide", doc.Sections[0].Title)
	assert.Equal(t, "Installation", doc.Sections[1].Title)
	assert.Equal(t, domain.RoleInstallation, doc.Sections[1].Role)
}

func TestNormalise_PreservesFencedCode(t *testing.T) {
	n := New()
	content := "# Usage\n\n```sh\n# not a heading\nmake build\n```\n"

	doc, err := n.Normalise(context.Background(), &domain.RawSource{
		FileName: "usage.md",
		Content:  []byte(content),
	})

	require.NoError(t, err)
	require.Len(t, doc.Sections, 1)
	assert.Contains(t, doc.Sections[0].Content, "# not a heading")
}

func TestNormalise_EmptyContent(t *testing.T) {
	n := New()

	_, err := n.Normalise(context.Background(), &domain.RawSource{
		FileName: "empty.md",
		Content:  []byte("   \n\t\n"),
	})

	assert.ErrorIs(t, err, domain.ErrTextExtractionFailed)
}

func TestNormalise_NilSource(t *testing.T) {
	n := New()

	_, err := n.Normalise(context.Background(), nil)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNormalise_WebSourcePreserved(t *testing.T) {
	n := New()

	doc, err := n.Normalise(context.Background(), &domain.RawSource{
		FileName:      "readme.md",
		Content:       []byte("# Readme\n\nHello."),
		IsWebResource: true,
		SourceURL:     "https://example.com/readme.md",
	})

	require.NoError(t, err)
	assert.True(t, doc.IsWebResource)
	assert.Equal(t, "https://example.com/readme.md", doc.SourceURL)
}

func TestInterfaceCompliance(t *testing.T) {
	var n driven.Normaliser = New()

	assert.Equal(t, []string{"md", "markdown"}, n.SupportedExtensions())
	assert.Equal(t, 50, n.Priority())
}
