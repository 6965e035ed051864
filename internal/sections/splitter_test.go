package sections

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pluginsmith-cli/internal/core/domain"
)

func TestSplitEmptyInput(t *testing.T) {
	assert.Empty(t, Split(""))
	assert.Empty(t, Split("   "))
	assert.Empty(t, Split("\n\n\n"))
}

func TestSplitNoHeadings(t *testing.T) {
	sections := Split("Just one paragraph, no headings.")
	require.Len(t, sections, 1)
	assert.Equal(t, "Content", sections[0].Title)
	assert.Equal(t, 1, sections[0].Level)
	assert.Equal(t, domain.RoleOther, sections[0].Role)
	assert.Equal(t, "Just one paragraph, no headings.", sections[0].Content)
}

func TestSplitMarkdownHeadings(t *testing.T) {
	sections := Split("# Intro\nHello\n\n## Setup\nDo X")
	require.Len(t, sections, 2)

	assert.Equal(t, "Intro", sections[0].Title)
	assert.Equal(t, 1, sections[0].Level)
	assert.Equal(t, "Hello", sections[0].Content)

	assert.Equal(t, "Setup", sections[1].Title)
	assert.Equal(t, 2, sections[1].Level)
	assert.Equal(t, "Do X", sections[1].Content)
	assert.Equal(t, domain.RoleConfiguration, sections[1].Role)
}

func TestSplitIntroductionDefault(t *testing.T) {
	sections := Split("Some preamble text.\n\n# Later\nBody")
	require.Len(t, sections, 2)
	assert.Equal(t, "Introduction", sections[0].Title)
	assert.Equal(t, "Some preamble text.", sections[0].Content)
}

func TestSplitAllCapsHeading(t *testing.T) {
	sections := Split("INSTALLATION GUIDE\nRun the installer.")
	require.Len(t, sections, 1)
	assert.Equal(t, "Installation Guide", sections[0].Title)
	assert.Equal(t, 1, sections[0].Level)
	assert.Equal(t, domain.RoleInstallation, sections[0].Role)
}

func TestSplitAllCapsRequiresLetters(t *testing.T) {
	// Digits-only or double-spaced lines are not headings.
	sections := Split("12345\nbody text here")
	require.Len(t, sections, 1)
	assert.Equal(t, "Content", sections[0].Title)
}

func TestSplitNumberedHeadings(t *testing.T) {
	sections := Split("1. Overview\nFirst part.\n2. Usage\nSecond part.")
	require.Len(t, sections, 2)
	assert.Equal(t, "Overview", sections[0].Title)
	assert.Equal(t, 1, sections[0].Level)
	assert.Equal(t, domain.RoleOverview, sections[0].Role)
	assert.Equal(t, "Usage", sections[1].Title)
	assert.Equal(t, domain.RoleUsage, sections[1].Role)
}

func TestSplitNumberedSubsection(t *testing.T) {
	sections := Split("1.2. Setup\nDetails here.")
	require.Len(t, sections, 1)
	assert.Equal(t, "Setup", sections[0].Title)
	assert.Equal(t, 2, sections[0].Level)
}

func TestSplitLevelCap(t *testing.T) {
	sections := Split("####### Too Deep\nBody")
	require.Len(t, sections, 1)
	assert.Equal(t, "Too Deep", sections[0].Title)
	assert.Equal(t, 6, sections[0].Level)
}

func TestSplitLoneHashesNotHeading(t *testing.T) {
	// "#" with no text is not a heading; it lands in content.
	sections := Split("#\nactual body")
	require.Len(t, sections, 1)
	assert.Equal(t, "Content", sections[0].Title)
}

// Concatenating all section contents, in order, reproduces the
// non-heading lines of the input with ordering preserved.
func TestSplitContentPreservation(t *testing.T) {
	input := "# One\nalpha\nbeta\n\n# Two\ngamma\n\ndelta"
	sections := Split(input)

	var got []string
	for _, s := range sections {
		got = append(got, s.Content)
	}
	joined := strings.Join(got, "\n")

	for _, want := range []string{"alpha", "beta", "gamma", "delta"} {
		assert.Contains(t, joined, want)
	}
	assert.Less(t, strings.Index(joined, "alpha"), strings.Index(joined, "beta"))
	assert.Less(t, strings.Index(joined, "beta"), strings.Index(joined, "gamma"))
	assert.Less(t, strings.Index(joined, "gamma"), strings.Index(joined, "delta"))
	assert.NotContains(t, joined, "One")
	assert.NotContains(t, joined, "Two")
}

func TestClassify(t *testing.T) {
	tests := []struct {
		title string
		want  domain.SectionRole
	}{
		{"Overview", domain.RoleOverview},
		{"About this project", domain.RoleOverview},
		{"API Endpoints", domain.RoleAPIReference},
		{"Code Examples", domain.RoleCodeExample},
		{"Configuration", domain.RoleConfiguration},
		{"Setup", domain.RoleConfiguration},
		{"Installation", domain.RoleInstallation},
		{"Getting Started", domain.RoleInstallation},
		{"Usage Guide", domain.RoleUsage},
		{"Troubleshooting", domain.RoleTroubleshooting},
		{"FAQ", domain.RoleTroubleshooting},
		{"Random Notes", domain.RoleOther},
		// First matching group wins: "overview" outranks "api".
		{"API Overview", domain.RoleOverview},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.title))
		})
	}
}
