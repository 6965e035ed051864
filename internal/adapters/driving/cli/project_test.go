package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pluginsmith-cli/internal/core/domain"
)

func TestProjectCreate(t *testing.T) {
	svc := newFakeProjectService()

	withDeps(Deps{Projects: svc}, func() {
		out, err := execute("project", "create", "My Helper", "--type", "skill")

		require.NoError(t, err)
		assert.Contains(t, out, "Created skill project: my-helper")
		assert.Equal(t, domain.OutputSkill, svc.projects["my-helper"].OutputType)
	})
}

func TestProjectCreate_UnknownType(t *testing.T) {
	svc := newFakeProjectService()

	withDeps(Deps{Projects: svc}, func() {
		_, err := execute("project", "create", "helper", "--type", "widget")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown output type")
	})
}

func TestProjectList_Empty(t *testing.T) {
	withDeps(Deps{Projects: newFakeProjectService()}, func() {
		out, err := execute("project", "list")

		require.NoError(t, err)
		assert.Contains(t, out, "No projects yet")
	})
}

func TestProjectShow(t *testing.T) {
	p := domain.NewProject("my-tool")
	p.Description = "Turns docs into tools"
	p.Sources = append(p.Sources, domain.SourceDocument{
		FileName: "guide.md",
		Type:     domain.TypeMarkdown,
	})

	withDeps(Deps{Projects: newFakeProjectService(p)}, func() {
		out, err := execute("project", "show", "my-tool")

		require.NoError(t, err)
		assert.Contains(t, out, "Name: my-tool")
		assert.Contains(t, out, "Turns docs into tools")
		assert.Contains(t, out, "guide.md")
	})
}

func TestProjectDelete_NotFound(t *testing.T) {
	withDeps(Deps{Projects: newFakeProjectService()}, func() {
		_, err := execute("project", "delete", "nope")

		require.Error(t, err)
	})
}

func TestProjectDelete(t *testing.T) {
	svc := newFakeProjectService(domain.NewProject("old-tool"))

	withDeps(Deps{Projects: svc}, func() {
		out, err := execute("project", "delete", "old-tool")

		require.NoError(t, err)
		assert.Contains(t, out, "Deleted project: old-tool")
		assert.Empty(t, svc.projects)
	})
}
