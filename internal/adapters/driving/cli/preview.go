package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/pluginsmith-cli/internal/adapters/driving/tui"
)

var previewCmd = &cobra.Command{
	Use:   "preview [project]",
	Short: "Show the generated file tree",
	Long: `Print the directory tree of the project's generated artifact.
With --file the content of a single generated file is printed instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

// previewFile selects one file to print instead of the tree.
var previewFile string

func init() {
	previewCmd.Flags().StringVarP(&previewFile, "file", "f", "", "Print one file by its relative path")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	if projectService == nil {
		return errors.New("project service not configured")
	}

	project, err := projectService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get project: %w", err)
	}

	if project.Artifact == nil || len(project.Artifact.Files) == 0 {
		return fmt.Errorf("project %s has no generated artifact; run 'pluginsmith generate %s' first",
			project.Name, project.Name)
	}

	if previewFile != "" {
		for i := range project.Artifact.Files {
			f := &project.Artifact.Files[i]
			if f.RelativePath == previewFile {
				cmd.Print(f.Content)
				return nil
			}
		}
		return fmt.Errorf("no generated file at %s", previewFile)
	}

	cmd.Print(tui.RenderFileTree(project.Artifact, nil))
	return nil
}
