package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/pluginsmith-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/pluginsmith-cli/internal/core/domain"
	"github.com/custodia-labs/pluginsmith-cli/internal/core/ports/driving"
)

var generateCmd = &cobra.Command{
	Use:   "generate [project]",
	Short: "Generate the plugin or skill package",
	Long: `Assemble the project's configuration and sources into a complete
package. File bodies without pre-written instruction content are
produced by the content generator; everything else is rendered
deterministically.

A failed generation leaves the project without a partial artifact.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

// generatePlain disables the live progress display.
var generatePlain bool

func init() {
	generateCmd.Flags().BoolVar(&generatePlain, "plain", false, "Print progress as plain lines")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if projectService == nil || generationService == nil {
		return errors.New("generation service not configured")
	}

	project, err := projectService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get project: %w", err)
	}

	var artifact *domain.GeneratedArtifact
	if generatePlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		artifact, err = generatePlainProgress(cmd, project)
	} else {
		artifact, err = generateWithTUI(cmd, project)
	}
	if err != nil {
		// Persist the failed status so 'project show' reflects it.
		_ = projectService.Save(cmd.Context(), project) //nolint:errcheck
		return fmt.Errorf("generation failed: %w", err)
	}

	if err := projectService.AttachArtifact(cmd.Context(), project, artifact); err != nil {
		return fmt.Errorf("failed to save artifact: %w", err)
	}

	cmd.Printf("\nGenerated %d files. Preview with 'pluginsmith preview %s'.\n",
		len(artifact.Files), project.Name)
	return nil
}

func generatePlainProgress(cmd *cobra.Command, project *domain.Project) (*domain.GeneratedArtifact, error) {
	progress := func(step string, completed, total int) {
		cmd.Printf("  [%d/%d] %s\n", completed, total, step)
	}
	return generationService.Generate(cmd.Context(), project, progress)
}

func generateWithTUI(cmd *cobra.Command, project *domain.Project) (*domain.GeneratedArtifact, error) {
	var artifact *domain.GeneratedArtifact
	err := tui.RunProgress(project.Name, func(progress func(string, int, int)) error {
		var err error
		artifact, err = generationService.Generate(cmd.Context(), project, driving.ProgressFunc(progress))
		return err
	})
	return artifact, err
}
