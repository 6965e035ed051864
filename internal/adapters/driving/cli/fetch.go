package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/pluginsmith-cli/internal/core/domain"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [project] [urls...]",
	Short: "Import web pages into a project",
	Long: `Fetch one or more URLs and import them into a project. The format
is sniffed from the response content type, then from the URL extension,
falling back to HTML.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	if projectService == nil || ingestService == nil {
		return errors.New("ingest service not configured")
	}

	project, err := projectService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get project: %w", err)
	}

	imported := 0
	for _, rawURL := range args[1:] {
		doc, err := ingestService.ImportURL(cmd.Context(), rawURL)
		if err != nil {
			cmd.PrintErrf("skipped %s: %v\n", rawURL, err)
			continue
		}
		replaceOrAppendWebSource(project, *doc)
		cmd.Printf("  + %s (%s, %d sections)\n", doc.FileName, doc.Type.DisplayName(), len(doc.Sections))
		imported++
	}

	if imported > 0 {
		if err := projectService.Save(cmd.Context(), project); err != nil {
			return fmt.Errorf("failed to save project: %w", err)
		}
	}
	cmd.Printf("Imported %d web documents into %s\n", imported, project.Name)
	return nil
}

// replaceOrAppendWebSource keeps re-fetches of the same URL from
// accumulating duplicate sources.
func replaceOrAppendWebSource(project *domain.Project, doc domain.SourceDocument) {
	for i := range project.Sources {
		if project.Sources[i].IsWebResource && project.Sources[i].SourceURL == doc.SourceURL {
			project.Sources[i] = doc
			return
		}
	}
	project.Sources = append(project.Sources, doc)
}
