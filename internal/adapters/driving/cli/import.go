package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/pluginsmith-cli/internal/core/domain"
	"github.com/custodia-labs/pluginsmith-cli/internal/logger"
)

var importCmd = &cobra.Command{
	Use:   "import [project] [paths...]",
	Short: "Import documents into a project",
	Long: `Import one or more local files into a project. Each file is parsed
into text and sections by the normaliser matching its extension.

Supported formats: md, markdown, txt, pdf, docx, doc, xlsx, html, htm.

With --watch the given paths (files or directories) are watched and
re-imported whenever they change, until interrupted.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runImport,
}

// importWatch keeps the command alive re-ingesting changed files.
var importWatch bool

func init() {
	importCmd.Flags().BoolVarP(&importWatch, "watch", "w", false, "Watch paths and re-import on change")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	if projectService == nil || ingestService == nil {
		return errors.New("ingest service not configured")
	}

	project, err := projectService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get project: %w", err)
	}

	paths := args[1:]
	imported := 0
	for _, p := range paths {
		n, err := importPath(cmd, project, p)
		if err != nil {
			// One bad file never aborts the rest of the batch.
			cmd.PrintErrf("skipped %s: %v\n", p, err)
			continue
		}
		imported += n
	}

	if imported > 0 {
		if err := projectService.Save(cmd.Context(), project); err != nil {
			return fmt.Errorf("failed to save project: %w", err)
		}
	}
	cmd.Printf("Imported %d documents into %s\n", imported, project.Name)

	if importWatch {
		return watchPaths(cmd, project.Name, paths)
	}
	return nil
}

// importPath imports a single file, or every supported file directly
// inside a directory. Returns the number of documents imported.
func importPath(cmd *cobra.Command, project *domain.Project, p string) (int, error) {
	info, err := os.Stat(p)
	if err != nil {
		return 0, err
	}

	if !info.IsDir() {
		if err := importFile(cmd, project, p); err != nil {
			return 0, err
		}
		return 1, nil
	}

	entries, err := os.ReadDir(p)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		full := filepath.Join(p, entry.Name())
		if err := importFile(cmd, project, full); err != nil {
			if errors.Is(err, domain.ErrUnsupportedFileType) {
				continue
			}
			cmd.PrintErrf("skipped %s: %v\n", full, err)
			continue
		}
		count++
	}
	return count, nil
}

func importFile(cmd *cobra.Command, project *domain.Project, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %s", domain.ErrUnreadableFile, err)
	}

	doc, err := ingestService.ImportFile(cmd.Context(), filepath.Base(path), content)
	if err != nil {
		return err
	}

	replaceOrAppendSource(project, *doc)
	cmd.Printf("  + %s (%s, %d sections)\n", doc.FileName, doc.Type.DisplayName(), len(doc.Sections))
	return nil
}

// replaceOrAppendSource keeps re-imports of the same file name from
// accumulating duplicate sources.
func replaceOrAppendSource(project *domain.Project, doc domain.SourceDocument) {
	for i := range project.Sources {
		if project.Sources[i].FileName == doc.FileName && !project.Sources[i].IsWebResource {
			project.Sources[i] = doc
			return
		}
	}
	project.Sources = append(project.Sources, doc)
}

// watchPaths blocks re-importing files as they change, until SIGINT.
func watchPaths(cmd *cobra.Command, projectRef string, paths []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close() //nolint:errcheck

	for _, p := range paths {
		if err := watcher.Add(p); err != nil {
			return fmt.Errorf("failed to watch %s: %w", p, err)
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.Println("Watching for changes (Ctrl-C to stop)...")

	// Editors fire bursts of events per save; debounce per path.
	pending := make(map[string]time.Time)
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			cmd.Println("\nStopped watching.")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			logger.Debug("watch event: %s %s", event.Op, event.Name)
			pending[event.Name] = time.Now()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			cmd.PrintErrf("watch error: %v\n", err)
		case now := <-ticker.C:
			for p, at := range pending {
				if now.Sub(at) < 400*time.Millisecond {
					continue
				}
				delete(pending, p)
				reimport(ctx, cmd, projectRef, p)
			}
		}
	}
}

func reimport(ctx context.Context, cmd *cobra.Command, projectRef, path string) {
	if strings.HasPrefix(filepath.Base(path), ".") {
		return
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return
	}

	// Reload the project each round; the watch can run for a long time.
	project, err := projectService.Get(ctx, projectRef)
	if err != nil {
		cmd.PrintErrf("failed to reload project: %v\n", err)
		return
	}
	if err := importFile(cmd, project, path); err != nil {
		if !errors.Is(err, domain.ErrUnsupportedFileType) {
			cmd.PrintErrf("re-import failed for %s: %v\n", path, err)
		}
		return
	}
	if err := projectService.Save(ctx, project); err != nil {
		cmd.PrintErrf("failed to save project: %v\n", err)
	}
}
