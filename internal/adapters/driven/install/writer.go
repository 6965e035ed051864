// Package install materialises generated artifacts on disk: into the
// local Claude Code marketplace, an export directory, or a zip archive.
package install

import (
	"archive/zip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/custodia-labs/pluginsmith-cli/internal/core/domain"
	"github.com/custodia-labs/pluginsmith-cli/internal/core/ports/driven"
	"github.com/custodia-labs/pluginsmith-cli/internal/logger"
)

// Ensure Writer implements the interface.
var _ driven.ArtifactWriter = (*Writer)(nil)

// Writer writes artifacts to the filesystem.
type Writer struct {
	marketplaceDir string
}

// New creates a writer. If marketplaceDir is empty the default local
// marketplace under ~/.claude is used.
func New(marketplaceDir string) (*Writer, error) {
	if marketplaceDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		marketplaceDir = filepath.Join(home, ".claude", "plugins", "marketplaces", domain.MarketplaceName)
	}
	return &Writer{marketplaceDir: marketplaceDir}, nil
}

// MarketplaceDir returns the marketplace root for display.
func (w *Writer) MarketplaceDir() string {
	return w.marketplaceDir
}

// Install writes the artifact into the local marketplace plugins
// directory and registers it in the marketplace manifest.
func (w *Writer) Install(ctx context.Context, artifact *domain.GeneratedArtifact, project *domain.Project) (string, error) {
	targetDir := filepath.Join(w.marketplaceDir, "plugins", artifact.RootDirectoryName)
	if err := w.writeArtifact(ctx, artifact, targetDir); err != nil {
		return "", err
	}
	if err := w.updateManifest(project); err != nil {
		return "", fmt.Errorf("updating marketplace manifest: %w", err)
	}
	logger.Debug("installed %s into %s", artifact.RootDirectoryName, targetDir)
	return targetDir, nil
}

// Export writes the artifact under dir/<rootDirectoryName>.
func (w *Writer) Export(ctx context.Context, artifact *domain.GeneratedArtifact, dir string) (string, error) {
	targetDir := filepath.Join(dir, artifact.RootDirectoryName)
	if err := w.writeArtifact(ctx, artifact, targetDir); err != nil {
		return "", err
	}
	return targetDir, nil
}

// ExportArchive writes the artifact as a zip archive at zipPath, with
// the root directory kept as the top-level entry.
func (w *Writer) ExportArchive(ctx context.Context, artifact *domain.GeneratedArtifact, zipPath string) error {
	out, err := os.Create(zipPath)
	if err != nil {
		return fmt.Errorf("creating archive: %w", err)
	}

	zw := zip.NewWriter(out)
	for _, file := range artifact.Files {
		if err := ctx.Err(); err != nil {
			zw.Close()
			out.Close()
			os.Remove(zipPath)
			return err
		}
		if file.IsDirectory {
			continue
		}

		entry, err := zw.Create(artifact.RootDirectoryName + "/" + file.RelativePath)
		if err != nil {
			zw.Close()
			out.Close()
			os.Remove(zipPath)
			return fmt.Errorf("adding %s to archive: %w", file.RelativePath, err)
		}
		if _, err := entry.Write([]byte(file.Content)); err != nil {
			zw.Close()
			out.Close()
			os.Remove(zipPath)
			return fmt.Errorf("writing %s to archive: %w", file.RelativePath, err)
		}
	}

	if err := zw.Close(); err != nil {
		out.Close()
		os.Remove(zipPath)
		return fmt.Errorf("finalising archive: %w", err)
	}
	return out.Close()
}

// writeArtifact replaces targetDir with the artifact's files.
func (w *Writer) writeArtifact(ctx context.Context, artifact *domain.GeneratedArtifact, targetDir string) error {
	if artifact == nil || len(artifact.Files) == 0 {
		return domain.ErrInvalidInput
	}

	if err := os.RemoveAll(targetDir); err != nil {
		return fmt.Errorf("removing existing %s: %w", targetDir, err)
	}
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", targetDir, err)
	}

	for _, file := range artifact.Files {
		if err := ctx.Err(); err != nil {
			return err
		}

		path := filepath.Join(targetDir, filepath.FromSlash(file.RelativePath))
		if file.IsDirectory {
			if err := os.MkdirAll(path, 0755); err != nil {
				return fmt.Errorf("creating %s: %w", path, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, []byte(file.Content), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return nil
}

// updateManifest inserts or replaces the project's entry in
// .claude-plugin/marketplace.json, creating the manifest on first
// install.
func (w *Writer) updateManifest(project *domain.Project) error {
	manifestDir := filepath.Join(w.marketplaceDir, ".claude-plugin")
	manifestPath := filepath.Join(manifestDir, "marketplace.json")

	marketplace := domain.EmptyMarketplace()
	data, err := os.ReadFile(manifestPath)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &marketplace); err != nil {
			// A corrupt manifest is rebuilt rather than blocking installs.
			logger.Debug("resetting corrupt marketplace manifest: %v", err)
			marketplace = domain.EmptyMarketplace()
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return err
	}

	entry := domain.MarketplaceEntry{
		Name:        project.Name,
		Description: project.Description,
		Version:     project.Version,
		Author:      domain.MarketplaceAuthor{Name: project.Author.Name, Email: project.Author.Email},
		Source:      "./plugins/" + project.Name,
		Category:    "custom",
	}

	replaced := false
	for i, existing := range marketplace.Plugins {
		if existing.Name == entry.Name {
			marketplace.Plugins[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		marketplace.Plugins = append(marketplace.Plugins, entry)
	}

	if err := os.MkdirAll(manifestDir, 0755); err != nil {
		return err
	}
	out, err := json.MarshalIndent(marketplace, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(manifestPath, append(out, '\n'), 0644)
}
