// Command pluginsmith converts documents into Claude Code plugin and
// skill packages.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/pluginsmith-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/pluginsmith-cli/internal/adapters/driven/fetch"
	"github.com/custodia-labs/pluginsmith-cli/internal/adapters/driven/install"
	"github.com/custodia-labs/pluginsmith-cli/internal/adapters/driven/llm/anthropic"
	"github.com/custodia-labs/pluginsmith-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/pluginsmith-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/pluginsmith-cli/internal/core/ports/driven"
	"github.com/custodia-labs/pluginsmith-cli/internal/core/services"
	"github.com/custodia-labs/pluginsmith-cli/internal/normalisers"
	"github.com/custodia-labs/pluginsmith-cli/internal/normalisers/doc"
	"github.com/custodia-labs/pluginsmith-cli/internal/normalisers/docx"
	"github.com/custodia-labs/pluginsmith-cli/internal/normalisers/html"
	"github.com/custodia-labs/pluginsmith-cli/internal/normalisers/markdown"
	"github.com/custodia-labs/pluginsmith-cli/internal/normalisers/pdf"
	"github.com/custodia-labs/pluginsmith-cli/internal/normalisers/plaintext"
	"github.com/custodia-labs/pluginsmith-cli/internal/normalisers/xlsx"
)

// version is overridden at build time via ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("initialising config store: %w", err)
	}
	settings, err := configStore.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	store, err := sqlite.NewStore("")
	if err != nil {
		return fmt.Errorf("initialising project store: %w", err)
	}
	defer store.Close() //nolint:errcheck

	writer, err := install.New(settings.MarketplaceDir)
	if err != nil {
		return fmt.Errorf("initialising artifact writer: %w", err)
	}

	// Without an API key the generator stays nil and generation
	// commands report ErrNotConfigured.
	var generator driven.ContentGenerator
	if settings.APIKey != "" {
		generator, err = newGenerator(settings)
		if err != nil {
			return fmt.Errorf("initialising content generator: %w", err)
		}
	}

	registry := newRegistry()

	cli.SetVersion(version)
	cli.SetDeps(cli.Deps{
		Projects:   services.NewProjectService(store),
		Ingest:     services.NewIngestService(registry, fetch.New()),
		Suggestion: services.NewSuggestionService(generator),
		Generation: services.NewGenerationService(generator),
		Install:    services.NewInstallService(writer),
		Config:     configStore,
		Generator:  newGenerator,
	})

	return cli.Execute()
}

// newGenerator builds the Anthropic generator for a settings snapshot.
// set-api-key calls it again after saving so validation exercises the
// new key rather than the one loaded at startup.
func newGenerator(settings driven.Settings) (driven.ContentGenerator, error) {
	return anthropic.New(anthropic.Config{
		APIKey:  settings.APIKey,
		Model:   settings.Model,
		BaseURL: settings.BaseURL,
	})
}

func newRegistry() *normalisers.Registry {
	registry := normalisers.NewRegistry()
	registry.Register(markdown.New())
	registry.Register(plaintext.New())
	registry.Register(html.New())
	registry.Register(docx.New())
	registry.Register(xlsx.New())
	registry.Register(pdf.New())
	registry.Register(doc.New())
	return registry
}
