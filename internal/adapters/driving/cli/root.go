// Package cli implements the cobra command surface of the PluginSmith CLI.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/pluginsmith-cli/internal/core/ports/driven"
	"github.com/custodia-labs/pluginsmith-cli/internal/core/ports/driving"
	"github.com/custodia-labs/pluginsmith-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services injected from the composition root.
var (
	projectService    driving.ProjectService
	ingestService     driving.IngestService
	suggestionService driving.SuggestionService
	generationService driving.GenerationService
	installService    driving.InstallService
	configStore       driven.ConfigStore
	generatorFactory  GeneratorFactory
)

// GeneratorFactory builds a content generator for a settings snapshot.
// The set-api-key command uses it to validate the key it just stored
// rather than whatever key the process started with.
type GeneratorFactory func(driven.Settings) (driven.ContentGenerator, error)

// verbose enables debug logging on stderr.
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "pluginsmith",
	Short: "Turn documents into Claude Code plugins and skills",
	Long: `PluginSmith converts heterogeneous documents (Markdown, text, PDF,
Word, Excel, web pages) into installable Claude Code plugin and skill
packages.

Typical workflow:
  pluginsmith project create my-tool
  pluginsmith import my-tool ./docs/guide.md ./docs/api.pdf
  pluginsmith analyze my-tool --apply
  pluginsmith generate my-tool
  pluginsmith install my-tool`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

// Deps aggregates everything the CLI needs from the composition root.
type Deps struct {
	Projects   driving.ProjectService
	Ingest     driving.IngestService
	Suggestion driving.SuggestionService
	Generation driving.GenerationService
	Install    driving.InstallService
	Config     driven.ConfigStore
	Generator  GeneratorFactory
}

// SetDeps injects the services the commands operate on.
func SetDeps(deps Deps) {
	projectService = deps.Projects
	ingestService = deps.Ingest
	suggestionService = deps.Suggestion
	generationService = deps.Generation
	installService = deps.Install
	configStore = deps.Config
	generatorFactory = deps.Generator
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	version = v
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
