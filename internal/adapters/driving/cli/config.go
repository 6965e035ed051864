package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/pluginsmith-cli/internal/core/ports/driven"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage CLI configuration",
	Long: `View and change the CLI configuration: API key, generation model,
endpoint override, and marketplace directory.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long: `Set one configuration value.

Keys:
  model            generation model name
  base-url         API endpoint override
  marketplace-dir  local marketplace directory`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print one configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetAPIKeyCmd = &cobra.Command{
	Use:   "set-api-key",
	Short: "Set the content generator API key",
	Long: `Prompt for the API key without echoing it, validate it against the
API, and store it in the config file.`,
	RunE: runConfigSetAPIKey,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetAPIKeyCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	settings, err := configStore.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cmd.Printf("API key:         %s\n", maskAPIKey(settings.APIKey))
	cmd.Printf("Model:           %s\n", orDefault(settings.Model))
	cmd.Printf("Base URL:        %s\n", orDefault(settings.BaseURL))
	cmd.Printf("Marketplace dir: %s\n", orDefault(settings.MarketplaceDir))
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	settings, err := configStore.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	key, value := args[0], args[1]
	switch key {
	case "model":
		settings.Model = value
	case "base-url":
		settings.BaseURL = value
	case "marketplace-dir":
		settings.MarketplaceDir = value
	default:
		return fmt.Errorf("unknown config key %q", key)
	}

	if err := configStore.Save(settings); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	cmd.Printf("Set %s\n", key)
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	settings, err := configStore.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	switch args[0] {
	case "api-key":
		cmd.Println(maskAPIKey(settings.APIKey))
	case "model":
		cmd.Println(settings.Model)
	case "base-url":
		cmd.Println(settings.BaseURL)
	case "marketplace-dir":
		cmd.Println(settings.MarketplaceDir)
	default:
		return fmt.Errorf("unknown config key %q", args[0])
	}
	return nil
}

func runConfigSetAPIKey(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Print("Enter API key: ")
	apiKey := readPassword()
	cmd.Println()
	if apiKey == "" {
		return errors.New("API key must not be empty")
	}

	settings, err := configStore.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	settings.APIKey = apiKey
	if err := configStore.Save(settings); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	if generatorFactory != nil {
		cmd.Print("Validating key... ")
		if err := pingWithSettings(cmd, settings); err != nil {
			cmd.Println("failed")
			cmd.PrintErrf("Warning: validation failed: %v\n", err)
			cmd.Println("The key was saved anyway; fix it with 'pluginsmith config set-api-key'.")
			return nil
		}
		cmd.Println("ok")
	}

	cmd.Println("API key saved.")
	return nil
}

// pingWithSettings validates the key in settings against the API with
// a generator built from those settings, not the one the process
// started with.
func pingWithSettings(cmd *cobra.Command, settings driven.Settings) error {
	generator, err := generatorFactory(settings)
	if err != nil {
		return err
	}
	return generator.Ping(cmd.Context())
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}
	cmd.Println(configStore.Path())
	return nil
}

//nolint:errcheck // CLI helper, error ignored for UX
var readPassword = func() string {
	// Try to read password without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) == 0 {
		return "(not set)"
	}
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

func orDefault(value string) string {
	if value == "" {
		return "(default)"
	}
	return value
}
