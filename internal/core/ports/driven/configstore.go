package driven

// Settings is the persisted CLI configuration.
type Settings struct {
	// APIKey is the content generator API key.
	APIKey string `toml:"api_key"`

	// Model is the generation model name; empty selects the default.
	Model string `toml:"model"`

	// BaseURL overrides the generator endpoint; empty selects the default.
	BaseURL string `toml:"base_url"`

	// MarketplaceDir overrides the local marketplace location; empty
	// selects ~/.claude/plugins/marketplaces/<marketplace name>.
	MarketplaceDir string `toml:"marketplace_dir"`
}

// ConfigStore loads and saves CLI settings.
type ConfigStore interface {
	// Load returns the current settings. A missing config file yields
	// zero-value settings, not an error.
	Load() (Settings, error)

	// Save persists the settings.
	Save(Settings) error

	// Path returns the backing file path for display.
	Path() string
}
