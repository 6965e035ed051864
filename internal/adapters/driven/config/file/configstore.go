package file

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/pluginsmith-cli/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore persists CLI settings as TOML in the pluginsmith config
// directory. The API key lives here, so the file is written 0600.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
}

// NewConfigStore creates a new TOML-based config store.
// If configDir is empty, defaults to ~/.pluginsmith.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".pluginsmith")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	return &ConfigStore{
		filePath: filepath.Join(configDir, "config.toml"),
	}, nil
}

// Load returns the current settings. A missing file yields zero-value
// settings.
func (s *ConfigStore) Load() (driven.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var settings driven.Settings
	data, err := os.ReadFile(s.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return settings, err
	}
	if err := toml.Unmarshal(data, &settings); err != nil {
		return driven.Settings{}, err
	}
	return settings, nil
}

// Save persists the settings.
func (s *ConfigStore) Save(settings driven.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := toml.Marshal(settings)
	if err != nil {
		return err
	}
	return os.WriteFile(s.filePath, data, 0600)
}

// Path returns the backing file path for display.
func (s *ConfigStore) Path() string {
	return s.filePath
}
