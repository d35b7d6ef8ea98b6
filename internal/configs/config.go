package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	serrors "github.com/raiment-studios/sea-git-sync/internal/errors"
)

// ConfigFileName is looked up in the directory being synced.
const ConfigFileName = "sea-git-sync.toml"

// Config is the optional per-directory configuration.
type Config struct {
	Sync   SyncConfig        `toml:"sync"`
	Colors map[string]string `toml:"colors"`
}

// SyncConfig holds defaults for the sync command. Command-line flags
// take precedence over all of these.
type SyncConfig struct {
	Remote  string   `toml:"remote"`
	Branch  string   `toml:"branch"`
	Message string   `toml:"message"`
	Paths   []string `toml:"paths,omitempty"`
}

// Load reads sea-git-sync.toml from dir. A missing file is not an
// error; it yields a zero config.
func Load(dir string) (*Config, error) {
	config := &Config{}
	path := filepath.Join(dir, ConfigFileName)
	if err := LoadTOML(path, config); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return config, nil
		}
		return nil, fmt.Errorf("%w: %s: %v", serrors.ErrInvalidConfig, ConfigFileName, err)
	}
	return config, nil
}

// Save writes the config to dir.
func Save(dir string, config *Config) error {
	return SaveTOML(filepath.Join(dir, ConfigFileName), config)
}

// LoadWorkingDir loads the config from the current working directory.
func LoadWorkingDir() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	return Load(cwd)
}
