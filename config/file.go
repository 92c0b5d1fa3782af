package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// EnvConfigDir overrides the configuration directory when set.
// Used by tests and by users who keep dotfiles elsewhere.
const EnvConfigDir = "TIX_CONFIG_DIR"

const configFileName = "config.toml"

// Dir returns the configuration directory.
func Dir() (string, error) {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".config", "tix"), nil
}

// Path returns the full path of the configuration file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Load reads and parses the configuration file.
// Returns ErrNotFound if no file exists and ErrInvalid if it cannot be
// parsed.
func Load() (*Settings, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	settings := &Settings{}
	if err := toml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return settings, nil
}

// Save writes the configuration file with owner-only permissions.
func (s *Settings) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(s); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	// Tokens live in this file; never widen beyond 0600.
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}
