// Package config provides the optional TOML defaults file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"wolftimer/internal/core/model"
)

const configFileName = "config.toml"

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Session SessionConfig `toml:"session"`
}

// SessionConfig maps session defaults. Unset keys stay nil.
type SessionConfig struct {
	Minutes   *int `toml:"minutes"`
	Blocks    *int `toml:"blocks"`
	Questions *int `toml:"questions"`
	Opacity   *int `toml:"opacity"`
}

const template = `# WolfTimer defaults. Command line flags take precedence.

[session]
# minutes = 60
# blocks = 2
# questions = 40
# opacity = 75
`

// ConfigPath returns the TOML config path inside appDir.
func ConfigPath(appDir string) string {
	return filepath.Join(appDir, configFileName)
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Apply overrides defaults with every positive value set in the file.
// Opacity is clamped rather than rejected.
func (cfg FileConfig) Apply(defaults model.SessionConfig) model.SessionConfig {
	session := cfg.Session
	if positive(session.Minutes) {
		defaults.TimePerBlockMinutes = *session.Minutes
	}
	if positive(session.Blocks) {
		defaults.NumBlocks = *session.Blocks
	}
	if positive(session.Questions) {
		defaults.NumQuestionsPerBlock = *session.Questions
	}
	if session.Opacity != nil {
		defaults.OpacityPercent = model.ClampOpacity(*session.Opacity)
	}
	defaults.Derive()
	return defaults
}

// EnsureTemplate writes a commented config file at path unless one exists.
// It reports whether a file was created.
func EnsureTemplate(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(template), 0o644); err != nil {
		return false, fmt.Errorf("write config: %w", err)
	}
	return true, nil
}

func positive(value *int) bool {
	return value != nil && *value > 0
}
