// Package config handles loading and saving user configuration for vikey.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings holds all user configuration for the input engine.
type Settings struct {
	// AutoCorrectMode is the stored table code: 0 off, 1 Vietnamese,
	// 2 English, 3 all. Unknown codes load as off.
	AutoCorrectMode int `yaml:"autocorrect_mode"`
	// AllowWords are raw spellings the auto-restore must never restore.
	AllowWords []string `yaml:"allow_words"`
	// CorrectionsFile optionally points at a user correction table.
	CorrectionsFile string `yaml:"corrections_file"`
	// AutoRestore toggles the ambiguity classifier. Defaults to on.
	AutoRestore *bool `yaml:"auto_restore,omitempty"`
}

// Default returns the settings a fresh install starts with.
func Default() *Settings {
	return &Settings{AutoCorrectMode: 0}
}

// RestoreEnabled resolves the AutoRestore pointer with its on default.
func (s *Settings) RestoreEnabled() bool {
	return s.AutoRestore == nil || *s.AutoRestore
}

// Load reads settings from a YAML file. A missing file yields the defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading settings file: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing settings file: %w", err)
	}

	return &s, nil
}

// Save writes settings to a YAML file.
func Save(path string, s *Settings) error {
	out, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing settings file: %w", err)
	}

	return nil
}

// LoadCorrections loads a user correction table from a YAML file of
// wrong: right pairs.
func LoadCorrections(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading corrections file: %w", err)
	}

	var table struct {
		Corrections map[string]string `yaml:"corrections"`
	}
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parsing corrections file: %w", err)
	}

	return table.Corrections, nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "vikey"), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// SettingsPath returns the default settings file location.
func SettingsPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "settings.yaml"), nil
}
