// Package config handles loading and saving user configuration for cuneify.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the name of the config file inside the config directory.
const FileName = "config.yaml"

// Config holds user settings. Command-line flags override every field.
type Config struct {
	Inventory     string `yaml:"inventory,omitempty"` // Path to signs.jsonl or signs.db
	Language      string `yaml:"language,omitempty"`  // Default language filter: hit, akk, sux
	Emit          string `yaml:"emit"`                // "glyph" or "form"
	CandidateMode string `yaml:"candidate_mode"`      // "strict" or "loose"
	ComposeNFC    bool   `yaml:"compose_nfc"`         // Compose decomposed diacritics first
}

// Default returns the settings used when no config file exists.
func Default() *Config {
	return &Config{
		Emit:          "glyph",
		CandidateMode: "strict",
		ComposeNFC:    true,
	}
}

// Load reads a config file. Fields missing from the file keep their
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// LoadDir loads config.yaml from a directory.
func LoadDir(dir string) (*Config, error) {
	return Load(filepath.Join(dir, FileName))
}

// Save writes cfg to path.
func Save(path string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "cuneify"), nil
}

// InventoryPaths returns where to look for a sign inventory, in order.
// An explicit path from the config wins; otherwise the working directory,
// the config directory and the directory of the executable are searched.
func (c *Config) InventoryPaths(configDir string) []string {
	if c.Inventory != "" {
		return []string{c.Inventory}
	}

	var paths []string
	for _, name := range []string{"signs.db", "signs.jsonl"} {
		paths = append(paths, filepath.Join("data", name))
		if configDir != "" {
			paths = append(paths, filepath.Join(configDir, name))
		}
	}

	if exe, err := os.Executable(); err == nil {
		dir := filepath.Join(filepath.Dir(exe), "data")
		paths = append(paths, filepath.Join(dir, "signs.db"), filepath.Join(dir, "signs.jsonl"))
	}

	return paths
}
