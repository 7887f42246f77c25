// Package config loads optional tool defaults from a YAML file.
// Command-line flags always win over file values; the file only fills
// gaps.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const defaultFileName = ".ecinv.yaml"

// Config holds flag defaults an operator can pin in a config file.
type Config struct {
	Region  string `yaml:"region"`
	Profile string `yaml:"profile"`
	Engines string `yaml:"engines"`
	Fields  string `yaml:"fields"`
	Format  string `yaml:"format"`
	Output  string `yaml:"output"`
}

// Load reads the config file at path. An explicit path must exist; an
// empty path auto-discovers $HOME/.ecinv.yaml and quietly returns an
// empty config when no file is found.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return &Config{}, nil
		}
		path = filepath.Join(home, defaultFileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	slog.Debug("loaded config file", "path", path)
	return &cfg, nil
}
