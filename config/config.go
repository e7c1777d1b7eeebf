// Package config loads the on-disk YAML configuration used by the
// veridom CLI for integrity limits, sandbox timeouts and fuzzing
// parameters.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape. Nil fields keep
// the CLI defaults.
type FileConfig struct {
	MaxDepth   *int    `yaml:"max_depth"`
	MaxNodes   *int    `yaml:"max_nodes"`
	Timeout    *string `yaml:"timeout"`
	Complexity *int    `yaml:"complexity"`
	Iterations *int    `yaml:"iterations"`
	Seed       *int64  `yaml:"seed"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches for a local config file in the given root. It
// supports .veridom.yml/.yaml and veridom.yml/.yaml, in that order.
// A missing config is not an error: an empty FileConfig is returned.
func LoadLocal(root string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".veridom.yml", ".veridom.yaml", "veridom.yml", "veridom.yaml"} {
		path := filepath.Join(root, name)
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return cfg, err
		}
		return LoadFile(path)
	}
	return cfg, nil
}
