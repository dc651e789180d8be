// Package config loads optional YAML defaults for the paramcheck CLI. A
// registry repo can keep a .paramcheck.yaml next to its parameter file so CI
// invocations do not repeat the same flags; explicit flags always win.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up next to the registry file
// when --config is not given.
const DefaultFileName = ".paramcheck.yaml"

// Config mirrors the CLI flags that make sense as repo-level defaults.
type Config struct {
	Proto                string `yaml:"proto"`
	CSVFile              string `yaml:"csv_file"`
	MarkdownTable        bool   `yaml:"markdown_table"`
	ImmediateExit        bool   `yaml:"immediate_exit"`
	RewriteDefaultAccess bool   `yaml:"rewrite_default_access"`
	RewriteAutoNumberID  bool   `yaml:"rewrite_auto_number_id"`
}

// Load reads and parses a config file. Unknown keys are rejected so a typo
// in the file fails loudly instead of silently doing nothing.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		// An empty file is a valid, all-defaults config.
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadIfExists loads the config at path, returning an empty Config when the
// file is absent.
func LoadIfExists(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{}, nil
	}
	return Load(path)
}
