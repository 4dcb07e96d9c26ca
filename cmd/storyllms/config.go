package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/storyllms"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the optional YAML configuration file.
type fileConfig struct {
	Title       string          `yaml:"title"`
	Description string          `yaml:"description"`
	BaseURL     string          `yaml:"baseUrl"`
	Refs        []storyllms.Ref `yaml:"refs"`
}

// loadConfigFile reads and parses the YAML configuration file at path.
func loadConfigFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parsing config file %q: %w", path, err)
	}
	return &fc, nil
}

// mergeConfig combines CLI flags with the optional config file. Flags win
// over file values; unset fields stay empty and pick up defaults inside the
// pipeline.
func mergeConfig(cli *CLI, fc *fileConfig) storyllms.Config {
	cfg := storyllms.Config{
		DistPath:    cli.DistPath,
		BaseURL:     cli.BaseURL,
		Title:       cli.Title,
		Description: cli.Description,
	}
	if fc == nil {
		return cfg
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = fc.BaseURL
	}
	if cfg.Title == "" {
		cfg.Title = fc.Title
	}
	if cfg.Description == "" {
		cfg.Description = fc.Description
	}
	cfg.Refs = fc.Refs
	return cfg
}
