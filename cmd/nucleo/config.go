package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/nucleo/pipeline"
)

// Config is the optional YAML configuration shared by the subcommands.
// Flags override whatever the file sets; absent fields keep their defaults.
type Config struct {
	Input     string `yaml:"input"`
	KeyFile   string `yaml:"key_file"`
	OutputDir string `yaml:"output_dir"`
	Workers   int    `yaml:"workers"`
}

func defaultConfig() Config {
	return Config{
		OutputDir: ".",
		Workers:   pipeline.DefaultOptions().Workers,
	}
}

// loadConfig reads path into the defaults; an empty path returns defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}
