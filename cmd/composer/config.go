package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"blogtags/internal/composer"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const defaultEndpoint = "http://localhost:8080"

// cliConfig is the optional composer.yaml file; flags win over it
type cliConfig struct {
	Endpoint string `yaml:"endpoint"`
	Format   string `yaml:"format"`
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "blogtags", "composer.yaml")
}

// loadConfig reads path over the defaults. A missing file is not an error.
func loadConfig(path string) (cliConfig, error) {
	cfg := cliConfig{
		Endpoint: defaultEndpoint,
		Format:   string(composer.DefaultFormat),
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	var file cliConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if file.Endpoint != "" {
		cfg.Endpoint = file.Endpoint
	}
	if file.Format != "" {
		cfg.Format = file.Format
	}
	return cfg, nil
}

func resolveConfig(cmd *cobra.Command) (cliConfig, error) {
	path := configFlag
	if path == "" {
		path = defaultConfigPath()
	}
	cfg, err := loadConfig(path)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("endpoint") {
		cfg.Endpoint = endpointFlag
	}
	if flags.Changed("format") {
		cfg.Format = formatFlag
	}
	if _, err := composer.ParseFormat(cfg.Format); err != nil {
		return cfg, err
	}
	return cfg, nil
}
