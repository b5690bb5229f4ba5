package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFileName is the file searched for in the user and local config directories.
const configFileName = "evolution.yaml"

// SourceEmbedded names the built-in configuration in LoadEvolution results.
const SourceEmbedded = "embedded"

// LoadEvolution loads the game configuration and reports where it came from.
// Search order: customPath -> ~/.evolve/configs/evolution.yaml -> ./configs/evolution.yaml -> embedded default.
// Files only need to name the fields they override; everything else keeps its default.
func LoadEvolution(customPath string) (EvolutionConfig, string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return EvolutionConfig{}, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return EvolutionConfig{}, "", fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// A broken user or local file is skipped rather than fatal
	candidates := []string{userConfigPath(configFileName), filepath.Join("configs", configFileName)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, path, nil
		}
	}

	cfg, err := Parse(defaultEvolutionYAML)
	if err != nil {
		return DefaultEvolutionConfig(), SourceEmbedded, nil
	}
	return cfg, SourceEmbedded, nil
}

// Parse decodes a YAML document on top of the built-in defaults and validates the result.
func Parse(data []byte) (EvolutionConfig, error) {
	cfg := DefaultEvolutionConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return EvolutionConfig{}, fmt.Errorf("failed to parse yaml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return EvolutionConfig{}, err
	}
	return cfg, nil
}

// Marshal renders a configuration as YAML.
func Marshal(cfg EvolutionConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to marshal: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".evolve", "configs", filename)
}
