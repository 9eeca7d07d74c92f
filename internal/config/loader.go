package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "etris.yaml"

// Load loads the etris configuration.
// Search order: customPath -> ~/.etris/configs/etris.yaml -> ./configs/etris.yaml
// -> embedded default -> DefaultEtrisConfig.
// Keys missing from a file keep their default values.
func Load(customPath string) (EtrisConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return EtrisConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return EtrisConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(fileName); userCfgPath != "" {
		if cfg, ok := tryFile(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryFile(filepath.Join("configs", fileName)); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	if cfg, err := Parse(defaultEtrisYAML); err == nil {
		return cfg, nil
	}
	return DefaultEtrisConfig(), nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (EtrisConfig, error) {
	cfg := DefaultEtrisConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return EtrisConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return EtrisConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes cfg as YAML. Parse accepts the output.
func Marshal(cfg EtrisConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// tryFile loads an optional config file. Unreadable or invalid files are
// skipped so the next location in the search order is used.
func tryFile(path string) (EtrisConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return EtrisConfig{}, false
	}
	cfg, err := Parse(data)
	if err != nil {
		return EtrisConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".etris", "configs", filename)
}
