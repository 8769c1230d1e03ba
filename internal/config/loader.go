package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Load reads and parses the configuration file. Values not present in the
// file keep their defaults.
func Load(path string) (*Config, error) {
	expandedPath, err := expandPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path: %w", err)
	}

	data, err := os.ReadFile(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s (run 'focusboost config init' to create)", expandedPath)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.expandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault loads the config file, falling back to defaults when the
// file does not exist yet.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if err == nil {
		return cfg, nil
	}

	expandedPath, perr := expandPath(path)
	if perr == nil {
		if _, serr := os.Stat(expandedPath); os.IsNotExist(serr) {
			cfg = Default()
			if perr = cfg.expandPaths(); perr != nil {
				return nil, perr
			}
			return cfg, nil
		}
	}
	return nil, err
}

// WriteDefault writes the default configuration to path, creating parent
// directories. It refuses to overwrite an existing file.
func WriteDefault(path string) error {
	expandedPath, err := expandPath(path)
	if err != nil {
		return fmt.Errorf("failed to expand config path: %w", err)
	}

	if _, err := os.Stat(expandedPath); err == nil {
		return fmt.Errorf("config already exists: %s", expandedPath)
	}

	if err := os.MkdirAll(filepath.Dir(expandedPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(expandedPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// expandPath expands ~ to home directory
func expandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}

// expandPaths expands ~ in all path fields
func (c *Config) expandPaths() error {
	var err error

	c.Dataset.Path, err = expandPath(c.Dataset.Path)
	if err != nil {
		return err
	}

	c.Database.Path, err = expandPath(c.Database.Path)
	if err != nil {
		return err
	}

	return nil
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	if c.Dataset.Path == "" {
		errs = append(errs, errors.New("dataset.path is required"))
	}
	for i, g := range c.Dataset.Gates {
		if strings.TrimSpace(g.Keyword) == "" {
			errs = append(errs, fmt.Errorf("dataset.gates[%d].keyword is required", i))
		}
		if strings.TrimSpace(g.Value) == "" {
			errs = append(errs, fmt.Errorf("dataset.gates[%d].value is required", i))
		}
	}

	if c.Database.Path == "" {
		errs = append(errs, errors.New("database.path is required"))
	}

	if c.Weights.Base < 0 || c.Weights.Base > 100 {
		errs = append(errs, errors.New("weights.base must be between 0 and 100"))
	}

	if c.Thresholds.GoodScore < 0 || c.Thresholds.GoodScore > 100 {
		errs = append(errs, errors.New("thresholds.good_score must be between 0 and 100"))
	}
	if c.Thresholds.LowAttention < 0 || c.Thresholds.LowAttention > 100 {
		errs = append(errs, errors.New("thresholds.low_attention must be between 0 and 100"))
	}
	if c.Thresholds.AdherenceLow < 0 || c.Thresholds.AdherenceLow > 100 {
		errs = append(errs, errors.New("thresholds.adherence_low must be between 0 and 100"))
	}

	if c.Tracking.MaxBlocks < 1 || c.Tracking.MaxBlocks > 100 {
		errs = append(errs, errors.New("tracking.max_blocks must be between 1 and 100"))
	}

	return errors.Join(errs...)
}
