package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Weights.Base != 50.0 || cfg.Weights.Attention != 1.0 ||
		cfg.Weights.Social != 0.5 || cfg.Weights.Notif != 0.3 {
		t.Errorf("unexpected default weights: %+v", cfg.Weights)
	}

	if len(cfg.Dataset.Gates) != 2 {
		t.Fatalf("expected 2 default gates, got %d", len(cfg.Dataset.Gates))
	}
	if cfg.Dataset.Gates[0].Value != "student" || cfg.Dataset.Gates[1].Value != "smartphone" {
		t.Errorf("unexpected default gates: %+v", cfg.Dataset.Gates)
	}

	if cfg.Thresholds.NotifHigh != 60.0 {
		t.Errorf("expected NotifHigh=60, got %v", cfg.Thresholds.NotifHigh)
	}
	if cfg.Tracking.MaxBlocks != 20 {
		t.Errorf("expected MaxBlocks=20, got %d", cfg.Tracking.MaxBlocks)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name: "missing dataset path",
			modify: func(c *Config) {
				c.Dataset.Path = ""
			},
			wantErr: true,
		},
		{
			name: "gate without keyword",
			modify: func(c *Config) {
				c.Dataset.Gates[0].Keyword = " "
			},
			wantErr: true,
		},
		{
			name: "missing database path",
			modify: func(c *Config) {
				c.Database.Path = ""
			},
			wantErr: true,
		},
		{
			name: "base weight out of range",
			modify: func(c *Config) {
				c.Weights.Base = 150
			},
			wantErr: true,
		},
		{
			name: "good score out of range",
			modify: func(c *Config) {
				c.Thresholds.GoodScore = -1
			},
			wantErr: true,
		},
		{
			name: "max blocks out of range",
			modify: func(c *Config) {
				c.Tracking.MaxBlocks = 0
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.toml")

	content := `
[weights]
base = 40.0

[dataset]
path = "./survey.csv"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Weights.Base != 40.0 {
		t.Errorf("Base = %v, want overlay value 40", cfg.Weights.Base)
	}
	if cfg.Weights.Attention != 1.0 {
		t.Errorf("Attention = %v, want default 1.0", cfg.Weights.Attention)
	}
	if cfg.Dataset.Path != "./survey.csv" {
		t.Errorf("Dataset.Path = %q", cfg.Dataset.Path)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestWriteDefaultRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault failed: %v", err)
	}
	if err := WriteDefault(path); err == nil {
		t.Error("expected error when config already exists")
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("written default config does not load: %v", err)
	}
	if cfg.Weights.Base != 50.0 {
		t.Errorf("round-tripped Base = %v", cfg.Weights.Base)
	}
}
