package config

import (
	"github.com/focusboost/focusboost/internal/focus"
	"github.com/focusboost/focusboost/internal/schema"
)

// Config represents the application configuration
type Config struct {
	Dataset    DatasetConfig    `toml:"dataset"`
	Database   DatabaseConfig   `toml:"database"`
	Weights    focus.Weights    `toml:"weights"`
	Thresholds ThresholdsConfig `toml:"thresholds"`
	Tracking   TrackingConfig   `toml:"tracking"`
}

// DatasetConfig locates the survey export and defines the gate conditions
// rows must satisfy to enter the working set.
type DatasetConfig struct {
	Path  string        `toml:"path"`
	Gates []schema.Gate `toml:"gates"`
}

// DatabaseConfig contains session log settings
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// ThresholdsConfig contains the cutoffs that raise recommendation flags.
type ThresholdsConfig struct {
	NotifHigh    float64 `toml:"notif_high"`    // notification index at or above
	SocialHigh   float64 `toml:"social_high"`   // hours strictly above
	LowAttention float64 `toml:"low_attention"` // attention strictly below
	AdherenceLow float64 `toml:"adherence_low"` // adherence strictly below
	GoodScore    float64 `toml:"good_score"`    // focus score at or above
}

// TrackingConfig contains study-block tracking settings
type TrackingConfig struct {
	MaxBlocks int `toml:"max_blocks"`
}

// Default returns a Config with sensible defaults
func Default() *Config {
	return &Config{
		Dataset: DatasetConfig{
			Path: "./data/data.csv",
			Gates: []schema.Gate{
				{Keyword: "occup", Value: "student"},
				{Keyword: "device", Value: "smartphone"},
			},
		},
		Database: DatabaseConfig{
			Path: "~/.local/share/focusboost/focusboost.db",
		},
		Weights: focus.DefaultWeights(),
		Thresholds: ThresholdsConfig{
			NotifHigh:    60.0,
			SocialHigh:   3.0,
			LowAttention: 50.0,
			AdherenceLow: 60.0,
			GoodScore:    70.0,
		},
		Tracking: TrackingConfig{
			MaxBlocks: 20,
		},
	}
}
