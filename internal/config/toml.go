// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Persistence PersistenceConfig `toml:"persistence"`
	Dashboard   DashboardConfig   `toml:"dashboard"`
	Capture     CaptureConfig     `toml:"capture"`
	Log         LogConfig         `toml:"log"`
}

// PersistenceConfig maps autosave and backup settings.
type PersistenceConfig struct {
	SaveInterval   *Duration `toml:"save-interval"`
	BackupInterval *Duration `toml:"backup-interval"`
	StatsFile      *string   `toml:"stats-file"`
	BackupDir      *string   `toml:"backup-dir"`
	HistoryFile    *string   `toml:"history-file"`
}

// DashboardConfig maps dashboard settings.
type DashboardConfig struct {
	RefreshInterval *Duration `toml:"refresh-interval"`
	FlashDuration   *Duration `toml:"flash-duration"`
	TopN            *int      `toml:"top-n"`
	GrowPadding     *int      `toml:"grow-padding"`
	ShrinkPadding   *int      `toml:"shrink-padding"`
}

// CaptureConfig maps input device settings. Empty device lists mean
// auto-detect.
type CaptureConfig struct {
	Keyboard []string `toml:"keyboard"`
	Mouse    []string `toml:"mouse"`
	Buffer   *int     `toml:"buffer"`
}

// LogConfig maps logging settings.
type LogConfig struct {
	Level  *string `toml:"level"`
	Format *string `toml:"format"`
	File   *string `toml:"file"`
}

// Duration is a time.Duration written as a Go duration string ("10s", "4h").
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler for Duration.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	*d = Duration(parsed)
	return nil
}

// Duration returns the underlying time.Duration value.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
