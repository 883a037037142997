// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
)

const appDir = "keylog"

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// XDGDataHome returns the XDG data home or a default fallback.
func XDGDataHome() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

// DefaultDataDir returns the directory holding stats, backups and logs.
func DefaultDataDir() string {
	return filepath.Join(XDGDataHome(), appDir)
}

// DefaultStatsPath returns the default path for the autosaved stats file.
func DefaultStatsPath() string {
	return filepath.Join(DefaultDataDir(), "stats.json")
}

// DefaultBackupDir returns the default directory for timestamped backups.
func DefaultBackupDir() string {
	return filepath.Join(DefaultDataDir(), "backups")
}

// DefaultHistoryPath returns the default path for the SQLite backup ledger.
func DefaultHistoryPath() string {
	return filepath.Join(DefaultDataDir(), "history.db")
}

// DefaultLogPath returns the default log file path.
func DefaultLogPath() string {
	return filepath.Join(DefaultDataDir(), "keylog.log")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), appDir, "config.toml")
}
