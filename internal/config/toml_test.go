package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("expected missing config to be ignored, got %v", err)
	}
	if cfg.Persistence.SaveInterval != nil || cfg.Dashboard.TopN != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[persistence]
save-interval = "30s"
backup-interval = "2h"

[dashboard]
flash-duration = "750ms"
top-n = 25

[capture]
keyboard = ["/dev/input/event3"]

[log]
level = "debug"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if got := cfg.Persistence.SaveInterval.Duration(); got != 30*time.Second {
		t.Fatalf("expected 30s save interval, got %v", got)
	}
	if got := cfg.Persistence.BackupInterval.Duration(); got != 2*time.Hour {
		t.Fatalf("expected 2h backup interval, got %v", got)
	}
	if got := cfg.Dashboard.FlashDuration.Duration(); got != 750*time.Millisecond {
		t.Fatalf("expected 750ms flash, got %v", got)
	}
	if cfg.Dashboard.TopN == nil || *cfg.Dashboard.TopN != 25 {
		t.Fatalf("expected top-n 25, got %v", cfg.Dashboard.TopN)
	}
	if len(cfg.Capture.Keyboard) != 1 || cfg.Capture.Keyboard[0] != "/dev/input/event3" {
		t.Fatalf("unexpected keyboard devices: %v", cfg.Capture.Keyboard)
	}
	if cfg.Log.Level == nil || *cfg.Log.Level != "debug" {
		t.Fatalf("expected debug log level")
	}
}

func TestLoadConfigRejectsBadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[persistence]\nsave-interval = \"soon\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected invalid duration error")
	}
}

func TestDefaultPathsUseXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/data")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/conf")
	if got := DefaultStatsPath(); got != filepath.Join("/tmp/data", "keylog", "stats.json") {
		t.Fatalf("unexpected stats path %q", got)
	}
	if got := DefaultBackupDir(); got != filepath.Join("/tmp/data", "keylog", "backups") {
		t.Fatalf("unexpected backup dir %q", got)
	}
	if got := DefaultConfigPath(); got != filepath.Join("/tmp/conf", "keylog", "config.toml") {
		t.Fatalf("unexpected config path %q", got)
	}
}
