package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/Zekorei/Keylog/internal/capture"
	"github.com/Zekorei/Keylog/internal/config"
	"github.com/Zekorei/Keylog/internal/dashboard"
	"github.com/Zekorei/Keylog/internal/model"
	"github.com/Zekorei/Keylog/internal/persist"
)

const (
	defaultTopN        = 10
	defaultEventBuffer = 256
	defaultLogLevel    = "info"
	defaultLogFormat   = "json"
)

func defaultSettings() model.Config {
	return model.Config{
		StatsPath:       config.DefaultStatsPath(),
		BackupDir:       config.DefaultBackupDir(),
		HistoryPath:     config.DefaultHistoryPath(),
		LogPath:         config.DefaultLogPath(),
		SaveInterval:    persist.DefaultSaveInterval,
		BackupInterval:  persist.DefaultBackupInterval,
		RefreshInterval: dashboard.DefaultRefreshInterval,
		FlashDuration:   dashboard.DefaultFlashDuration,
		TopN:            defaultTopN,
		GrowPadding:     dashboard.DefaultGrowPadding,
		ShrinkPadding:   dashboard.DefaultShrinkPadding,
		EventBuffer:     defaultEventBuffer,
		LogLevel:        defaultLogLevel,
		LogFormat:       defaultLogFormat,
	}
}

func loadSettings() (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	cfg := resolveSettings(fileCfg)
	if err := validateSettings(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

// resolveSettings overlays file values onto the defaults.
func resolveSettings(fileCfg config.FileConfig) model.Config {
	cfg := defaultSettings()

	applyStringConfig(&cfg.StatsPath, fileCfg.Persistence.StatsFile)
	applyStringConfig(&cfg.BackupDir, fileCfg.Persistence.BackupDir)
	applyStringConfig(&cfg.HistoryPath, fileCfg.Persistence.HistoryFile)
	applyDurationConfig(&cfg.SaveInterval, fileCfg.Persistence.SaveInterval)
	applyDurationConfig(&cfg.BackupInterval, fileCfg.Persistence.BackupInterval)

	applyDurationConfig(&cfg.RefreshInterval, fileCfg.Dashboard.RefreshInterval)
	applyDurationConfig(&cfg.FlashDuration, fileCfg.Dashboard.FlashDuration)
	applyIntConfig(&cfg.TopN, fileCfg.Dashboard.TopN)
	applyIntConfig(&cfg.GrowPadding, fileCfg.Dashboard.GrowPadding)
	applyIntConfig(&cfg.ShrinkPadding, fileCfg.Dashboard.ShrinkPadding)

	if len(fileCfg.Capture.Keyboard) > 0 {
		cfg.KeyboardDevices = append([]string(nil), fileCfg.Capture.Keyboard...)
	}
	if len(fileCfg.Capture.Mouse) > 0 {
		cfg.MouseDevices = append([]string(nil), fileCfg.Capture.Mouse...)
	}
	applyIntConfig(&cfg.EventBuffer, fileCfg.Capture.Buffer)

	applyStringConfig(&cfg.LogLevel, fileCfg.Log.Level)
	applyStringConfig(&cfg.LogFormat, fileCfg.Log.Format)
	applyStringConfig(&cfg.LogPath, fileCfg.Log.File)
	return cfg
}

func validateSettings(cfg model.Config) error {
	if cfg.SaveInterval <= 0 {
		return fmt.Errorf("save-interval must be > 0")
	}
	if cfg.BackupInterval <= 0 {
		return fmt.Errorf("backup-interval must be > 0")
	}
	if cfg.RefreshInterval < 10*time.Millisecond {
		return fmt.Errorf("refresh-interval must be >= 10ms")
	}
	if cfg.FlashDuration < 0 {
		return fmt.Errorf("flash-duration must be >= 0")
	}
	validTopN := false
	for _, n := range dashboard.TopNOptions {
		if cfg.TopN == n {
			validTopN = true
			break
		}
	}
	if !validTopN {
		return fmt.Errorf("top-n must be one of 5, 10, 25 or 0 (all)")
	}
	if cfg.GrowPadding < 0 || cfg.ShrinkPadding < 0 {
		return fmt.Errorf("padding values must be >= 0")
	}
	if cfg.EventBuffer < 1 {
		return fmt.Errorf("capture buffer must be > 0")
	}
	if strings.TrimSpace(cfg.StatsPath) == "" || strings.TrimSpace(cfg.BackupDir) == "" {
		return fmt.Errorf("stats-file and backup-dir must not be empty")
	}
	return nil
}

// resolveDevices fills categories without configured devices from discovery.
func resolveDevices(cfg model.Config) (capture.Devices, error) {
	devs := capture.Devices{
		Keyboards: cfg.KeyboardDevices,
		Mice:      cfg.MouseDevices,
	}
	if len(devs.Keyboards) > 0 && len(devs.Mice) > 0 {
		return devs, nil
	}
	found, err := capture.Discover()
	if err != nil {
		if len(devs.Keyboards) > 0 || len(devs.Mice) > 0 {
			return devs, nil
		}
		return capture.Devices{}, err
	}
	if len(devs.Keyboards) == 0 {
		devs.Keyboards = found.Keyboards
	}
	if len(devs.Mice) == 0 {
		devs.Mice = found.Mice
	}
	return devs, nil
}

func applyStringConfig(target, value *string) {
	if value == nil {
		return
	}
	*target = *value
}

func applyIntConfig(target, value *int) {
	if value == nil {
		return
	}
	*target = *value
}

func applyDurationConfig(target *time.Duration, value *config.Duration) {
	if value == nil {
		return
	}
	*target = value.Duration()
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# keylog configuration
# Uncomment a value to enable it. Durations use Go syntax ("10s", "4h").

[persistence]
# save-interval = %q      # How often stats.json is rewritten
# backup-interval = %q    # How often a timestamped backup is written
# stats-file = %q
# backup-dir = %q
# history-file = %q

[dashboard]
# refresh-interval = %q
# flash-duration = %q
# top-n = %d              # 5, 10, 25 or 0 for all
# grow-padding = %d
# shrink-padding = %d

[capture]
# keyboard = ["/dev/input/event3"]   # Empty means auto-detect
# mouse = ["/dev/input/event5"]
# buffer = %d

[log]
# level = %q              # debug, info, warn, error
# format = %q             # json or text
# file = %q
`,
		persist.DefaultSaveInterval.String(),
		persist.DefaultBackupInterval.String(),
		config.DefaultStatsPath(),
		config.DefaultBackupDir(),
		config.DefaultHistoryPath(),
		dashboard.DefaultRefreshInterval.String(),
		dashboard.DefaultFlashDuration.String(),
		defaultTopN,
		dashboard.DefaultGrowPadding,
		dashboard.DefaultShrinkPadding,
		defaultEventBuffer,
		defaultLogLevel,
		defaultLogFormat,
		config.DefaultLogPath(),
	)
}
