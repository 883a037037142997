// Package model defines shared data structures.
package model

import "time"

// Category groups labels by input device.
type Category string

// Input categories.
const (
	Keyboard Category = "keyboard"
	Mouse    Category = "mouse"
)

// Mouse buttons that are always present in a count table.
var DefaultButtons = []string{"left", "right", "middle"}

// CountTable maps a category to per-label counts.
type CountTable map[Category]map[string]int

// NewCountTable returns the table used when nothing has been persisted yet.
func NewCountTable() CountTable {
	mouse := make(map[string]int, len(DefaultButtons))
	for _, b := range DefaultButtons {
		mouse[b] = 0
	}
	return CountTable{
		Keyboard: map[string]int{},
		Mouse:    mouse,
	}
}

// Clone returns a deep copy of the table.
func (t CountTable) Clone() CountTable {
	out := make(CountTable, len(t))
	for cat, counts := range t {
		inner := make(map[string]int, len(counts))
		for label, n := range counts {
			inner[label] = n
		}
		out[cat] = inner
	}
	return out
}

// Total sums every count in a category.
func (t CountTable) Total(cat Category) int {
	total := 0
	for _, n := range t[cat] {
		total += n
	}
	return total
}

// Config defines runtime settings resolved from defaults and the config file.
type Config struct {
	StatsPath      string
	BackupDir      string
	HistoryPath    string
	LogPath        string
	SaveInterval   time.Duration
	BackupInterval time.Duration

	RefreshInterval time.Duration
	FlashDuration   time.Duration
	TopN            int
	GrowPadding     int
	ShrinkPadding   int

	KeyboardDevices []string
	MouseDevices    []string
	EventBuffer     int

	LogLevel  string
	LogFormat string
}

// BackupRecord describes one backup snapshot written to disk.
type BackupRecord struct {
	RunID   string
	TakenAt time.Time
	Path    string
	Table   CountTable
}

// BackupSummary is a ledger row for reporting.
type BackupSummary struct {
	ID            int64
	RunID         string
	TakenAt       time.Time
	Path          string
	KeyboardTotal int
	MouseTotal    int
	TopLabel      string
	TopCount      int
}
