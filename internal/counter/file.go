package counter

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Zekorei/Keylog/internal/input"
	"github.com/Zekorei/Keylog/internal/model"
)

// ErrCorruptStats reports a stats file that could not be decoded.
var ErrCorruptStats = errors.New("corrupt stats file")

type fileTable struct {
	Keyboard map[string]int `json:"keyboard"`
	Mouse    map[string]int `json:"mouse"`
}

// Load reads a stats file. A missing file yields the default table. A file
// that cannot be decoded also yields the default table, together with an
// error wrapping ErrCorruptStats so the caller can report it.
//
// Keyboard labels that fail input.IsValid and negative counts are dropped.
func Load(path string) (model.CountTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.NewCountTable(), nil
		}
		return model.NewCountTable(), fmt.Errorf("failed to read stats: %w", err)
	}
	return Decode(data)
}

// Decode parses stats file contents with the same rules as Load.
func Decode(data []byte) (model.CountTable, error) {
	var raw fileTable
	if err := json.Unmarshal(data, &raw); err != nil {
		return model.NewCountTable(), fmt.Errorf("%w: %v", ErrCorruptStats, err)
	}
	table := model.NewCountTable()
	for label, n := range raw.Keyboard {
		if n < 0 || !input.IsValid(label) {
			continue
		}
		table[model.Keyboard][label] = n
	}
	for label, n := range raw.Mouse {
		if n < 0 || label == "" {
			continue
		}
		table[model.Mouse][label] = n
	}
	return table, nil
}

// Encode renders a table in the stats file format.
func Encode(table model.CountTable) ([]byte, error) {
	out := fileTable{
		Keyboard: table[model.Keyboard],
		Mouse:    table[model.Mouse],
	}
	if out.Keyboard == nil {
		out.Keyboard = map[string]int{}
	}
	if out.Mouse == nil {
		out.Mouse = map[string]int{}
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode stats: %w", err)
	}
	return append(data, '\n'), nil
}

// Save writes table to path through a temp file and rename.
func Save(path string, table model.CountTable) error {
	data, err := Encode(table)
	if err != nil {
		return err
	}
	return writeFileAtomic(path, data)
}

func writeFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create stats dir: %w", err)
	}
	tmpFile, err := os.CreateTemp(filepath.Dir(path), "stats-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp stats: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write stats: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close stats: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write stats: %w", err)
	}
	return nil
}
