// Package input turns raw key and button edges into canonical labels.
package input

import (
	"strings"
	"unicode"
)

// Key identifies a physical key as reported by a capture backend.
// Char is set when the key produces a printable character; Name is the
// backend's symbolic name otherwise (for example "Key.ctrl_l" or "space").
// Code is the backend scan code and is only used as part of the identity.
type Key struct {
	Char rune
	Name string
	Code uint16
}

const keyPrefix = "Key."

const buttonPrefix = "Button."

var buttons = map[string]struct{}{
	"left":   {},
	"right":  {},
	"middle": {},
	"x1":     {},
	"x2":     {},
}

// NormalizeKey returns the canonical label for a key.
func NormalizeKey(k Key) string {
	if k.Char != 0 && unicode.IsPrint(k.Char) {
		return strings.ToLower(string(k.Char))
	}
	return NormalizeLabel(k.Name)
}

// NormalizeLabel canonicalizes a key name. It is idempotent.
func NormalizeLabel(name string) string {
	return strings.ToLower(strings.TrimPrefix(name, keyPrefix))
}

// IsValid reports whether a keyboard label may be counted.
func IsValid(label string) bool {
	if label == "" {
		return false
	}
	if isPlainLabel(label) {
		return true
	}
	// named keys like ctrl_l or shift_r
	return isNamedLabel(label)
}

func isPlainLabel(label string) bool {
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		default:
			return false
		}
	}
	return true
}

func isNamedLabel(label string) bool {
	if len([]rune(label)) < 2 || !strings.Contains(label, "_") {
		return false
	}
	for _, r := range label {
		if r != '_' && !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// NormalizeButton returns the canonical mouse button label.
func NormalizeButton(raw string) (string, bool) {
	label := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(raw), buttonPrefix))
	if _, ok := buttons[label]; !ok {
		return "", false
	}
	return label, true
}
