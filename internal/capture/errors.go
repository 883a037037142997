package capture

import "errors"

var (
	// ErrUnsupported is returned when no capture backend exists for this platform.
	ErrUnsupported = errors.New("input capture is not supported on this platform")
	// ErrNoDevices is returned when discovery finds no keyboard or mouse.
	ErrNoDevices = errors.New("no input devices found")
)
