package capture

import (
	"bufio"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Zekorei/Keylog/internal/input"
	"github.com/Zekorei/Keylog/internal/model"
)

const (
	// size of struct input_event on 64-bit Linux
	eventSize = 24

	evKey = 0x01

	valueRelease = 0
	valuePress   = 1
	valueRepeat  = 2
)

type rawEvent struct {
	Type  uint16
	Code  uint16
	Value int32
}

// Device reads input_event records from a Linux evdev node.
type Device struct {
	Path string
}

// NewDevice returns a Device for the given /dev/input path.
func NewDevice(path string) *Device {
	return &Device{Path: path}
}

func (d *Device) String() string {
	return d.Path
}

// Run reads the device until ctx is done. The device is closed when ctx
// ends so a pending read returns.
func (d *Device) Run(ctx context.Context, out chan<- input.Event) error {
	f, err := os.Open(d.Path)
	if err != nil {
		return fmt.Errorf("failed to open device: %w", err)
	}
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
		case <-done:
		}
		if cerr := f.Close(); cerr != nil {
			// Best-effort close; the reader may have closed first.
			_ = cerr
		}
	}()

	err = readEvents(ctx, f, out)
	if ctx.Err() != nil {
		return nil
	}
	return err
}

// readEvents decodes input_event records from r and emits the key and
// button edges among them.
func readEvents(ctx context.Context, r io.Reader, out chan<- input.Event) error {
	br := bufio.NewReaderSize(r, eventSize*64)
	buf := make([]byte, eventSize)
	for {
		if _, err := io.ReadFull(br, buf); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to read event: %w", err)
		}
		ev, ok := translate(decodeEvent(buf))
		if !ok {
			continue
		}
		if !emit(ctx, out, ev) {
			return nil
		}
	}
}

// decodeEvent parses one input_event. The timestamp is skipped.
func decodeEvent(b []byte) rawEvent {
	return rawEvent{
		Type:  binary.NativeEndian.Uint16(b[16:18]),
		Code:  binary.NativeEndian.Uint16(b[18:20]),
		Value: int32(binary.NativeEndian.Uint32(b[20:24])),
	}
}

// translate maps a raw event to a key or button edge. Auto-repeat is
// delivered as another press; the recorder drops it while the key is held.
func translate(raw rawEvent) (input.Event, bool) {
	if raw.Type != evKey {
		return input.Event{}, false
	}
	var pressed bool
	switch raw.Value {
	case valuePress, valueRepeat:
		pressed = true
	case valueRelease:
		pressed = false
	default:
		return input.Event{}, false
	}

	if name, ok := buttonCodes[raw.Code]; ok {
		return input.Event{Category: model.Mouse, Button: name, Pressed: pressed}, true
	}
	if raw.Code >= 0x100 {
		// other BTN_* codes (joysticks, touch) are not counted
		return input.Event{}, false
	}
	info := keyCodes[raw.Code]
	return input.Event{
		Category: model.Keyboard,
		Key:      input.Key{Char: info.char, Name: info.name, Code: raw.Code},
		Pressed:  pressed,
	}, true
}
