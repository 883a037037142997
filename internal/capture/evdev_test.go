package capture

import (
	"bytes"
	"context"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zekorei/Keylog/internal/input"
	"github.com/Zekorei/Keylog/internal/model"
)

func encodeEvent(typ, code uint16, value int32) []byte {
	b := make([]byte, eventSize)
	binary.NativeEndian.PutUint64(b[0:8], 1700000000)
	binary.NativeEndian.PutUint64(b[8:16], 42)
	binary.NativeEndian.PutUint16(b[16:18], typ)
	binary.NativeEndian.PutUint16(b[18:20], code)
	binary.NativeEndian.PutUint32(b[20:24], uint32(value))
	return b
}

func TestTranslateKeys(t *testing.T) {
	ev, ok := translate(rawEvent{Type: evKey, Code: 30, Value: valuePress})
	require.True(t, ok)
	assert.Equal(t, model.Keyboard, ev.Category)
	assert.True(t, ev.Pressed)
	assert.Equal(t, "a", input.NormalizeKey(ev.Key))

	ev, ok = translate(rawEvent{Type: evKey, Code: 29, Value: valueRelease})
	require.True(t, ok)
	assert.False(t, ev.Pressed)
	assert.Equal(t, "ctrl_l", input.NormalizeKey(ev.Key))

	ev, ok = translate(rawEvent{Type: evKey, Code: 57, Value: valueRepeat})
	require.True(t, ok)
	assert.True(t, ev.Pressed, "repeat is delivered as a press")
	assert.Equal(t, "space", input.NormalizeKey(ev.Key))
}

func TestTranslateButtons(t *testing.T) {
	cases := map[uint16]string{
		0x110: "left",
		0x111: "right",
		0x112: "middle",
		0x113: "x1",
		0x114: "x2",
	}
	for code, want := range cases {
		ev, ok := translate(rawEvent{Type: evKey, Code: code, Value: valuePress})
		require.True(t, ok, "code %#x", code)
		assert.Equal(t, model.Mouse, ev.Category)
		assert.Equal(t, want, ev.Button)
	}
}

func TestTranslateSkipsOtherEvents(t *testing.T) {
	// EV_SYN and EV_REL
	_, ok := translate(rawEvent{Type: 0x00, Code: 0, Value: 0})
	assert.False(t, ok)
	_, ok = translate(rawEvent{Type: 0x02, Code: 0, Value: 5})
	assert.False(t, ok)
	// BTN_TOUCH
	_, ok = translate(rawEvent{Type: evKey, Code: 0x14a, Value: valuePress})
	assert.False(t, ok)
}

func TestTranslateUnknownKeyIsDropped(t *testing.T) {
	ev, ok := translate(rawEvent{Type: evKey, Code: 240, Value: valuePress})
	require.True(t, ok)
	assert.False(t, input.IsValid(input.NormalizeKey(ev.Key)))
}

func TestReadEventsEmitsEdges(t *testing.T) {
	var stream bytes.Buffer
	stream.Write(encodeEvent(evKey, 30, valuePress))
	stream.Write(encodeEvent(0x00, 0, 0))
	stream.Write(encodeEvent(evKey, 30, valueRelease))
	stream.Write(encodeEvent(evKey, 0x110, valuePress))

	out := make(chan input.Event, 8)
	require.NoError(t, readEvents(context.Background(), &stream, out))
	close(out)

	var got []input.Event
	for ev := range out {
		got = append(got, ev)
	}
	require.Len(t, got, 3)
	assert.True(t, got[0].Pressed)
	assert.False(t, got[1].Pressed)
	assert.Equal(t, "left", got[2].Button)
}

func TestReadEventsTruncatedRecord(t *testing.T) {
	data := encodeEvent(evKey, 30, valuePress)
	out := make(chan input.Event, 1)
	err := readEvents(context.Background(), bytes.NewReader(data[:10]), out)
	assert.Error(t, err)
}
