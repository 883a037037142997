package input

import (
	"sync"

	"github.com/Zekorei/Keylog/internal/model"
)

// Event is a single press or release edge from a capture backend.
type Event struct {
	Category model.Category
	Key      Key
	Button   string
	Pressed  bool
}

// Incrementer receives counted labels.
type Incrementer interface {
	Increment(cat model.Category, label string)
}

// PressTracker remembers which keys are currently held.
type PressTracker struct {
	mu   sync.Mutex
	held map[Key]struct{}
}

// NewPressTracker returns an empty tracker.
func NewPressTracker() *PressTracker {
	return &PressTracker{held: map[Key]struct{}{}}
}

// Press marks k as held and reports whether it was not held before.
func (t *PressTracker) Press(k Key) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.held[k]; ok {
		return false
	}
	t.held[k] = struct{}{}
	return true
}

// Release clears the held mark for k.
func (t *PressTracker) Release(k Key) {
	t.mu.Lock()
	delete(t.held, k)
	t.mu.Unlock()
}

func (t *PressTracker) heldCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.held)
}

// Recorder applies normalization and de-duplication before counting.
type Recorder struct {
	counts  Incrementer
	tracker *PressTracker
}

// NewRecorder returns a Recorder that counts into counts.
func NewRecorder(counts Incrementer) *Recorder {
	return &Recorder{counts: counts, tracker: NewPressTracker()}
}

// Handle processes one event and reports whether it was counted.
func (r *Recorder) Handle(ev Event) bool {
	switch ev.Category {
	case model.Keyboard:
		return r.handleKey(ev)
	case model.Mouse:
		return r.handleButton(ev)
	default:
		return false
	}
}

func (r *Recorder) handleKey(ev Event) bool {
	if !ev.Pressed {
		r.tracker.Release(ev.Key)
		return false
	}
	if !r.tracker.Press(ev.Key) {
		return false
	}
	label := NormalizeKey(ev.Key)
	if !IsValid(label) {
		return false
	}
	r.counts.Increment(model.Keyboard, label)
	return true
}

func (r *Recorder) handleButton(ev Event) bool {
	if !ev.Pressed {
		return false
	}
	label, ok := NormalizeButton(ev.Button)
	if !ok {
		return false
	}
	r.counts.Increment(model.Mouse, label)
	return true
}

// Run consumes events until the channel is closed. The producer closes events
// once capture stops, so every edge already delivered is counted before Run
// returns.
func (r *Recorder) Run(events <-chan Event) {
	for ev := range events {
		r.Handle(ev)
	}
}
