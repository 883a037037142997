package dashboard

import "time"

// DefaultFlashDuration is how long a changed value stays highlighted.
const DefaultFlashDuration = 500 * time.Millisecond

// FlashTracker remembers the last observed value per key and when it last
// changed. Unseen keys start at zero, so the first nonzero value flashes.
type FlashTracker struct {
	duration   time.Duration
	lastValue  map[string]int
	lastChange map[string]time.Time
}

// NewFlashTracker returns a tracker highlighting changes for duration. A zero
// duration disables highlighting; a negative one uses DefaultFlashDuration.
func NewFlashTracker(duration time.Duration) *FlashTracker {
	if duration < 0 {
		duration = DefaultFlashDuration
	}
	return &FlashTracker{
		duration:   duration,
		lastValue:  map[string]int{},
		lastChange: map[string]time.Time{},
	}
}

// Observe records value for key at now and reports whether it should be
// highlighted.
func (f *FlashTracker) Observe(key string, value int, now time.Time) bool {
	if value != f.lastValue[key] {
		f.lastValue[key] = value
		f.lastChange[key] = now
	}
	changed, ok := f.lastChange[key]
	if !ok {
		return false
	}
	return now.Sub(changed) < f.duration
}
