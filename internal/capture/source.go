// Package capture delivers raw key and button edges from input devices.
package capture

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/Zekorei/Keylog/internal/input"
)

// Source streams input edges into out until ctx is done or the device fails.
type Source interface {
	Run(ctx context.Context, out chan<- input.Event) error
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context, out chan<- input.Event) error

// Run implements Source.
func (f SourceFunc) Run(ctx context.Context, out chan<- input.Event) error {
	if f == nil {
		return nil
	}
	return f(ctx, out)
}

// Pump runs every source concurrently and closes out once all of them have
// returned. A failing source is logged and does not stop the others. The
// first source error is returned.
func Pump(ctx context.Context, logger *slog.Logger, out chan<- input.Event, sources ...Source) error {
	if logger == nil {
		logger = slog.Default()
	}
	defer close(out)

	var g errgroup.Group
	for _, src := range sources {
		src := src
		g.Go(func() error {
			if err := src.Run(ctx, out); err != nil {
				logger.Warn("capture source stopped", slog.String("source", sourceName(src)), slog.Any("err", err))
				return fmt.Errorf("capture %s: %w", sourceName(src), err)
			}
			return nil
		})
	}
	return g.Wait()
}

func sourceName(src Source) string {
	if s, ok := src.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", src)
}

// emit pushes ev onto out unless ctx is done first.
func emit(ctx context.Context, out chan<- input.Event, ev input.Event) bool {
	select {
	case out <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}
