package capture

import (
	"fmt"
	"path/filepath"
	"runtime"
	"sort"
)

// Devices lists the evdev nodes capture reads from.
type Devices struct {
	Keyboards []string
	Mice      []string
}

// All returns keyboards followed by mice, each node once.
func (d Devices) All() []string {
	out := make([]string, 0, len(d.Keyboards)+len(d.Mice))
	seen := map[string]struct{}{}
	for _, p := range append(append([]string{}, d.Keyboards...), d.Mice...) {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// Discover finds keyboards and mice under /dev/input.
func Discover() (Devices, error) {
	if runtime.GOOS != "linux" {
		return Devices{}, ErrUnsupported
	}
	return DiscoverIn("/dev/input")
}

// DiscoverIn looks for by-path and by-id symlinks below root and resolves
// them to their event nodes.
func DiscoverIn(root string) (Devices, error) {
	kbds, err := resolveGlobs(root, "*-event-kbd")
	if err != nil {
		return Devices{}, err
	}
	mice, err := resolveGlobs(root, "*-event-mouse")
	if err != nil {
		return Devices{}, err
	}
	if len(kbds) == 0 && len(mice) == 0 {
		return Devices{}, ErrNoDevices
	}
	return Devices{Keyboards: kbds, Mice: mice}, nil
}

func resolveGlobs(root, pattern string) ([]string, error) {
	seen := map[string]struct{}{}
	for _, sub := range []string{"by-path", "by-id"} {
		matches, err := filepath.Glob(filepath.Join(root, sub, pattern))
		if err != nil {
			return nil, fmt.Errorf("failed to scan devices: %w", err)
		}
		for _, m := range matches {
			resolved, err := filepath.EvalSymlinks(m)
			if err != nil {
				// dangling link from an unplugged device
				continue
			}
			seen[resolved] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Strings(out)
	return out, nil
}

// Sources returns a capture source per device path.
func Sources(paths []string) []Source {
	out := make([]Source, 0, len(paths))
	for _, p := range paths {
		out = append(out, NewDevice(p))
	}
	return out
}
