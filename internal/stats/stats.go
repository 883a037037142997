// Package stats formats count tables and backup history for the CLI.
package stats

import (
	"math"
	"sort"
	"strings"
)

const sparkChars = " .:-=+*#%@"

// LabelCount pairs a label with its count.
type LabelCount struct {
	Label string
	Count int
}

// Ranked returns counts ordered by count descending, ties by label.
func Ranked(counts map[string]int) []LabelCount {
	items := make([]LabelCount, 0, len(counts))
	for label, n := range counts {
		items = append(items, LabelCount{Label: label, Count: n})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count == items[j].Count {
			return items[i].Label < items[j].Label
		}
		return items[i].Count > items[j].Count
	})
	return items
}

// Share returns n as a percentage of total.
func Share(n, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}
