package stats

// Top returns the n most frequent labels. A non-positive n returns all.
func Top(counts map[string]int, n int) []LabelCount {
	items := Ranked(counts)
	if n <= 0 || n > len(items) {
		return items
	}
	return items[:n]
}
