package model

import "sort"

var buttonRank = map[string]int{"left": 0, "right": 1, "middle": 2, "x1": 3, "x2": 4}

// ButtonOrder returns button labels as left, right, middle, x1, x2, then the
// rest alphabetically.
func ButtonOrder(counts map[string]int) []string {
	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		ri, iok := buttonRank[labels[i]]
		rj, jok := buttonRank[labels[j]]
		switch {
		case iok && jok:
			return ri < rj
		case iok != jok:
			return iok
		default:
			return labels[i] < labels[j]
		}
	})
	return labels
}
