package indent

import (
	"maps"
	"slices"
)

// usage tallies how often a candidate width was seen. weight always mirrors
// used; both take part in the tie-break.
type usage struct {
	used   int
	weight int
}

func (u *usage) bump() {
	u.used++
	u.weight++
}

// mostUsed returns the width with the highest used count, then the highest
// weight. Widths are visited in ascending order and only a strictly better
// entry replaces the current winner, so an exact tie goes to the smallest
// width. An empty tally yields 0.
func mostUsed(usages map[int]*usage) int {
	result, maxUsed, maxWeight := 0, 0, 0
	for _, width := range slices.Sorted(maps.Keys(usages)) {
		u := usages[width]
		if u.used > maxUsed || (u.used == maxUsed && u.weight > maxWeight) {
			maxUsed = u.used
			maxWeight = u.weight
			result = width
		}
	}
	return result
}
