package game

// Weighted pairs a payload with its relative draw weight.
type Weighted[T any] struct {
	Weight float64
	Value  T
}

// PickWeightedIndex draws one index from weights with probability
// proportional to weight. Entries with a non-positive weight are never
// returned. It returns -1 when no entry has a positive weight.
func PickWeightedIndex(r Roller, weights []float64) int {
	total := 0.0
	last := -1
	for i, w := range weights {
		if w > 0 {
			total += w
			last = i
		}
	}
	if last < 0 {
		return -1
	}

	roll := r.Float64() * total
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		roll -= w
		if roll <= 0 {
			return i
		}
	}
	// Float rounding can leave a sliver of roll; the last live entry owns it.
	return last
}

// PickWeighted returns one payload from entries. An empty or all-zero table
// falls back to the first entry (or the zero value when entries is empty).
func PickWeighted[T any](r Roller, entries []Weighted[T]) T {
	if len(entries) == 0 {
		var zero T
		return zero
	}
	weights := make([]float64, len(entries))
	for i, e := range entries {
		weights[i] = e.Weight
	}
	idx := PickWeightedIndex(r, weights)
	if idx < 0 {
		return entries[0].Value
	}
	return entries[idx].Value
}
