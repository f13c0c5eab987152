package registry

// nameOrder is the single-letter start used by the name generator: f, g,
// ..., z, then a, ..., e, wrapping back to cover the whole alphabet once
// before lengthening (spec.md §4.4).
var nameOrder = []byte("fghijklmnopqrstuvwxyzabcde")

// generateName returns the first name, in the sequence f, g, h, ..., z, a,
// ..., e, aa, ab, ..., not present in taken.
func generateName(taken map[string]bool) string {
	for length := 1; ; length++ {
		idx := make([]int, length)
		for {
			name := nameAt(idx)
			if !taken[name] {
				return name
			}
			if !advance(idx) {
				break // this length exhausted, move to length+1
			}
		}
	}
}

func nameAt(idx []int) string {
	b := make([]byte, len(idx))
	for i, d := range idx {
		if len(idx) == 1 {
			b[i] = nameOrder[d]
		} else {
			b[i] = 'a' + byte(d)
		}
	}
	return string(b)
}

// advance increments idx as a mixed-radix counter (base len(nameOrder)),
// reporting whether it wrapped past the last combination of this length.
func advance(idx []int) bool {
	for pos := len(idx) - 1; pos >= 0; pos-- {
		idx[pos]++
		if idx[pos] < len(nameOrder) {
			return true
		}
		idx[pos] = 0
	}
	return false
}
