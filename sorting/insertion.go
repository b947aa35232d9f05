package sorting

import "golang.org/x/exp/constraints"

// Insertion sorts s ascending, in place, stably.
//
// For each index i it holds s[i] as the key, shifts every preceding element
// greater than the key one slot right, and drops the key into the gap.
// Complexity: Θ(n) best (sorted input), Θ(n²) worst (reversed input)
func Insertion[T constraints.Ordered](s []T) {
	for i := 1; i < len(s); i++ {
		key := s[i]
		j := i - 1
		for j >= 0 && s[j] > key {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = key
	}
}

// IsSorted reports whether s is in ascending order.
// Complexity: Θ(n)
func IsSorted[T constraints.Ordered](s []T) bool {
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return false
		}
	}

	return true
}
