package search

import "golang.org/x/exp/constraints"

// NotFound is returned by Linear and Binary when the target is absent.
const NotFound = -1

// Linear scans seq left to right and returns the first index holding target,
// or NotFound if no element matches.
// Complexity: Θ(1) best, Θ(n) worst
func Linear[T comparable](seq []T, target T) int {
	for i := range seq {
		if seq[i] == target {
			return i
		}
	}

	return NotFound
}

// Binary returns an index of target within sorted, or NotFound if absent.
//
// Precondition (not verified): sorted is in ascending order. When duplicates
// of target exist, any one of their indices may be returned.
// Complexity: Θ(1) best, Θ(log n) worst
func Binary[T constraints.Ordered](sorted []T, target T) int {
	lo, hi := 0, len(sorted)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2 // (lo+hi)/2 can overflow on huge bounds
		switch {
		case sorted[mid] == target:
			return mid
		case sorted[mid] < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	return NotFound
}
