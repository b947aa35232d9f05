package sorting

import "golang.org/x/exp/constraints"

// Merge returns a new ascending-sorted slice holding the elements of s,
// leaving s untouched.
//
// This is the naive recursive variant: each level splits its input in two,
// sorts the halves recursively, and merges them into a freshly allocated
// result. Summed over all log n levels the allocations total Θ(n log n);
// MergeBuffered trades this for a single shared buffer.
// Complexity: Θ(n log n) time, Θ(n log n) total allocation
func Merge[T constraints.Ordered](s []T) []T {
	if len(s) <= 1 {
		out := make([]T, len(s))
		copy(out, s)

		return out
	}

	mid := len(s) / 2
	left := Merge(s[:mid])
	right := Merge(s[mid:])

	return mergeHalves(left, right)
}

// mergeHalves merges two sorted slices into a new slice, preferring the
// left element on ties so equal keys keep their relative order.
func mergeHalves[T constraints.Ordered](left, right []T) []T {
	out := make([]T, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			out = append(out, left[i])
			i++
		} else {
			out = append(out, right[j])
			j++
		}
	}
	out = append(out, left[i:]...)
	out = append(out, right[j:]...)

	return out
}

// MergeBuffered sorts s ascending, in place, using one auxiliary buffer of
// len(s) shared across every recursion level.
// Complexity: Θ(n log n) time, Θ(n) auxiliary space, Θ(log n) recursion depth
func MergeBuffered[T constraints.Ordered](s []T) {
	if len(s) <= 1 {
		return
	}
	temp := make([]T, len(s))
	sortRange(s, temp, 0, len(s)-1)
}

// sortRange sorts s[lo..hi] inclusive, merging through temp.
func sortRange[T constraints.Ordered](s, temp []T, lo, hi int) {
	if lo >= hi {
		return
	}
	mid := lo + (hi-lo)/2
	sortRange(s, temp, lo, mid)
	sortRange(s, temp, mid+1, hi)
	mergeRange(s, temp, lo, mid, hi)
}

// mergeRange merges the sorted runs s[lo..mid] and s[mid+1..hi] into temp,
// then copies the result back. Left element wins ties.
func mergeRange[T constraints.Ordered](s, temp []T, lo, mid, hi int) {
	i, j, k := lo, mid+1, lo
	for i <= mid && j <= hi {
		if s[i] <= s[j] {
			temp[k] = s[i]
			i++
		} else {
			temp[k] = s[j]
			j++
		}
		k++
	}
	for i <= mid {
		temp[k] = s[i]
		i++
		k++
	}
	for j <= hi {
		temp[k] = s[j]
		j++
		k++
	}
	copy(s[lo:hi+1], temp[lo:hi+1])
}
