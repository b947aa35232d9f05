package combo

import "golang.org/x/exp/constraints"

// TripleSumZero reports whether any three elements of s at strictly
// increasing indices sum to zero. Returns on the first qualifying triple.
// Complexity: Θ(1) best, Θ(n³) worst
func TripleSumZero[T constraints.Signed](s []T) bool {
	for i := 0; i < len(s); i++ {
		for j := i + 1; j < len(s); j++ {
			for k := j + 1; k < len(s); k++ {
				if s[i]+s[j]+s[k] == 0 {
					return true
				}
			}
		}
	}

	return false
}

// SubsetSumZero reports whether any non-empty subset of s sums to zero.
// The empty subset does not count, so an all-positive input returns false
// rather than trivially true.
// Complexity: Θ(1) best, Θ(2ⁿ) worst; recursion depth Θ(n)
func SubsetSumZero[T constraints.Signed](s []T) bool {
	return subsetSum(s, 0, 0)
}

// subsetSum explores both branches at index i: include s[i] in the running
// sum or skip it. A zero running sum is only a hit immediately after an
// inclusion, which excludes the empty subset. The logical OR short-circuits
// the remaining branches as soon as one succeeds.
func subsetSum[T constraints.Signed](s []T, i int, sum T) bool {
	if i == len(s) {
		return false
	}
	with := sum + s[i]
	if with == 0 {
		return true
	}

	return subsetSum(s, i+1, with) || subsetSum(s, i+1, sum)
}
