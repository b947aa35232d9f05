package combo_test

import (
	"testing"

	"github.com/algokit/algokit/combo"
)

// missInput builds an all-positive slice so both searches must exhaust
// their full combination space.
func missInput(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i + 1
	}

	return s
}

// BenchmarkTripleSumZero_Miss200 measures the Θ(n³) worst case.
func BenchmarkTripleSumZero_Miss200(b *testing.B) {
	s := missInput(200)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if combo.TripleSumZero(s) {
			b.Fatal("unexpected zero triple")
		}
	}
}

// BenchmarkSubsetSumZero_Miss20 measures the Θ(2ⁿ) worst case; n is kept
// small because the space doubles per element.
func BenchmarkSubsetSumZero_Miss20(b *testing.B) {
	s := missInput(20)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if combo.SubsetSumZero(s) {
			b.Fatal("unexpected zero subset")
		}
	}
}
