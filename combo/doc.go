// Package combo implements brute-force combinatorial searches over integer
// slices: zero-sum triples and zero-sum subsets.
//
// What:
//
//   - TripleSumZero — scans all strictly increasing index triples i<j<k and
//     reports whether any three elements sum to zero.
//   - SubsetSumZero — recursively enumerates include/exclude choices per
//     index and reports whether any non-empty subset sums to zero.
//
// Complexity:
//
//   - TripleSumZero: Θ(1) best (first triple hits), Θ(n³) worst — all
//     C(n,3) combinations examined.
//   - SubsetSumZero: Θ(1) best, Θ(2ⁿ) worst — full enumeration when no
//     subset qualifies. Recursion depth Θ(n) rides on the call stack and is
//     part of the space contract.
//
// Both are deliberate brute force: subset-sum is NP-complete and no
// polynomial behavior is claimed. Element sums are computed in the input's
// own signed integer type, so inputs whose partial sums overflow that type
// give arbitrary answers.
package combo
