// Package search implements sequence lookup: linear scan and binary search.
//
// What:
//
//   - Linear — left-to-right scan over any comparable element type; returns
//     the first matching index.
//   - Binary — halving search over an ascending-sorted slice of any ordered
//     element type.
//   - NotFound — the index sentinel (-1) both functions return on a miss.
//
// Complexity:
//
//   - Linear: Θ(1) best (match at index 0), Θ(n) worst (miss or last index).
//   - Binary: Θ(1) best (match at the first midpoint), Θ(log n) worst.
//
// Binary requires its input to be sorted ascending and does not verify it;
// an unsorted input yields an arbitrary index or NotFound. Neither function
// mutates its input.
package search
