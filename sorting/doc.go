// Package sorting implements ascending comparison sorts over slices of any
// ordered element type.
//
// What:
//
//   - Insertion — in-place, stable insertion sort. The workhorse for short
//     or nearly-sorted inputs.
//   - Merge — recursive merge sort that allocates fresh half-slices at every
//     level and returns a new sorted slice, leaving the input untouched.
//   - MergeBuffered — in-place merge sort sharing one n-sized auxiliary
//     buffer across all recursion levels.
//   - IsSorted — ascending-order check, useful for verifying the
//     precondition of search.Binary before paying for a sort.
//
// Complexity:
//
//   - Insertion:     Θ(n) best (already sorted), Θ(n²) worst (reversed).
//     Space O(1).
//   - Merge:         Θ(n log n) time. Total allocation Θ(n log n) — every
//     recursion level allocates slices proportional to its share of n.
//   - MergeBuffered: Θ(n log n) time, Θ(n) auxiliary space — the single
//     buffer is reused at every level. Recursion depth Θ(log n) rides on
//     the call stack and is part of the space contract.
//
// Both merge variants break ties in favor of the left half, so equal keys
// keep their relative input order (stable).
package sorting
