// Package algokit is a compact, generic collection of the classic teaching
// data structures and algorithms — stacks, searching, sorting, brute-force
// combinatorial search, and two-stack expression evaluation.
//
// What is algokit?
//
//	A small pure-Go library that brings together:
//		• Stack ADT: one interface, two backings (linked nodes / resizable array)
//		• Fail-fast iteration: mutation during traversal becomes an error, not corruption
//		• Searching: linear scan and overflow-safe binary search
//		• Sorting: insertion sort plus two merge sort variants (naive / shared buffer)
//		• Combinatorial search: zero-sum triples (Θ(n³)) and zero-sum subsets (Θ(2ⁿ))
//		• Expression evaluation: fully parenthesized infix arithmetic over two stacks
//
// Why algokit?
//
//   - Contracts first — every operation documents its complexity and its
//     failure conditions as package sentinel errors matched with errors.Is
//   - Generic — element types are type parameters, not interface{} boxes
//   - Honest about cost — the naive merge sort and the brute-force subset
//     search exist alongside their cheaper counterparts so the trade-offs
//     stay visible in code, tests, and benchmarks
//
// Everything is organized under five subpackages:
//
//	stack/   — Stack interface, LinkedStack, ArrayStack, fail-fast Iterator
//	search/  — Linear, Binary, the NotFound sentinel
//	sorting/ — Insertion, Merge, MergeBuffered, IsSorted
//	combo/   — TripleSumZero, SubsetSumZero
//	eval/    — Evaluate, Tokens, ErrMalformedExpression
//
// Quick taste:
//
//	s := stack.NewLinked[int]()
//	s.Push(1); s.Push(2); s.Push(3)
//	v, _ := s.Pop()                             // 3
//	result, _ := eval.Evaluate("( 1 + 2 )")     // 3.0
//	idx := search.Binary([]int{1, 3, 5, 7}, 5)  // 2
//
// See examples/ for runnable walkthroughs of each package.
//
//	go get github.com/algokit/algokit
package algokit
