// Package stack provides a generic LIFO container with two interchangeable
// backings and fail-fast iteration.
//
// What:
//
//   - Stack[T] — the shared capability interface: Push, Pop, Peek, IsEmpty, Len.
//   - LinkedStack[T] — singly linked node chain; O(1) Push/Pop, one node
//     allocation per element.
//   - ArrayStack[T] — contiguous buffer with a top index; capacity doubles when
//     a Push finds the buffer full and halves when occupancy after a Pop drops
//     to exactly one quarter of capacity (never below a floor of 1).
//   - Iterator[T] — top-to-bottom traversal over either backing; detects any
//     structural mutation made after the iterator was created and reports it
//     instead of silently walking a corrupted view.
//
// Why:
//
//   - Expression evaluation, undo histories, DFS worklists — anything that
//     consumes elements in reverse arrival order.
//   - The two backings trade a pointer dereference per step (linked) against
//     occasional O(n) resize copies that amortize to O(1) per operation (array).
//
// Complexity:
//
//   - Push / Pop / Peek: O(1) amortized (array backing pays an O(n) copy on
//     resize; over any sequence of n operations total copy work is O(n)).
//   - Iterator creation and each HasNext/Next step: O(1). No defensive copy is
//     taken; interference is detected, not masked.
//
// Errors:
//
//   - ErrEmptyStack:             Pop or Peek on an empty stack.
//   - ErrConcurrentModification: iterator use after a structural mutation.
//   - ErrIteratorExhausted:      Next past the last element.
//
// Stacks are not safe for concurrent use; the version counter exists to turn
// iterate-while-mutating bugs within a single goroutine into immediate,
// deterministic errors, not to provide thread safety.
package stack
