package stack

import (
	"fmt"
	"strings"
)

// ArrayStack is a LIFO container backed by a single contiguous buffer.
//
// The buffer doubles when a Push finds it full and halves when occupancy
// after a Pop equals exactly one quarter of capacity, never shrinking below
// a capacity of 1. Each resize copies the live elements into a fresh buffer
// in O(n); over any sequence of n operations the total copy work is O(n), so
// Push and Pop are O(1) amortized. Not safe for concurrent use.
type ArrayStack[T any] struct {
	buf     []T
	top     int    // index of the current top element; -1 when empty
	version uint64 // bumped on every structural mutation; read by iterators
}

// NewArray creates an empty ArrayStack, honoring WithCapacity if given.
// Complexity: O(initial capacity)
func NewArray[T any](opts ...Option) *ArrayStack[T] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &ArrayStack[T]{buf: make([]T, cfg.capacity), top: -1}
}

// Push adds item as the new top, doubling the buffer first if it is full.
// Complexity: O(1) amortized
func (s *ArrayStack[T]) Push(item T) {
	if s.top == len(s.buf)-1 {
		s.resize(2 * len(s.buf))
	}
	s.top++
	s.buf[s.top] = item
	s.version++
}

// Pop removes and returns the current top, halving the buffer when occupancy
// falls to a quarter of capacity. Returns ErrEmptyStack if the stack is empty.
// Complexity: O(1) amortized
func (s *ArrayStack[T]) Pop() (T, error) {
	var zero T
	if s.top < 0 {
		return zero, ErrEmptyStack
	}
	item := s.buf[s.top]
	s.buf[s.top] = zero // release the slot so popped elements are collectable
	s.top--
	s.version++

	if n := len(s.buf); n > minCapacity && s.top+1 == n/4 {
		s.resize(n / 2)
	}

	return item, nil
}

// Peek returns the current top without removing it.
// Returns ErrEmptyStack if the stack is empty.
// Complexity: O(1)
func (s *ArrayStack[T]) Peek() (T, error) {
	var zero T
	if s.top < 0 {
		return zero, ErrEmptyStack
	}

	return s.buf[s.top], nil
}

// IsEmpty reports whether the stack holds no elements.
func (s *ArrayStack[T]) IsEmpty() bool { return s.top < 0 }

// Len returns the current element count.
func (s *ArrayStack[T]) Len() int { return s.top + 1 }

// Cap returns the current buffer capacity. Exposed for resize-policy tests
// and capacity-planning callers; not part of the Stack interface.
func (s *ArrayStack[T]) Cap() int { return len(s.buf) }

// Clear removes all elements and shrinks the buffer back to the floor
// capacity. Counts as a structural mutation, so any live iterator over s is
// invalidated.
// Complexity: O(1) plus the floor-sized allocation
func (s *ArrayStack[T]) Clear() {
	s.buf = make([]T, minCapacity)
	s.top = -1
	s.version++
}

// Clone returns a new ArrayStack holding the same elements in the same order.
// Element values are copied shallowly; the clone gets its own buffer sized to
// the source's capacity.
// Complexity: O(n)
func (s *ArrayStack[T]) Clone() *ArrayStack[T] {
	out := &ArrayStack[T]{buf: make([]T, len(s.buf)), top: s.top}
	copy(out.buf, s.buf[:s.top+1])

	return out
}

// Iterator returns a fail-fast iterator positioned at the current top.
// Complexity: O(1)
func (s *ArrayStack[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{
		seen: s.version,
		live: &s.version,
		cur:  &arrayCursor[T]{buf: s.buf, idx: s.top},
	}
}

// String renders the stack top-to-bottom, e.g. "[3 2 1]".
func (s *ArrayStack[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := s.top; i >= 0; i-- {
		if i != s.top {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", s.buf[i])
	}
	b.WriteByte(']')

	return b.String()
}

// resize copies the live elements into a fresh buffer of the given capacity.
func (s *ArrayStack[T]) resize(capacity int) {
	if capacity < minCapacity {
		capacity = minCapacity
	}
	next := make([]T, capacity)
	copy(next, s.buf[:s.top+1])
	s.buf = next
}
