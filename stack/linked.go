package stack

import (
	"fmt"
	"strings"
)

// node is one link in the chain. Each node exclusively owns its successor;
// the stack exclusively owns the head.
type node[T any] struct {
	value T
	next  *node[T]
}

// LinkedStack is a LIFO container backed by a singly linked node chain.
//
// Push and Pop run in O(1) time with exactly one node allocated per element.
// The zero value is an empty stack ready to use. Not safe for concurrent use.
type LinkedStack[T any] struct {
	head    *node[T]
	length  int
	version uint64 // bumped on every structural mutation; read by iterators
}

// NewLinked creates an empty LinkedStack.
// Complexity: O(1)
func NewLinked[T any]() *LinkedStack[T] {
	return &LinkedStack[T]{}
}

// Push adds item as the new top.
// Complexity: O(1)
func (s *LinkedStack[T]) Push(item T) {
	s.head = &node[T]{value: item, next: s.head}
	s.length++
	s.version++
}

// Pop removes and returns the current top.
// Returns ErrEmptyStack if the stack is empty.
// Complexity: O(1)
func (s *LinkedStack[T]) Pop() (T, error) {
	var zero T
	if s.head == nil {
		return zero, ErrEmptyStack
	}
	top := s.head
	s.head = top.next
	top.next = nil // detach so the popped node pins nothing
	s.length--
	s.version++

	return top.value, nil
}

// Peek returns the current top without removing it.
// Returns ErrEmptyStack if the stack is empty.
// Complexity: O(1)
func (s *LinkedStack[T]) Peek() (T, error) {
	var zero T
	if s.head == nil {
		return zero, ErrEmptyStack
	}

	return s.head.value, nil
}

// IsEmpty reports whether the stack holds no elements.
func (s *LinkedStack[T]) IsEmpty() bool { return s.head == nil }

// Len returns the current element count.
func (s *LinkedStack[T]) Len() int { return s.length }

// Clear removes all elements. Counts as a structural mutation, so any live
// iterator over s is invalidated.
// Complexity: O(1) (the chain is released to the garbage collector as a whole)
func (s *LinkedStack[T]) Clear() {
	s.head = nil
	s.length = 0
	s.version++
}

// Clone returns a new LinkedStack holding the same elements in the same
// order. Element values are copied shallowly.
// Complexity: O(n)
func (s *LinkedStack[T]) Clone() *LinkedStack[T] {
	out := NewLinked[T]()
	out.length = s.length

	var tail *node[T]
	for cur := s.head; cur != nil; cur = cur.next {
		n := &node[T]{value: cur.value}
		if tail == nil {
			out.head = n
		} else {
			tail.next = n
		}
		tail = n
	}

	return out
}

// Iterator returns a fail-fast iterator positioned at the current top.
// Complexity: O(1)
func (s *LinkedStack[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{
		seen: s.version,
		live: &s.version,
		cur:  &linkedCursor[T]{pos: s.head},
	}
}

// String renders the stack top-to-bottom, e.g. "[3 2 1]".
func (s *LinkedStack[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for cur := s.head; cur != nil; cur = cur.next {
		if cur != s.head {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", cur.value)
	}
	b.WriteByte(']')

	return b.String()
}
