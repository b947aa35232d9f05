// This file declares the Stack interface, sentinel errors, and the
// construction options shared by both backings.

package stack

import "errors"

// Sentinel errors for stack operations.
var (
	// ErrEmptyStack indicates Pop or Peek was called on an empty stack.
	ErrEmptyStack = errors.New("stack: stack is empty")

	// ErrConcurrentModification indicates the stack was structurally mutated
	// (Push, Pop, Clear) after the iterator was created.
	ErrConcurrentModification = errors.New("stack: stack modified during iteration")

	// ErrIteratorExhausted indicates Next was called past the last element.
	ErrIteratorExhausted = errors.New("stack: iterator exhausted")
)

// Stack is the LIFO capability shared by both backings.
//
// Push never fails. Pop and Peek return ErrEmptyStack on an empty stack.
// Len always equals the number of pushes minus the number of pops since
// creation (or the last Clear).
type Stack[T any] interface {
	// Push adds item as the new top.
	Push(item T)

	// Pop removes and returns the current top.
	Pop() (T, error)

	// Peek returns the current top without removing it.
	Peek() (T, error)

	// IsEmpty reports whether the stack holds no elements.
	IsEmpty() bool

	// Len returns the current element count.
	Len() int
}

// Compile-time checks that both backings satisfy Stack.
var (
	_ Stack[int] = (*LinkedStack[int])(nil)
	_ Stack[int] = (*ArrayStack[int])(nil)
)

// minCapacity is the floor below which an ArrayStack buffer never shrinks.
const minCapacity = 1

// Option configures an ArrayStack before first use.
type Option func(*config)

type config struct {
	capacity int
}

func defaultConfig() config {
	return config{capacity: minCapacity}
}

// WithCapacity sets the initial buffer capacity of an ArrayStack.
// Values below 1 are clamped to 1.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n < minCapacity {
			n = minCapacity
		}
		c.capacity = n
	}
}
