package stack

// cursor abstracts the traversal position of one backing. Implementations
// never validate against mutation; the Iterator performs the version check
// before consulting its cursor.
type cursor[T any] interface {
	// more reports whether an element remains at the current position.
	more() bool
	// take returns the current element and advances the position.
	// Only valid when more() is true.
	take() T
}

// linkedCursor walks a LinkedStack's node chain from the captured head.
type linkedCursor[T any] struct {
	pos *node[T]
}

func (c *linkedCursor[T]) more() bool { return c.pos != nil }

func (c *linkedCursor[T]) take() T {
	v := c.pos.value
	c.pos = c.pos.next

	return v
}

// arrayCursor walks an ArrayStack's buffer from the captured top index down.
// It references the buffer captured at creation; a resize swaps the stack's
// buffer out from under it, but the version check fires first.
type arrayCursor[T any] struct {
	buf []T
	idx int
}

func (c *arrayCursor[T]) more() bool { return c.idx >= 0 }

func (c *arrayCursor[T]) take() T {
	v := c.buf[c.idx]
	c.idx--

	return v
}

// Iterator traverses a stack from top to bottom without copying it.
//
// At creation it captures the stack's current position and version counter.
// Every HasNext/Next call first compares the captured counter against the
// live one; any structural mutation (Push, Pop, Clear) since creation makes
// both calls return ErrConcurrentModification. Creation and each step are
// O(1) — interference is detected, never masked by a defensive copy.
type Iterator[T any] struct {
	seen uint64  // version captured at creation
	live *uint64 // the owning stack's version counter
	cur  cursor[T]
}

// HasNext reports whether another element remains.
// Returns ErrConcurrentModification if the stack changed since creation.
func (it *Iterator[T]) HasNext() (bool, error) {
	if *it.live != it.seen {
		return false, ErrConcurrentModification
	}

	return it.cur.more(), nil
}

// Next returns the current element and advances toward the bottom.
// Returns ErrConcurrentModification if the stack changed since creation, or
// ErrIteratorExhausted past the last element.
func (it *Iterator[T]) Next() (T, error) {
	var zero T
	if *it.live != it.seen {
		return zero, ErrConcurrentModification
	}
	if !it.cur.more() {
		return zero, ErrIteratorExhausted
	}

	return it.cur.take(), nil
}
