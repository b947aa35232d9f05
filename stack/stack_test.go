package stack_test

import (
	"testing"

	"github.com/algokit/algokit/stack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backings returns one fresh instance of each backing so the contract tests
// run against both under the same assertions.
func backings() map[string]stack.Stack[int] {
	return map[string]stack.Stack[int]{
		"linked": stack.NewLinked[int](),
		"array":  stack.NewArray[int](),
	}
}

// TestStack_LIFOLaw verifies that n pushes with no interleaved pops
// pop back in exact reverse order, for both backings.
func TestStack_LIFOLaw(t *testing.T) {
	for name, s := range backings() {
		t.Run(name, func(t *testing.T) {
			for i := 1; i <= 5; i++ {
				s.Push(i * 10)
			}
			for i := 5; i >= 1; i-- {
				got, err := s.Pop()
				require.NoError(t, err, "pop of non-empty stack must succeed")
				assert.Equal(t, i*10, got, "elements must pop in reverse push order")
			}
			assert.True(t, s.IsEmpty(), "stack must be empty after popping everything")
		})
	}
}

// TestStack_LenInvariant checks Len == #pushes - #pops throughout a mixed
// sequence of operations.
func TestStack_LenInvariant(t *testing.T) {
	for name, s := range backings() {
		t.Run(name, func(t *testing.T) {
			assert.Zero(t, s.Len(), "new stack must have length 0")

			pushes, pops := 0, 0
			for i := 0; i < 20; i++ {
				s.Push(i)
				pushes++
				if i%3 == 0 {
					_, err := s.Pop()
					require.NoError(t, err)
					pops++
				}
				assert.Equal(t, pushes-pops, s.Len(), "Len must equal pushes minus pops")
			}
		})
	}
}

// TestStack_EmptyErrors verifies Pop and Peek surface ErrEmptyStack on an
// empty stack and that the failed calls leave the stack usable.
func TestStack_EmptyErrors(t *testing.T) {
	for name, s := range backings() {
		t.Run(name, func(t *testing.T) {
			_, err := s.Pop()
			assert.ErrorIs(t, err, stack.ErrEmptyStack, "Pop on empty must error")

			_, err = s.Peek()
			assert.ErrorIs(t, err, stack.ErrEmptyStack, "Peek on empty must error")

			s.Push(7)
			got, err := s.Peek()
			require.NoError(t, err)
			assert.Equal(t, 7, got, "stack must stay usable after empty-stack errors")
			assert.Equal(t, 1, s.Len())
		})
	}
}

// TestStack_PeekDoesNotMutate confirms Peek leaves the top in place.
func TestStack_PeekDoesNotMutate(t *testing.T) {
	for name, s := range backings() {
		t.Run(name, func(t *testing.T) {
			s.Push(1)
			s.Push(2)

			for i := 0; i < 3; i++ {
				got, err := s.Peek()
				require.NoError(t, err)
				assert.Equal(t, 2, got, "repeated Peek must keep returning the same top")
			}
			assert.Equal(t, 2, s.Len(), "Peek must not change the length")
		})
	}
}

// TestArrayStack_ResizeDrill pushes 2^k+1 elements through the doubling
// policy and pops them all back, asserting LIFO order survives every grow
// and shrink along the way.
func TestArrayStack_ResizeDrill(t *testing.T) {
	const n = 1<<10 + 1 // 1025: forces doublings past 1024 and shrinks on the way down

	s := stack.NewArray[int]()
	for i := 0; i < n; i++ {
		s.Push(i)
	}
	require.Equal(t, n, s.Len())

	for i := n - 1; i >= 0; i-- {
		got, err := s.Pop()
		require.NoError(t, err, "pop %d must succeed regardless of resizing", i)
		require.Equal(t, i, got, "LIFO order must survive resizes")
	}
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 1, s.Cap(), "buffer must shrink back to the floor capacity")
}

// TestArrayStack_ResizePolicy pins the doubling and quarter-occupancy
// halving thresholds via Cap.
func TestArrayStack_ResizePolicy(t *testing.T) {
	s := stack.NewArray[int](stack.WithCapacity(4))
	require.Equal(t, 4, s.Cap())

	for i := 0; i < 4; i++ {
		s.Push(i)
	}
	assert.Equal(t, 4, s.Cap(), "pushing up to capacity must not grow")

	s.Push(4)
	assert.Equal(t, 8, s.Cap(), "push into a full buffer must double it")

	// 5 live elements in capacity 8; popping down to 2 hits the 8/4 threshold.
	for i := 0; i < 3; i++ {
		_, err := s.Pop()
		require.NoError(t, err)
	}
	assert.Equal(t, 4, s.Cap(), "occupancy of capacity/4 after a pop must halve the buffer")
}

// TestArrayStack_WithCapacity covers the clamping of degenerate capacities.
func TestArrayStack_WithCapacity(t *testing.T) {
	assert.Equal(t, 16, stack.NewArray[int](stack.WithCapacity(16)).Cap())
	assert.Equal(t, 1, stack.NewArray[int](stack.WithCapacity(0)).Cap(), "capacity 0 clamps to the floor")
	assert.Equal(t, 1, stack.NewArray[int](stack.WithCapacity(-3)).Cap(), "negative capacity clamps to the floor")
}

// TestStack_Clear verifies Clear empties both backings and they accept new
// pushes afterwards.
func TestStack_Clear(t *testing.T) {
	linked := stack.NewLinked[string]()
	array := stack.NewArray[string]()
	for _, v := range []string{"a", "b"} {
		linked.Push(v)
		array.Push(v)
	}

	linked.Clear()
	array.Clear()
	assert.True(t, linked.IsEmpty(), "Clear must empty the linked stack")
	assert.True(t, array.IsEmpty(), "Clear must empty the array stack")

	linked.Push("c")
	top, err := linked.Peek()
	require.NoError(t, err)
	assert.Equal(t, "c", top)
}

// TestLinkedStack_Clone checks the clone is an independent copy.
func TestLinkedStack_Clone(t *testing.T) {
	s := stack.NewLinked[int]()
	s.Push(1)
	s.Push(2)
	s.Push(3)

	c := s.Clone()
	assert.Equal(t, s.Len(), c.Len())
	assert.Equal(t, s.String(), c.String(), "clone must hold the same elements in the same order")

	_, err := c.Pop()
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len(), "mutating the clone must not touch the source")
}

// TestArrayStack_Clone checks the clone is an independent copy.
func TestArrayStack_Clone(t *testing.T) {
	s := stack.NewArray[int](stack.WithCapacity(2))
	s.Push(1)
	s.Push(2)
	s.Push(3)

	c := s.Clone()
	assert.Equal(t, s.Len(), c.Len())

	c.Push(99)
	top, err := s.Peek()
	require.NoError(t, err)
	assert.Equal(t, 3, top, "mutating the clone must not touch the source")
}

// TestStack_String pins the top-to-bottom rendering.
func TestStack_String(t *testing.T) {
	linked := stack.NewLinked[int]()
	array := stack.NewArray[int]()
	for _, v := range []int{1, 2, 3} {
		linked.Push(v)
		array.Push(v)
	}

	assert.Equal(t, "[3 2 1]", linked.String())
	assert.Equal(t, "[3 2 1]", array.String())
	assert.Equal(t, "[]", stack.NewLinked[int]().String())
}
