package gocalc

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrStackOverflow is returned when a value is pushed to a Stack that is
	// already full.
	ErrStackOverflow = errors.New("stack overflow")

	// ErrStackUnderflow is returned when a value is popped from a Stack that
	// is already empty.
	ErrStackUnderflow = errors.New("stack underflow")
)

// A Stack is a LIFO queue of ints with a fixed capacity. It never allocates
// after construction.
type Stack struct {
	free   int
	values []int
}

// NewStack returns an empty Stack that holds at most cap values.
func NewStack(cap int) Stack {
	if cap < 0 {
		panic("stack capacity must not be negative")
	}
	return Stack{
		free:   0,
		values: make([]int, cap),
	}
}

// Push a value to the Stack. If the Stack is already full, the value is not
// pushed and ErrStackOverflow is returned.
func (stack *Stack) Push(v int) error {
	if stack.IsFull() {
		return ErrStackOverflow
	}
	stack.values[stack.free] = v
	stack.free++
	return nil
}

// Pop a value from the Stack. If the Stack is already empty, zero and
// ErrStackUnderflow are returned.
func (stack *Stack) Pop() (int, error) {
	if stack.IsEmpty() {
		return 0, ErrStackUnderflow
	}
	stack.free--
	return stack.values[stack.free], nil
}

// Peek returns the top value without removing it.
func (stack *Stack) Peek() (int, error) {
	if stack.IsEmpty() {
		return 0, ErrStackUnderflow
	}
	return stack.values[stack.free-1], nil
}

func (stack *Stack) Len() int {
	return stack.free
}

func (stack *Stack) Cap() int {
	return len(stack.values)
}

func (stack *Stack) IsFull() bool {
	return stack.free == len(stack.values)
}

func (stack *Stack) IsEmpty() bool {
	return stack.free == 0
}

// String lists the values bottom first.
func (stack *Stack) String() string {
	ss := make([]string, stack.free)
	for i, v := range stack.values[:stack.free] {
		ss[i] = fmt.Sprint(v)
	}
	return "[" + strings.Join(ss, ", ") + "]"
}
