package calc

// DefaultStackCapacity is the depth of each stack unless configured.
const DefaultStackCapacity = 100

// Stack is a bounded LIFO. Pushing past capacity is an error, not a panic.
type Stack[T any] struct {
	name  StackName
	items []T
	max   int
}

// NewStack returns an empty stack holding at most capacity items.
func NewStack[T any](name StackName, capacity int) *Stack[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Stack[T]{
		name:  name,
		items: make([]T, 0, min(capacity, DefaultStackCapacity)),
		max:   capacity,
	}
}

func (s *Stack[T]) Push(v T) error {
	if len(s.items) >= s.max {
		return &Error{Kind: KindStackOverflow, Stack: s.name, Depth: s.max}
	}
	s.items = append(s.items, v)
	return nil
}

func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	v := s.items[len(s.items)-1]
	s.items[len(s.items)-1] = zero
	s.items = s.items[:len(s.items)-1]
	return v, true
}

func (s *Stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

func (s *Stack[T]) Len() int {
	return len(s.items)
}

func (s *Stack[T]) Cap() int {
	return s.max
}

func (s *Stack[T]) Name() StackName {
	return s.name
}

// Values returns a copy of the contents, bottom first.
func (s *Stack[T]) Values() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}
