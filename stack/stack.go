package stack

import (
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/lists/maybe"
)

// Stack is a LIFO container. The zero value is an empty stack ready to use.
type Stack[T any] struct {
	head   *node[T] // top of the stack, owns the rest of the chain
	length int
}

// node owns its element and, through next, the remainder of the chain.
type node[T any] struct {
	element T
	next    *node[T]
}

// New creates an empty stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements on the stack.
func (st *Stack[T]) Len() int {
	return st.length
}

// IsEmpty is true for a stack without elements.
func (st *Stack[T]) IsEmpty() bool {
	return st.head == nil
}

// Push puts an element on top of the stack.
func (st *Stack[T]) Push(element T) {
	st.head = &node[T]{element: element, next: st.head}
	st.length++
}

// Pop removes the top element and returns it. Popping from an empty stack
// returns Nothing.
func (st *Stack[T]) Pop() maybe.Maybe[T] {
	n := st.detach()
	if n == nil {
		tracer().Debugf("pop on empty stack")
		return maybe.Nothing[T]()
	}
	return maybe.Just(n.element)
}

// Peek returns the top element without removing it.
func (st *Stack[T]) Peek() maybe.Maybe[T] {
	if st.head == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(st.head.element)
}

// PeekMut returns a pointer to the top element, or nil for an empty stack.
// Changes through the pointer are visible to subsequent reads. Clients must not hold
// on to the pointer across mutations of the stack.
func (st *Stack[T]) PeekMut() *T {
	if st.head == nil {
		return nil
	}
	return &st.head.element
}

// All returns an iterator over the elements, from top to bottom.
func (st *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := st.head; n != nil; n = n.next {
			if !yield(n.element) {
				return
			}
		}
	}
}

// AllMut returns an iterator over pointers to the elements, from top to bottom.
// Every element is yielded exactly once.
func (st *Stack[T]) AllMut() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for n := st.head; n != nil; n = n.next {
			if !yield(&n.element) {
				return
			}
		}
	}
}

// Clear removes all elements from the stack.
//
// Nodes are unlinked one by one in a loop, never by descending the chain
// recursively, so arbitrarily long stacks may be cleared.
func (st *Stack[T]) Clear() {
	cnt := 0
	for st.detach() != nil {
		cnt++
	}
	tracer().Debugf("cleared stack, released %d nodes", cnt)
}

func (st *Stack[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for n := st.head; n != nil; n = n.next {
		if n != st.head {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprintf("%v", n.element))
	}
	b.WriteByte(']')
	return b.String()
}

// --- Internals -------------------------------------------------------------

// detach unlinks the head node and promotes its successor. The detached node
// no longer references the chain.
func (st *Stack[T]) detach() *node[T] {
	n := st.head
	if n == nil {
		return nil
	}
	st.head, n.next = n.next, nil
	st.length--
	assertThat(st.length >= 0, "inconsistency: negative length after pop")
	assertThat(st.length > 0 || st.head == nil, "inconsistency: length 0 with non-empty chain")
	return n
}
