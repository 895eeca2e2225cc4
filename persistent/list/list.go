package list

import (
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/lists/maybe"
)

// List is a handle to an immutable list. The zero value is the empty list.
// Lists are values and may be copied freely; copies share all of their nodes.
type List[T any] struct {
	head   *node[T]
	length int
}

// node is immutable after creation. It may be referenced by any number of handles
// and predecessor nodes.
type node[T any] struct {
	element T
	next    *node[T]
}

// Empty returns an empty list.
//
// Use it like this:
//
//	l := list.Empty[int]().Append(3).Append(2).Append(1)   // 1 → 2 → 3
func Empty[T any]() List[T] {
	return List[T]{}
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements of l.
func (l List[T]) Len() int {
	return l.length
}

// IsEmpty is true for the empty list.
func (l List[T]) IsEmpty() bool {
	return l.head == nil
}

// Append returns a new list with element in front of l. l itself is left unchanged,
// and all of its nodes are shared with the new list.
func (l List[T]) Append(element T) List[T] {
	n := &node[T]{element: element, next: l.head}
	return List[T]{head: n, length: l.length + 1}
}

// Tail returns the list without its first element. The tail of the empty list is
// the empty list.
func (l List[T]) Tail() List[T] {
	if l.head == nil {
		tracer().Debugf("tail of empty list")
		return l
	}
	assertThat(l.length > 0, "inconsistency: non-empty list with length %d", l.length)
	return List[T]{head: l.head.next, length: l.length - 1}
}

// Head returns the first element of l, or Nothing for the empty list.
func (l List[T]) Head() maybe.Maybe[T] {
	if l.head == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(l.head.element)
}

// All returns an iterator over the elements of l, from head to end.
// As l is immutable, the iterator may be used any number of times.
func (l List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.element) {
				return
			}
		}
	}
}

// SharesTail reports whether l and other have at least one node in common.
// As nodes are immutable, this is the case iff both lists end in the same
// (physical) suffix.
func (l List[T]) SharesTail(other List[T]) bool {
	a, b := l.head, other.head
	for i := l.length; i > other.length; i-- {
		a = a.next
	}
	for i := other.length; i > l.length; i-- {
		b = b.next
	}
	for a != nil && b != nil {
		if a == b {
			return true
		}
		a, b = a.next, b.next
	}
	return false
}

func (l List[T]) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			b.WriteString(" → ")
		}
		b.WriteString(fmt.Sprintf("%v", n.element))
	}
	b.WriteByte(')')
	return b.String()
}
