package deque

import (
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/lists/maybe"
)

// Deque is a double-ended queue. The zero value is an empty deque ready to use.
type Deque[T any] struct {
	ends      [2]*node[T] // ends[front] is the head, ends[back] the tail
	length    int
	iterators int // number of running iterators
}

// New creates an empty deque.
func New[T any]() *Deque[T] {
	return &Deque[T]{}
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements in the deque.
func (d *Deque[T]) Len() int {
	return d.length
}

// IsEmpty is true for a deque without elements.
func (d *Deque[T]) IsEmpty() bool {
	return d.ends[front] == nil
}

// PushFront inserts an element before the current head.
func (d *Deque[T]) PushFront(element T) {
	d.push(front, element)
}

// PushBack inserts an element after the current tail.
func (d *Deque[T]) PushBack(element T) {
	d.push(back, element)
}

// PopFront removes the head element and returns it, or Nothing if the deque is empty.
func (d *Deque[T]) PopFront() maybe.Maybe[T] {
	return d.pop(front)
}

// PopBack removes the tail element and returns it, or Nothing if the deque is empty.
func (d *Deque[T]) PopBack() maybe.Maybe[T] {
	return d.pop(back)
}

// PeekFront returns the head element without removing it.
func (d *Deque[T]) PeekFront() maybe.Maybe[T] {
	return d.peek(front)
}

// PeekBack returns the tail element without removing it.
func (d *Deque[T]) PeekBack() maybe.Maybe[T] {
	return d.peek(back)
}

// PeekFrontMut returns a pointer to the head element, or nil.
// Clients must not hold on to the pointer across mutations of the deque.
func (d *Deque[T]) PeekFrontMut() *T {
	if n := d.ends[front]; n != nil {
		return &n.element
	}
	return nil
}

// PeekBackMut returns a pointer to the tail element, or nil.
func (d *Deque[T]) PeekBackMut() *T {
	if n := d.ends[back]; n != nil {
		return &n.element
	}
	return nil
}

// All returns an iterator over the elements from front to back.
func (d *Deque[T]) All() iter.Seq[T] {
	return d.walk(front)
}

// Backward returns an iterator over the elements from back to front.
func (d *Deque[T]) Backward() iter.Seq[T] {
	return d.walk(back)
}

// Clear removes all elements, popping them off the front one at a time.
func (d *Deque[T]) Clear() {
	cnt := 0
	for !d.pop(front).IsNothing() {
		cnt++
	}
	tracer().Debugf("cleared deque, released %d nodes", cnt)
}

func (d *Deque[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for n := d.ends[front]; n != nil; n = n.next() {
		if n != d.ends[front] {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprintf("%v", n.element))
	}
	b.WriteByte(']')
	return b.String()
}

// --- Internals -------------------------------------------------------------

// push links a new node at end e. Front and back are mirror images of each other:
// the new node's inward link points to the old end node, whose outward link
// points back to the new node.
func (d *Deque[T]) push(e end, element T) {
	d.assertNotIterating("push")
	n := &node[T]{element: element}
	old := d.ends[e]
	if old == nil {
		d.ends[front], d.ends[back] = n, n
	} else {
		n.link[e.opposite()] = old
		old.link[e] = n
		d.ends[e] = n
	}
	d.length++
}

// pop detaches the node at end e and promotes its inward neighbour. If there is no
// neighbour, the deque becomes empty.
func (d *Deque[T]) pop(e end) maybe.Maybe[T] {
	d.assertNotIterating("pop")
	n := d.ends[e]
	if n == nil {
		return maybe.Nothing[T]()
	}
	assertThat(n.link[e] == nil, "inconsistency: %s node has an outward link", e)
	if inner := n.link[e.opposite()]; inner == nil {
		assertThat(d.ends[e.opposite()] == n, "inconsistency: single node is not both head and tail")
		d.ends[front], d.ends[back] = nil, nil
		tracer().Debugf("popped last node at %s, deque is empty", e)
	} else {
		assertThat(inner.link[e] == n, "inconsistency: neighbour of %s node does not link back", e)
		inner.link[e] = nil
		d.ends[e] = inner
	}
	n.unlink()
	d.length--
	assertThat(d.length >= 0, "inconsistency: negative length after pop")
	return maybe.Just(n.element)
}

func (d *Deque[T]) peek(e end) maybe.Maybe[T] {
	if n := d.ends[e]; n != nil {
		return maybe.Just(n.element)
	}
	return maybe.Nothing[T]()
}

// walk iterates starting at end `from` towards the opposite end.
// While the iteration runs, mutations of the deque are rejected.
func (d *Deque[T]) walk(from end) iter.Seq[T] {
	return func(yield func(T) bool) {
		d.iterators++
		defer func() { d.iterators-- }()
		for n := d.ends[from]; n != nil; n = n.link[from.opposite()] {
			if !yield(n.element) {
				return
			}
		}
	}
}

func (d *Deque[T]) assertNotIterating(op string) {
	assertThat(d.iterators == 0, "%s while iterating over deque", op)
}

// check verifies the link structure of the deque and returns the first violation found.
func (d *Deque[T]) check() error {
	head, tail := d.ends[front], d.ends[back]
	if (head == nil) != (tail == nil) {
		return fmt.Errorf("exactly one of head and tail is nil")
	}
	if head == nil {
		if d.length != 0 {
			return fmt.Errorf("empty deque has length %d", d.length)
		}
		return nil
	}
	if head.prev() != nil {
		return fmt.Errorf("head has a predecessor")
	}
	if tail.next() != nil {
		return fmt.Errorf("tail has a successor")
	}
	cnt := 1
	for n := head; n != tail; n = n.next() {
		succ := n.next()
		if succ == nil {
			return fmt.Errorf("chain ends before reaching tail at position %d", cnt)
		}
		if succ.prev() != n {
			return fmt.Errorf("node at position %d does not link back to its predecessor", cnt)
		}
		cnt++
	}
	if cnt != d.length {
		return fmt.Errorf("deque has %d nodes, but length %d", cnt, d.length)
	}
	return nil
}
