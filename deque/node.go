package deque

// end selects one side of a deque. Node links are indexed the same way:
// link[front] points to the predecessor, link[back] to the successor.
type end int

const (
	front end = 0
	back  end = 1
)

func (e end) opposite() end {
	return 1 - e
}

func (e end) String() string {
	if e == front {
		return "front"
	}
	return "back"
}

type node[T any] struct {
	element T
	link    [2]*node[T]
}

// prev and next are for readability at call sites which are not direction-agnostic.
func (n *node[T]) prev() *node[T] { return n.link[front] }
func (n *node[T]) next() *node[T] { return n.link[back] }

// unlink drops both links of a node which has been removed from the chain.
func (n *node[T]) unlink() {
	n.link[front], n.link[back] = nil, nil
}
