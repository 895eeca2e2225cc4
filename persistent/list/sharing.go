package list

import (
	"fmt"
	"strings"

	tp "github.com/xlab/treeprint"
)

// Sharing renders the node graph of a set of list versions as a tree, for debugging.
// The root of the tree is the last node of a chain (the oldest element), and the tree
// branches wherever two versions diverge. Heads of versions are marked with their
// position in the argument list, i.e. “v0”, “v1”, ….
//
//	base := Empty[string]().Append("C").Append("B")
//	fmt.Println(Sharing(base.Append("A"), base, base.Append("X")))
//
// prints
//
//	.
//	└── C
//	    └── B ◀ v1
//	        ├── A ◀ v0
//	        └── X ◀ v2
//
// Nodes shared between versions are printed once.
func Sharing[T any](versions ...List[T]) string {
	var roots []*node[T]
	preds := make(map[*node[T]][]*node[T])
	labels := make(map[*node[T]][]string)
	seen := make(map[*node[T]]bool)
	var empty []string
	for i, v := range versions {
		name := fmt.Sprintf("v%d", i)
		if v.head == nil {
			empty = append(empty, name)
			continue
		}
		labels[v.head] = append(labels[v.head], name)
		for n := v.head; n != nil && !seen[n]; n = n.next {
			seen[n] = true
			if n.next == nil {
				roots = append(roots, n)
			} else {
				preds[n.next] = append(preds[n.next], n)
			}
		}
	}
	type pending struct {
		parent tp.Tree
		node   *node[T]
	}
	printer := tp.New()
	// depth-first, using an explicit stack of pending nodes
	stack := make([]pending, 0, len(roots))
	for i := len(roots) - 1; i >= 0; i-- {
		stack = append(stack, pending{parent: printer, node: roots[i]})
	}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		label := fmt.Sprintf("%v", p.node.element)
		if l := labels[p.node]; len(l) > 0 {
			label += " ◀ " + strings.Join(l, ",")
		}
		children := preds[p.node]
		if len(children) == 0 {
			p.parent.AddNode(label)
			continue
		}
		branch := p.parent.AddBranch(label)
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, pending{parent: branch, node: children[i]})
		}
	}
	var b strings.Builder
	if len(empty) > 0 {
		b.WriteString("empty: " + strings.Join(empty, ",") + "\n")
	}
	b.WriteString(printer.String())
	return b.String()
}
