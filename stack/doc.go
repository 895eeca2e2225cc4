/*
Package stack implements a singly linked LIFO stack with exclusive ownership of nodes.

Every node of a stack is reachable by exactly one link: either from the stack's head or
from its predecessor. Nodes are never shared between stacks, and a popped node is
detached from the chain before its element is handed out.

	st := stack.New[string]()
	st.Push("world")
	st.Push("hello")
	for s := range st.All() {
	    fmt.Println(s)         // hello, world
	}

A Stack is not safe for concurrent use.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package stack

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lists.stack'.
func tracer() tracing.Trace {
	return tracing.Select("lists.stack")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("stack: "+msg, msgargs...)
		panic(msg)
	}
}
