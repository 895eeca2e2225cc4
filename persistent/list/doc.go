/*
Package list implements an immutable persistent singly linked list.

A List is a lightweight handle onto a chain of immutable nodes. Appending to a list
creates a single new node in front of the existing chain and returns a new handle;
the original handle keeps observing the list as it was. Taking the tail of a list
never allocates, it just returns a handle pointing one node deeper. Consequently many
list versions may share a common suffix:

	base := list.Empty[string]().Append("C").Append("B")
	l1 := base.Append("A")       // A → B → C
	l3 := base.Append("X")       // X → B → C, sharing B → C with l1

Nodes are never mutated after creation. Memory of nodes no longer referenced by any
handle is reclaimed by the garbage collector; a suffix shared with a live handle stays
alive as long as that handle.

Lists are safe for concurrent reads.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package list

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lists.persistent.list'.
func tracer() tracing.Trace {
	return tracing.Select("lists.persistent.list")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("persistent.list: "+msg, msgargs...)
		panic(msg)
	}
}
