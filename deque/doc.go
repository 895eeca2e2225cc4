/*
Package deque implements a doubly linked double-ended queue.

Every inner node of a deque is referenced from two sides, by its predecessor and by its
successor, and the end nodes additionally by the deque itself. Adding or removing a node
therefore always updates links in up to three places; the deque keeps them consistent:
for adjacent nodes A→B, A's successor is B exactly when B's predecessor is A, and the
outer links of the end nodes are nil.

Mutating a deque while one of its iterators is running is a programming error and
panics. Reading (peeking, Len) during iteration is fine.

A Deque is not safe for concurrent use.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package deque

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lists.deque'.
func tracer() tracing.Trace {
	return tracing.Select("lists.deque")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("deque: "+msg, msgargs...)
		panic(msg)
	}
}
