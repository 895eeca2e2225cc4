/*
Package lists is a small collection of linked lists, each built around a different
notion of who owns a node.

	stack             singly linked LIFO stack; every node is owned by exactly one link
	deque             doubly linked double-ended queue; inner nodes are shared by both neighbours
	persistent/list   immutable list; nodes are shared between list versions

Reads which may come up empty return a maybe.Maybe instead of signalling an error.
None of the containers is safe for concurrent mutation; persistent lists, being
immutable, may be read concurrently.

# Tracing

All packages trace through github.com/npillmayer/schuko/tracing, selecting tracers by keys
'lists.stack', 'lists.deque' and 'lists.persistent.list'. As long as the host application
does not install a trace selector, tracing is a no-op.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package lists
