/*
Package persistent is the home of immutable persistent data structures.
Immutable persistent data structures are data structures which can be copied and modified
efficiently, leaving the original unchanged.

*Persistent* immutable data-structures offer structural sharing, which means that if two
data structures are mostly copies of each other, most of the memory they take up will be
shared between them. Making a modified copy is therefore cheap in terms of space- and
time-complexity, and old versions stay valid for as long as someone holds on to them.

Sub-package list offers the simplest such structure, a singly linked list sharing suffixes
between its versions.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package persistent
