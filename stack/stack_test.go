package stack

import (
	"runtime"
	"testing"
	"weak"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestStackPushPop(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lists.stack")
	defer teardown()
	//
	st := New[int]()
	if !st.Pop().IsNothing() {
		t.Error("expected pop from empty stack to return Nothing")
	}
	st.Push(1)
	st.Push(2)
	st.Push(3)
	expectPop(t, st, 3)
	expectPop(t, st, 2)
	st.Push(4)
	st.Push(5)
	expectPop(t, st, 5)
	expectPop(t, st, 4)
	expectPop(t, st, 1)
	if !st.Pop().IsNothing() {
		t.Error("expected pop from drained stack to return Nothing")
	}
	if st.Len() != 0 || !st.IsEmpty() {
		t.Errorf("expected drained stack to be empty, has length %d", st.Len())
	}
}

func TestStackZeroValue(t *testing.T) {
	var st Stack[string]
	st.Push("world")
	st.Push("hello")
	if st.Len() != 2 {
		t.Errorf("expected length 2, is %d", st.Len())
	}
	if s, _ := st.Pop().Get(); s != "hello" {
		t.Errorf("expected 'hello', got %q", s)
	}
	if s, _ := st.Pop().Get(); s != "world" {
		t.Errorf("expected 'world', got %q", s)
	}
}

func TestStackPeek(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lists.stack")
	defer teardown()
	//
	st := New[int]()
	if !st.Peek().IsNothing() || st.PeekMut() != nil {
		t.Error("expected peek on empty stack to find nothing")
	}
	st.Push(5)
	st.Push(4)
	st.Push(3)
	if v, _ := st.Peek().Get(); v != 3 {
		t.Errorf("expected peek to return 3, is %d", v)
	}
	st.Pop()
	if st.Peek().WithDefault(0) != 4 || st.Peek().WithDefault(0) != 4 {
		t.Error("expected repeated peek to return 4")
	}
	st.Pop()
	st.Pop()
	if !st.Peek().IsNothing() {
		t.Errorf("expected peek to return Nothing, is %v", st.Peek())
	}
	st.Push(15)
	if p := st.PeekMut(); p != nil {
		*p = 11
	}
	if v, _ := st.Peek().Get(); v != 11 {
		t.Errorf("expected peek to see mutated value 11, is %d", v)
	}
	expectPop(t, st, 11)
}

func TestStackIteration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lists.stack")
	defer teardown()
	//
	st := New[string]()
	st.Push("a")
	st.Push("b")
	st.Push("c")
	var seen []string
	for s := range st.All() {
		seen = append(seen, s)
	}
	if len(seen) != 3 || seen[0] != "c" || seen[1] != "b" || seen[2] != "a" {
		t.Errorf("expected iteration to yield [c b a], got %v", seen)
	}
	t.Logf("stack = %s", st)
	if st.String() != "[c b a]" {
		t.Errorf("unexpected string representation %s", st)
	}
	for s := range st.All() { // early exit
		if s != "c" {
			t.Errorf("expected first element to be c, is %s", s)
		}
		break
	}
}

func TestStackMutableIteration(t *testing.T) {
	st := New[int]()
	st.Push(1)
	st.Push(2)
	st.Push(3)
	next := 11
	for p := range st.AllMut() {
		*p = next
		next++
	}
	var seen []int
	for v := range st.All() {
		seen = append(seen, v)
	}
	if len(seen) != 3 || seen[0] != 11 || seen[1] != 12 || seen[2] != 13 {
		t.Errorf("expected mutated stack to be [11 12 13], is %v", seen)
	}
	if st.Len() != 3 {
		t.Errorf("expected mutable iteration to leave length at 3, is %d", st.Len())
	}
}

func TestStackClearLongChain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lists.stack")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	const N = 200000
	st := New[int]()
	for i := 0; i < N; i++ {
		st.Push(i)
	}
	if st.Len() != N {
		t.Fatalf("expected %d elements, have %d", N, st.Len())
	}
	bottom := weak.Make(lastNode(st))
	top := weak.Make(st.head)
	st.Clear()
	if !st.IsEmpty() || st.Len() != 0 {
		t.Errorf("expected cleared stack to be empty, has length %d", st.Len())
	}
	runtime.GC()
	if top.Value() != nil || bottom.Value() != nil {
		t.Error("expected nodes of cleared stack to be unreachable")
	}
	st.Push(7) // still usable
	expectPop(t, st, 7)
}

func TestStackPushAllocatesOnlyNode(t *testing.T) {
	st := New[int]()
	v := 1 << 20 // large enough not to be served from the runtime's small-int cache
	allocs := testing.AllocsPerRun(100, func() {
		v++
		st.Push(v)
	})
	if allocs != 1 {
		t.Errorf("expected push to allocate exactly the new node, got %.1f allocations", allocs)
	}
}

func TestStackPopDetachesNode(t *testing.T) {
	st := New[int]()
	st.Push(1)
	st.Push(2)
	n := st.detach()
	if n.next != nil {
		t.Error("expected detached node to drop its link into the chain")
	}
	if st.head == nil || st.head.element != 1 {
		t.Error("expected successor to be promoted to head")
	}
}

// ---------------------------------------------------------------------------

func expectPop[T comparable](t *testing.T, st *Stack[T], expected T) {
	t.Helper()
	v, ok := st.Pop().Get()
	if !ok {
		t.Fatalf("expected pop to return %v, stack was empty", expected)
	}
	if v != expected {
		t.Errorf("expected pop to return %v, got %v", expected, v)
	}
}

func lastNode[T any](st *Stack[T]) *node[T] {
	n := st.head
	for n != nil && n.next != nil {
		n = n.next
	}
	return n
}
