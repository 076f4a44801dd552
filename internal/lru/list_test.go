package lru

import (
	"slices"
	"testing"
)

func keys(l *List[string, int]) []string {
	var out []string
	for n := range l.All() {
		out = append(out, n.Key)
	}
	return out
}

func TestList_PushFront(t *testing.T) {
	var l List[string, int]
	if l.Len() != 0 || l.Back() != nil {
		t.Fatal("zero list is not empty")
	}

	l.PushFront("a", 1)
	l.PushFront("b", 2)
	l.PushFront("c", 3)

	if got := keys(&l); !slices.Equal(got, []string{"c", "b", "a"}) {
		t.Errorf("order = %v, want [c b a]", got)
	}
	if l.Len() != 3 {
		t.Errorf("Len() = %d, want 3", l.Len())
	}
	if b := l.Back(); b == nil || b.Key != "a" || b.Value != 1 {
		t.Errorf("Back() = %+v, want a=1", b)
	}
}

func TestList_MoveToFront(t *testing.T) {
	var l List[string, int]
	a := l.PushFront("a", 1)
	l.PushFront("b", 2)
	c := l.PushFront("c", 3)

	l.MoveToFront(a)
	if got := keys(&l); !slices.Equal(got, []string{"a", "c", "b"}) {
		t.Errorf("after moving back node: %v, want [a c b]", got)
	}

	l.MoveToFront(a)
	l.MoveToFront(nil)
	if l.Len() != 3 {
		t.Errorf("Len() = %d after no-op moves, want 3", l.Len())
	}

	l.MoveToFront(c)
	if got := keys(&l); !slices.Equal(got, []string{"c", "a", "b"}) {
		t.Errorf("after moving middle node: %v, want [c a b]", got)
	}
	if l.Back().Key != "b" {
		t.Errorf("Back() = %q, want b", l.Back().Key)
	}
}

func TestList_RemoveAndPop(t *testing.T) {
	var l List[string, int]
	a := l.PushFront("a", 1)
	b := l.PushFront("b", 2)
	l.PushFront("c", 3)

	l.Remove(b)
	if got := keys(&l); !slices.Equal(got, []string{"c", "a"}) {
		t.Errorf("after Remove: %v, want [c a]", got)
	}
	l.Remove(nil)

	if n := l.PopBack(); n != a {
		t.Errorf("PopBack() = %+v, want a", n)
	}
	if n := l.PopBack(); n == nil || n.Key != "c" {
		t.Errorf("PopBack() = %+v, want c", n)
	}
	if n := l.PopBack(); n != nil {
		t.Errorf("PopBack() on empty list = %+v", n)
	}
	if l.Len() != 0 {
		t.Errorf("Len() = %d, want 0", l.Len())
	}

	l.PushFront("d", 4)
	if got := keys(&l); !slices.Equal(got, []string{"d"}) {
		t.Errorf("reuse after empty: %v", got)
	}
}

func TestList_Clear(t *testing.T) {
	var l List[string, int]
	for i, k := range []string{"a", "b", "c"} {
		l.PushFront(k, i)
	}
	l.Clear()

	if l.Len() != 0 || l.Back() != nil || len(keys(&l)) != 0 {
		t.Error("Clear left nodes behind")
	}
}

func TestList_AllStops(t *testing.T) {
	var l List[string, int]
	for i, k := range []string{"a", "b", "c"} {
		l.PushFront(k, i)
	}
	n := 0
	for range l.All() {
		n++
		break
	}
	if n != 1 {
		t.Errorf("iteration continued after break")
	}
}

func BenchmarkList_MoveToFront(b *testing.B) {
	var l List[int, int]
	nodes := make([]*Node[int, int], 1024)
	for i := range nodes {
		nodes[i] = l.PushFront(i, i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.MoveToFront(nodes[i%len(nodes)])
	}
}
