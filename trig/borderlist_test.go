package trig

import "testing"

func TestBorderListAddHeadAndTailOrdering(t *testing.T) {
	l := NewBorderList[int]()
	l.AddTail(2)
	l.AddTail(3)
	l.AddHead(1)

	var got []int
	for n := l.Head(); n != nil; n = n.Next() {
		got = append(got, n.Value)
	}
	want := []int{1, 2, 3}
	for i, v := range want {
		if got[i] != v {
			t.Fatalf("position %d: expected %d, got %v", i, v, got)
		}
	}
	if l.Len() != 3 {
		t.Fatalf("expected length 3, got %d", l.Len())
	}
}

func TestBorderListInsertBeforeAfter(t *testing.T) {
	l := NewBorderList[string]()
	mid := l.AddTail("b")
	l.AddTail("d")
	l.AddHead("a")
	l.InsertAfter(mid, "c")
	l.InsertBefore(mid, "a.5")

	var got []string
	for n := l.Head(); n != nil; n = n.Next() {
		got = append(got, n.Value)
	}
	want := []string{"a", "a.5", "b", "c", "d"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i, v := range want {
		if got[i] != v {
			t.Fatalf("position %d: expected %q, got %q (full=%v)", i, v, got[i], got)
		}
	}
}

func TestBorderListRemoveAtAfterBefore(t *testing.T) {
	l := NewBorderList[int]()
	n1 := l.AddTail(1)
	l.AddTail(2)
	n3 := l.AddTail(3)
	l.AddTail(4)

	if got := l.RemoveAfter(n1); got != 2 {
		t.Fatalf("RemoveAfter(n1): expected 2, got %d", got)
	}
	if got := l.RemoveBefore(n3); got != 1 {
		// n2 was already removed, so n3.prev is now n1.
		t.Fatalf("RemoveBefore(n3): expected 1, got %d", got)
	}
	if got := l.RemoveAt(n3); got != 3 {
		t.Fatalf("RemoveAt(n3): expected 3, got %d", got)
	}
	if l.Len() != 1 {
		t.Fatalf("expected 1 remaining node, got %d", l.Len())
	}
	if l.Head().Value != 4 || l.Last().Value != 4 {
		t.Fatalf("expected the sole remaining node to hold 4, head=%v last=%v", l.Head().Value, l.Last().Value)
	}
}

func TestBorderIteratorWalksBothDirections(t *testing.T) {
	l := NewBorderList[int]()
	l.AddTail(10)
	l.AddTail(20)
	l.AddTail(30)

	it := l.Iterator()
	if it.StartOfList() == false {
		t.Fatalf("expected a fresh iterator to start at the head")
	}
	it.GoNext()
	it.GoNext()
	if it.Current().Value != 30 {
		t.Fatalf("expected to reach 30, got %v", it.Current().Value)
	}
	it.GoNext()
	if !it.EndOfList() {
		t.Fatalf("expected EndOfList after stepping past the tail")
	}

	it.GoLast()
	if it.Current().Value != 30 {
		t.Fatalf("GoLast: expected 30, got %v", it.Current().Value)
	}
	it.GoPrev()
	if it.Current().Value != 20 {
		t.Fatalf("GoPrev: expected 20, got %v", it.Current().Value)
	}
	it.Restart()
	if it.Current().Value != 10 {
		t.Fatalf("Restart: expected 10, got %v", it.Current().Value)
	}
}
