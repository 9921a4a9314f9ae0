package compare

import (
	"reflect"
	"testing"
)

func TestToggleAppendsUpToCapacity(t *testing.T) {
	s := NewSelector(nil)

	for _, id := range []string{"a", "b", "c"} {
		if !s.Toggle(id) {
			t.Fatalf("expected Toggle(%q) to change the selection", id)
		}
	}
	if !s.Full() {
		t.Fatal("expected selector to be full at 3 selections")
	}
	if got := s.Selected(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("unexpected selection order: %v", got)
	}
}

func TestToggleFourthIsNoOp(t *testing.T) {
	s := NewSelector([]string{"a", "b", "c"})

	if s.Toggle("d") {
		t.Fatal("expected toggling a 4th product to be a no-op")
	}
	if got := s.Selected(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("selection changed at capacity: %v", got)
	}
}

func TestToggleRemovesExactlyThatOnePreservingOrder(t *testing.T) {
	s := NewSelector([]string{"a", "b", "c"})

	if !s.Toggle("b") {
		t.Fatal("expected removal to change the selection")
	}
	if got := s.Selected(); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Fatalf("expected [a c] after removing b, got %v", got)
	}
	if s.IsSelected("b") {
		t.Fatal("b should no longer be selected")
	}
}

func TestClearAlwaysEmpties(t *testing.T) {
	for _, initial := range [][]string{nil, {"a"}, {"a", "b", "c"}} {
		s := NewSelector(initial)
		s.Clear()
		if s.Len() != 0 {
			t.Fatalf("Clear left %d selections for initial %v", s.Len(), initial)
		}
	}
}

func TestNewSelectorDropsDuplicatesAndOverflow(t *testing.T) {
	s := NewSelector([]string{"a", "a", "b", "c", "d", ""})
	// The duplicate "a" toggles itself back off.
	if got := s.Selected(); !reflect.DeepEqual(got, []string{"b", "c", "d"}) {
		t.Fatalf("unexpected restored selection: %v", got)
	}
}
