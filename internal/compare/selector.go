// Package compare implements the side-by-side comparison selection:
// an ordered set of at most three products and the attribute matrix
// rendered from them.
package compare

// MaxSelection caps how many products can be compared at once.
const MaxSelection = 3

// Selector holds the ordered, unique selection of product ids. It is
// ephemeral page state, not persisted anywhere.
type Selector struct {
	ids []string
}

// NewSelector restores a selector by replaying the ids as toggles:
// order is preserved, blanks are skipped and anything past the cap is
// dropped.
func NewSelector(ids []string) *Selector {
	s := &Selector{}
	for _, id := range ids {
		if id == "" {
			continue
		}
		s.Toggle(id)
	}
	return s
}

// Toggle removes the id when present; otherwise appends it if there is
// room. At capacity an unselected id is ignored. Returns whether the
// selection changed.
func (s *Selector) Toggle(id string) bool {
	for i, selected := range s.ids {
		if selected == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return true
		}
	}
	if len(s.ids) >= MaxSelection {
		return false
	}
	s.ids = append(s.ids, id)
	return true
}

func (s *Selector) Clear() {
	s.ids = nil
}

func (s *Selector) IsSelected(id string) bool {
	for _, selected := range s.ids {
		if selected == id {
			return true
		}
	}
	return false
}

func (s *Selector) Full() bool {
	return len(s.ids) >= MaxSelection
}

func (s *Selector) Len() int {
	return len(s.ids)
}

// Selected returns the ids in selection order. The caller gets a copy.
func (s *Selector) Selected() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}
