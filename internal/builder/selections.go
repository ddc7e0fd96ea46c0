package builder

import "promptstudio/internal/catalog"

// Selections maps category id to the ordered sequence of chosen options.
// Options are unique within a category by canonical key; an empty slice means
// no selection. Single-select categories hold at most one entry, which
// Toggle enforces.
type Selections map[string][]catalog.Option

// Clone returns a deep copy of the selection map.
func (s Selections) Clone() Selections {
	out := make(Selections, len(s))
	for id, opts := range s {
		cp := make([]catalog.Option, len(opts))
		copy(cp, opts)
		out[id] = cp
	}
	return out
}

// Has reports whether the option identified by key is selected in the
// given category.
func (s Selections) Has(categoryID, key string) bool {
	for _, opt := range s[categoryID] {
		if opt.CanonicalKey() == key {
			return true
		}
	}
	return false
}

// Empty reports whether no category has any selection.
func (s Selections) Empty() bool {
	for _, opts := range s {
		if len(opts) > 0 {
			return false
		}
	}
	return true
}

// Count returns the total number of selected options across categories.
func (s Selections) Count() int {
	n := 0
	for _, opts := range s {
		n += len(opts)
	}
	return n
}

// Toggle flips the membership of opt in the given category and returns the
// updated mapping; the receiver is not mutated. Single-select: re-toggling
// the sole selection clears it, anything else replaces it. Multi-select:
// present removes, absent appends. Unknown category ids simply create a new
// entry.
func (s Selections) Toggle(categoryID string, opt catalog.Option, singleSelect bool) Selections {
	out := s.Clone()
	current := out[categoryID]
	key := opt.CanonicalKey()

	if singleSelect {
		if len(current) == 1 && current[0].CanonicalKey() == key {
			out[categoryID] = nil
		} else {
			out[categoryID] = []catalog.Option{opt}
		}
		return out
	}

	for i, sel := range current {
		if sel.CanonicalKey() == key {
			out[categoryID] = append(current[:i:i], current[i+1:]...)
			return out
		}
	}
	out[categoryID] = append(current, opt)
	return out
}
