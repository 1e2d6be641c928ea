package layout

// Entry is the remembered column layout for one context: which columns
// are pinned, how columns are ordered, and which are visible.
//
// An empty Visible slice is a sentinel meaning every known column is
// visible, not that none are. A non-empty Visible slice is an explicit
// allow list and always holds at least one name.
type Entry struct {
	Pinned  []string `json:"pinnedColumns,omitempty"`
	Order   []string `json:"columnOrder,omitempty"`
	Visible []string `json:"visibleColumns,omitempty"`
}

// Default returns the canonical empty layout: nothing pinned, discovery
// order, all columns visible.
func Default() Entry {
	return Entry{
		Pinned:  []string{},
		Order:   []string{},
		Visible: []string{},
	}
}

// Clone returns a deep copy. The active buffer always works on a clone
// so in-place edits cannot reach into the cache.
func (e Entry) Clone() Entry {
	c := Entry{
		Pinned:  make([]string, len(e.Pinned)),
		Order:   make([]string, len(e.Order)),
		Visible: make([]string, len(e.Visible)),
	}
	copy(c.Pinned, e.Pinned)
	copy(c.Order, e.Order)
	copy(c.Visible, e.Visible)
	return c
}

// AllVisible reports whether the entry carries the all-columns-visible
// sentinel.
func (e Entry) AllVisible() bool {
	return len(e.Visible) == 0
}

// IsVisible reports whether the named column is visible under the
// entry's current interpretation.
func (e Entry) IsVisible(column string) bool {
	if e.AllVisible() {
		return true
	}
	return contains(e.Visible, column)
}

// IsPinned reports whether the named column is pinned.
func (e Entry) IsPinned(column string) bool {
	return contains(e.Pinned, column)
}

// KnownFields derives a best-effort field universe from the entry
// itself: the stored order first, then visible and pinned names the
// order has not seen. Callers holding a real schema should use that
// instead.
func (e Entry) KnownFields() []string {
	out := make([]string, 0, len(e.Order)+len(e.Visible)+len(e.Pinned))
	for _, group := range [][]string{e.Order, e.Visible, e.Pinned} {
		for _, f := range group {
			if !contains(out, f) {
				out = append(out, f)
			}
		}
	}
	return out
}

// Filter is one active filter riding along with the layout in sessions
// and saved views. The subsystem stores filters verbatim; evaluating
// them is the caller's business.
type Filter struct {
	Field    string `json:"field" toml:"field"`
	Operator string `json:"operator" toml:"operator"`
	Value    string `json:"value" toml:"value"`
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// covers reports whether every name in allFields appears in list.
func covers(list, allFields []string) bool {
	for _, f := range allFields {
		if !contains(list, f) {
			return false
		}
	}
	return true
}

func remove(list []string, s string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		if v != s {
			out = append(out, v)
		}
	}
	return out
}
