package layout

import "sort"

// TogglePin adds the column to the pin list, or removes it if already
// pinned. Pin order is append order, most recently pinned last.
// Visibility is untouched. Pinning a hidden or unknown column is a
// no-op, so the pin list can never reference a column the table does
// not show.
func TogglePin(column string, allFields []string, e Entry) Entry {
	next := e.Clone()
	if next.IsPinned(column) {
		next.Pinned = remove(next.Pinned, column)
		return next
	}
	if !contains(allFields, column) || !next.IsVisible(column) {
		return next
	}
	next.Pinned = append(next.Pinned, column)
	return next
}

// ToggleVisibility flips the visibility of the column against the full
// known field set and returns a canonical entry. The result always
// satisfies the layout invariants:
//
//   - an explicit visible list covering the full field set collapses
//     back to the all-visible sentinel
//   - the explicit list never goes empty; hiding the last visible
//     column re-reveals the first known field instead
//   - a column that ends up hidden is unpinned first
//   - a name outside the known field set is a no-op
func ToggleVisibility(column string, allFields []string, e Entry) Entry {
	next := e.Clone()

	switch {
	case next.AllVisible():
		// Leaving the sentinel: materialize the explicit list without
		// the toggled column.
		visible := make([]string, 0, len(allFields))
		for _, f := range allFields {
			if f != column {
				visible = append(visible, f)
			}
		}
		if len(visible) == len(allFields) {
			// Unknown column, nothing hidden. Stay on the sentinel.
			return next
		}
		if len(visible) == 0 && len(allFields) > 0 {
			visible = []string{allFields[0]}
		}
		if next.IsPinned(column) && !contains(visible, column) {
			next = TogglePin(column, allFields, next)
		}
		next.Visible = visible

	case contains(next.Visible, column):
		visible := remove(next.Visible, column)
		if len(visible) == 0 {
			if len(allFields) == 0 {
				// No known fields to fall back to; keep the sentinel.
				next.Visible = []string{}
				return next
			}
			visible = []string{allFields[0]}
		}
		if next.IsPinned(column) && !contains(visible, column) {
			next = TogglePin(column, allFields, next)
		}
		next.Visible = visible

	default:
		// Re-showing. An unknown name must not grow the list: a stale
		// entry could otherwise collapse it to the sentinel and reveal
		// columns the user hid.
		if !contains(allFields, column) {
			return next
		}
		visible := append(next.Visible, column)
		if covers(visible, allFields) {
			visible = []string{}
		}
		next.Visible = visible
	}

	return next
}

// SetVisible replaces the visible list wholesale and canonicalizes it.
// Pinned columns that end up hidden are unpinned.
func SetVisible(columns []string, allFields []string, e Entry) Entry {
	next := e.Clone()

	visible := make([]string, 0, len(columns))
	for _, c := range columns {
		if !contains(visible, c) {
			visible = append(visible, c)
		}
	}
	if len(allFields) > 0 && covers(visible, allFields) {
		visible = []string{}
	}
	next.Visible = visible

	pinned := make([]string, 0, len(next.Pinned))
	for _, p := range next.Pinned {
		if next.IsVisible(p) {
			pinned = append(pinned, p)
		}
	}
	next.Pinned = pinned
	return next
}

// SetPinned replaces the pin list. Duplicates, unknown names, and
// columns hidden under the current visibility are dropped so the
// result keeps pinned within visible.
func SetPinned(columns []string, allFields []string, e Entry) Entry {
	next := e.Clone()
	pinned := make([]string, 0, len(columns))
	for _, c := range columns {
		if !contains(pinned, c) && contains(allFields, c) && next.IsVisible(c) {
			pinned = append(pinned, c)
		}
	}
	next.Pinned = pinned
	return next
}

// SetColumnOrder replaces the column order with the supplied
// permutation. Columns known to the previous order but absent from the
// new one are appended afterward in their previous relative order so no
// column is silently dropped.
func SetColumnOrder(newOrder []string, e Entry) Entry {
	next := e.Clone()
	order := make([]string, 0, len(newOrder)+len(next.Order))
	for _, c := range newOrder {
		if !contains(order, c) {
			order = append(order, c)
		}
	}
	for _, c := range next.Order {
		if !contains(order, c) {
			order = append(order, c)
		}
	}
	next.Order = order
	return next
}

// DisplayOrder computes the on-screen column sequence for the entry:
// pinned columns first in pin order, then the remaining visible columns
// sorted by the stored order, with columns the order has never seen
// trailing in discovery order.
func DisplayOrder(allFields []string, e Entry) []string {
	out := make([]string, 0, len(allFields))
	seen := make(map[string]bool, len(allFields))

	for _, c := range e.Pinned {
		if !seen[c] && e.IsVisible(c) && contains(allFields, c) {
			out = append(out, c)
			seen[c] = true
		}
	}

	rest := make([]string, 0, len(allFields))
	for _, f := range allFields {
		if !seen[f] && e.IsVisible(f) {
			rest = append(rest, f)
		}
	}

	rank := make(map[string]int, len(e.Order))
	for i, c := range e.Order {
		rank[c] = i
	}
	sort.SliceStable(rest, func(i, j int) bool {
		ri, iok := rank[rest[i]]
		rj, jok := rank[rest[j]]
		switch {
		case iok && jok:
			return ri < rj
		case iok:
			return true
		case jok:
			return false
		default:
			// Neither ranked: discovery order, preserved by the
			// stable sort.
			return false
		}
	})

	return append(out, rest...)
}
