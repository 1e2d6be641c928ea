package session

import (
	"time"

	"tableflip.dev/gridstate/pkg/layout"
)

// Payload is the full tuple pushed to the remote session store for one
// context. Every write is a full replacement, so a reordered pair of
// writes can only ever leave the session stale, never torn.
type Payload struct {
	Pinned    []string          `json:"pinnedColumns,omitempty"`
	Order     []string          `json:"columnOrder,omitempty"`
	Visible   []string          `json:"visibleColumns,omitempty"`
	Filters   []layout.Filter   `json:"filters,omitempty"`
	Mappings  map[string]string `json:"fieldMappings,omitempty"`
	WriteID   string            `json:"writeId,omitempty"`
	UpdatedAt time.Time         `json:"timestamp,omitempty"`
}

// FromLayout assembles a payload from a layout entry and the filters
// and field mappings riding along with it.
func FromLayout(e layout.Entry, filters []layout.Filter, mappings map[string]string) Payload {
	return Payload{
		Pinned:   e.Pinned,
		Order:    e.Order,
		Visible:  e.Visible,
		Filters:  filters,
		Mappings: mappings,
	}
}

// Layout extracts the layout portion of the payload.
func (p Payload) Layout() layout.Entry {
	e := layout.Entry{
		Pinned:  p.Pinned,
		Order:   p.Order,
		Visible: p.Visible,
	}
	if e.Pinned == nil {
		e.Pinned = []string{}
	}
	if e.Order == nil {
		e.Order = []string{}
	}
	if e.Visible == nil {
		e.Visible = []string{}
	}
	return e
}

// Empty reports whether the payload carries no state at all. An empty
// session read seeds nothing during reconciliation.
func (p Payload) Empty() bool {
	return len(p.Pinned) == 0 &&
		len(p.Order) == 0 &&
		len(p.Visible) == 0 &&
		len(p.Filters) == 0 &&
		len(p.Mappings) == 0
}
