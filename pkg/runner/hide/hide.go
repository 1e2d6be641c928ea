package hide

import (
	"context"
	"errors"

	"tableflip.dev/gridstate/pkg/cache"
	"tableflip.dev/gridstate/pkg/layout"
	"tableflip.dev/gridstate/pkg/printers"
	"tableflip.dev/gridstate/pkg/session"
	"tableflip.dev/gridstate/pkg/state"
)

// Hide toggles a column's visibility: hiding it if shown, revealing it
// if hidden.
type Hide struct {
	Source string
	Table  string
	Column string
	Fields []string
	Store  cache.Store
	Client session.Client
}

func (h *Hide) Do(ctx context.Context) error {
	if h.Store == nil {
		return errors.New("can not hide, no store")
	}
	if h.Column == "" {
		return errors.New("can not hide, no column")
	}

	key := layout.NewKey(h.Source, h.Table)
	fields := knownFields(h.Fields, h.Store.Get(key), h.Column)

	m := state.New(h.Store, h.Client, func(layout.Key) []string { return fields }, 0)
	if err := m.SetActiveContext(key); err != nil {
		return err
	}
	if err := m.ToggleVisibility(h.Column); err != nil {
		return err
	}
	m.Flush()

	pp := printers.PrettyPrint{ShowHidden: true}
	pp.NewLine()
	pp.Title(key.String())
	pp.Layout(fields, m.Buffer())
	return nil
}

func knownFields(supplied []string, e layout.Entry, column string) []string {
	fields := supplied
	if len(fields) == 0 {
		fields = e.KnownFields()
	}
	for _, f := range fields {
		if f == column {
			return fields
		}
	}
	return append(fields, column)
}
