package pin

import (
	"context"
	"errors"

	"tableflip.dev/gridstate/pkg/cache"
	"tableflip.dev/gridstate/pkg/layout"
	"tableflip.dev/gridstate/pkg/printers"
	"tableflip.dev/gridstate/pkg/session"
	"tableflip.dev/gridstate/pkg/state"
)

type Pin struct {
	Source string
	Table  string
	Column string
	Fields []string
	Store  cache.Store
	Client session.Client
}

func (p *Pin) Do(ctx context.Context) error {
	if p.Store == nil {
		return errors.New("can not pin, no store")
	}
	if p.Column == "" {
		return errors.New("can not pin, no column")
	}

	key := layout.NewKey(p.Source, p.Table)
	fields := knownFields(p.Fields, p.Store.Get(key), p.Column)

	m := state.New(p.Store, p.Client, func(layout.Key) []string { return fields }, 0)
	if err := m.SetActiveContext(key); err != nil {
		return err
	}
	if err := m.TogglePin(p.Column); err != nil {
		return err
	}
	m.Flush()

	pp := printers.PrettyPrint{ShowHidden: true}
	pp.NewLine()
	pp.Title(key.String())
	pp.Layout(fields, m.Buffer())
	return nil
}

// knownFields prefers the caller-supplied schema and falls back to the
// names the entry has already seen, always including the edited column.
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
