package order

import (
	"context"
	"errors"

	"tableflip.dev/gridstate/pkg/cache"
	"tableflip.dev/gridstate/pkg/layout"
	"tableflip.dev/gridstate/pkg/printers"
	"tableflip.dev/gridstate/pkg/session"
	"tableflip.dev/gridstate/pkg/state"
)

// Order replaces a context's column order with an explicit permutation.
// Columns the previous order knew but the new one omits are kept,
// trailing in their previous relative order.
type Order struct {
	Source  string
	Table   string
	Columns []string
	Store   cache.Store
	Client  session.Client
}

func (o *Order) Do(ctx context.Context) error {
	if o.Store == nil {
		return errors.New("can not order, no store")
	}
	if len(o.Columns) == 0 {
		return errors.New("can not order, no columns")
	}

	key := layout.NewKey(o.Source, o.Table)

	m := state.New(o.Store, o.Client, func(layout.Key) []string { return nil }, 0)
	if err := m.SetActiveContext(key); err != nil {
		return err
	}
	if err := m.SetColumnOrder(o.Columns); err != nil {
		return err
	}
	m.Flush()

	buf := m.Buffer()
	pp := printers.PrettyPrint{ShowHidden: true}
	pp.NewLine()
	pp.Title(key.String())
	pp.Layout(buf.KnownFields(), buf)
	return nil
}
