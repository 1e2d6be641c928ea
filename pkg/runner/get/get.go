package get

import (
	"context"
	"errors"

	"tableflip.dev/gridstate/pkg/cache"
	"tableflip.dev/gridstate/pkg/layout"
	"tableflip.dev/gridstate/pkg/printers"
)

type Get struct {
	Source     string
	Table      string
	Fields     []string
	ShowHidden bool
	All        bool
	Store      cache.Store
}

func (g *Get) Do(ctx context.Context) error {
	if g.Store == nil {
		return errors.New("can not get, no store")
	}

	pp := printers.PrettyPrint{ShowHidden: g.ShowHidden}
	pp.NewLine()

	if g.All || g.Source == "" {
		pp.Title("Cached contexts")
		pp.Contexts(g.Store.Keys(ctx))
		return nil
	}

	key := layout.NewKey(g.Source, g.Table)
	entry := g.Store.Get(key)

	fields := g.Fields
	if len(fields) == 0 {
		fields = entry.KnownFields()
	}

	pp.Title(key.String())
	pp.Layout(fields, entry)
	return nil
}
