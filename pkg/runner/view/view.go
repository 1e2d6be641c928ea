package view

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/gridstate/pkg/cache"
	"tableflip.dev/gridstate/pkg/layout"
	"tableflip.dev/gridstate/pkg/printers"
	"tableflip.dev/gridstate/pkg/session"
	"tableflip.dev/gridstate/pkg/state"
	"tableflip.dev/gridstate/pkg/views"
)

// List prints the saved view catalog.
type List struct {
	Dir string
}

func (l *List) Do(ctx context.Context) error {
	all, err := views.List(l.Dir)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("Saved views")
	pp.Views(all)
	return nil
}

// Save snapshots a context's current cached layout as a named view.
type Save struct {
	Name   string
	Source string
	Table  string
	Dir    string
	Store  cache.Store
}

func (s *Save) Do(ctx context.Context) error {
	if s.Store == nil {
		return errors.New("can not save view, no store")
	}

	entry := s.Store.Get(layout.NewKey(s.Source, s.Table))
	return views.Save(s.Dir, views.View{
		Name:    s.Name,
		Source:  s.Source,
		Table:   s.Table,
		Pinned:  entry.Pinned,
		Order:   entry.Order,
		Visible: entry.Visible,
		SavedAt: time.Now().UTC(),
	})
}

// Load applies a saved view to its context: the view seeds the buffer
// and is written through to the cache and the session.
type Load struct {
	Name   string
	Dir    string
	Store  cache.Store
	Client session.Client
}

func (l *Load) Do(ctx context.Context) error {
	if l.Store == nil {
		return errors.New("can not load view, no store")
	}

	v, err := views.Load(l.Dir, l.Name)
	if err != nil {
		return err
	}

	m := state.New(l.Store, l.Client, func(layout.Key) []string { return nil }, 0)
	if err := m.Initialize(v.Key(), state.Seed{
		Layout:   v.Layout(),
		Filters:  v.Filters,
		Mappings: v.Mappings,
	}); err != nil {
		return err
	}
	m.Flush()

	buf := m.Buffer()
	pp := printers.PrettyPrint{ShowHidden: true}
	pp.NewLine()
	pp.Title(v.Key().String())
	pp.Filters(v.Filters)
	pp.Layout(buf.KnownFields(), buf)
	return nil
}

// Delete removes a saved view.
type Delete struct {
	Name string
	Dir  string
}

func (d *Delete) Do(ctx context.Context) error {
	return views.Delete(d.Dir, d.Name)
}
