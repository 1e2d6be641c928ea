package ui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/gridstate/pkg/cache"
	"tableflip.dev/gridstate/pkg/layout"
	"tableflip.dev/gridstate/pkg/session"
	"tableflip.dev/gridstate/pkg/state"
)

// UI runs the interactive table browser. Pin, hide, and reorder edits
// flow through the state manager, so everything seen here is also what
// the cache and the session end up holding.
type UI struct {
	Store    cache.Store
	Client   session.Client
	Contexts []Context
}

func (u *UI) Do(ctx context.Context) error {
	if u.Store == nil {
		return errors.New("can not run ui, no store")
	}
	if u.Client == nil {
		u.Client = session.NewMemoryClient()
	}
	contexts := u.Contexts
	if len(contexts) == 0 {
		contexts = SampleContexts()
	}

	byKey := make(map[layout.Key]Context, len(contexts))
	for _, c := range contexts {
		byKey[layout.NewKey(c.Source, c.Table)] = c
	}
	fields := func(key layout.Key) []string {
		return byKey[key].Fields
	}

	mgr := state.New(u.Store, u.Client, fields, 0)

	first := layout.NewKey(contexts[0].Source, contexts[0].Table)
	source, err := mgr.LoadInitialData(ctx, first, state.Seed{}, nil)
	if err != nil {
		return err
	}

	m := model{
		mgr:      mgr,
		contexts: contexts,
		keys:     defaultKeyMap(),
		status:   fmt.Sprintf("loaded %s from %s", first, source),
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	// Push whatever is still inside the quiet period before exiting.
	mgr.Flush()
	return nil
}
