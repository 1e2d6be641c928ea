package clear

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/gridstate/pkg/cache"
	"tableflip.dev/gridstate/pkg/layout"
	"tableflip.dev/gridstate/pkg/session"
)

// Clear is the hard refresh: it discards the remote session and the
// cached layout for one context so the next open reloads from the
// source of truth. Local limits the clear to the cache.
type Clear struct {
	Source string
	Table  string
	Local  bool
	Store  cache.Store
	Client session.Client
}

func (c *Clear) Do(ctx context.Context) error {
	if c.Store == nil {
		return errors.New("can not clear, no store")
	}

	key := layout.NewKey(c.Source, c.Table)

	if !c.Local && c.Client != nil {
		if err := c.Client.Delete(ctx, key); err != nil {
			// Best effort; the session expires on its own TTL anyway.
			fmt.Fprintf(color.Error, "session delete failed: %v\n", err)
		}
	}

	if err := c.Store.Clear(key); err != nil {
		return err
	}

	t := color.New(color.Faint)
	_, _ = t.Printf("\ncleared %s\n\n", key)
	return nil
}
