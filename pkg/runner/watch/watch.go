package watch

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/gridstate/pkg/cache"
)

// Watch streams layout cache changes to the terminal until the context
// is cancelled. Useful to observe another process (or the ui command)
// editing layouts.
type Watch struct {
	Store cache.Store
}

func (w *Watch) Do(ctx context.Context) error {
	if w.Store == nil {
		return errors.New("can not watch, no store")
	}

	events, err := w.Store.Watch(ctx)
	if err != nil {
		return err
	}

	faint := color.New(color.Faint)
	_, _ = faint.Println("watching layout cache, ctrl-c to stop")

	for {
		select {
		case <-ctx.Done():
			return nil
		case evt, ok := <-events:
			if !ok {
				return nil
			}
			switch evt.Type {
			case cache.EventLayoutChanged:
				fmt.Printf("layout changed: %s\n", evt.Key)
			case cache.EventStoreInvalidated:
				fmt.Println("store changed")
			}
		}
	}
}
