package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tableflip.dev/gridstate/pkg/runner/watch"
)

func addWatch(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Stream layout cache changes as they happen.",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := collaborators()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			w := watch.Watch{Store: store}
			return output.HandleError(w.Do(ctx))
		},
	}

	topLevel.AddCommand(cmd)
}
