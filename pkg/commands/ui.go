package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/gridstate/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Browse tables interactively; pins, hides, and reorders persist per context.",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, client, err := collaborators()
			if err != nil {
				return err
			}
			u := ui.UI{Store: store, Client: client}
			return output.HandleError(u.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
