package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/gridstate/pkg/commands/options"
	"tableflip.dev/gridstate/pkg/runner/order"
)

func addOrder(topLevel *cobra.Command) {
	co := &options.ContextOptions{}

	cmd := &cobra.Command{
		Use:   "order [column...]",
		Short: "Set the column order for a context.",
		Long: "Set the column order for a context. Columns the previous order knew " +
			"but the new one omits keep their previous relative order at the end.",
		Example: `
gridstate order email id name -s ds1 -t users
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("expected at least one column")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			store, client, err := collaborators()
			if err != nil {
				return err
			}
			o := order.Order{
				Source:  co.Source,
				Table:   co.Table,
				Columns: args,
				Store:   store,
				Client:  client,
			}
			return output.HandleError(o.Do(context.Background()))
		},
	}

	options.AddContextArgs(cmd, co)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
