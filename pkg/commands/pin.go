package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/gridstate/pkg/commands/options"
	"tableflip.dev/gridstate/pkg/runner/pin"
)

func addPin(topLevel *cobra.Command) {
	co := &options.ContextOptions{}

	cmd := &cobra.Command{
		Use:   "pin [column]",
		Short: "Pin or unpin a column for a context.",
		Example: `
gridstate pin email -s ds1 -t users
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("expected exactly one column")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			store, client, err := collaborators()
			if err != nil {
				return err
			}
			p := pin.Pin{
				Source: co.Source,
				Table:  co.Table,
				Column: args[0],
				Fields: co.Fields(),
				Store:  store,
				Client: client,
			}
			return output.HandleError(p.Do(context.Background()))
		},
	}

	options.AddContextArgs(cmd, co)
	options.AddFieldsArg(cmd, co)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
