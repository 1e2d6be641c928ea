package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/gridstate/pkg/commands/options"
	"tableflip.dev/gridstate/pkg/runner/hide"
)

func addHide(topLevel *cobra.Command) {
	co := &options.ContextOptions{}

	cmd := &cobra.Command{
		Use:   "hide [column]",
		Short: "Toggle a column's visibility for a context.",
		Long: "Toggle a column's visibility for a context. Hiding a pinned column " +
			"unpins it; hiding the last visible column re-reveals the first known field.",
		Example: `
gridstate hide email -s ds1 -t users -f id,email,name
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
			h := hide.Hide{
				Source: co.Source,
				Table:  co.Table,
				Column: args[0],
				Fields: co.Fields(),
				Store:  store,
				Client: client,
			}
			return output.HandleError(h.Do(context.Background()))
		},
	}

	options.AddContextArgs(cmd, co)
	options.AddFieldsArg(cmd, co)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
