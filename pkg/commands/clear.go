package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/gridstate/pkg/commands/options"
	"tableflip.dev/gridstate/pkg/runner/clear"
)

func addClear(topLevel *cobra.Command) {
	co := &options.ContextOptions{}
	local := false

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Hard refresh: discard the remote session and cached layout for a context.",
		Example: `
gridstate clear -s ds1 -t users
gridstate clear -s ds1 -t users --local
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, client, err := collaborators()
			if err != nil {
				return err
			}
			c := clear.Clear{
				Source: co.Source,
				Table:  co.Table,
				Local:  local,
				Store:  store,
				Client: client,
			}
			return output.HandleError(c.Do(context.Background()))
		},
	}

	options.AddContextArgs(cmd, co)
	options.AddOutputArg(cmd, output)
	cmd.Flags().BoolVar(&local, "local", false, "Only clear the local cache, leaving the remote session alone.")

	topLevel.AddCommand(cmd)
}
