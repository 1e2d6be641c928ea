package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/gridstate/pkg/commands/options"
	"tableflip.dev/gridstate/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	co := &options.ContextOptions{}
	showHidden := false

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Print the remembered layout for a context, or list all cached contexts.",
		Example: `
gridstate get --all
gridstate get -s ds1 -t users
gridstate get -s ds1 -t users -f id,email,name --hidden
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := collaborators()
			if err != nil {
				return err
			}
			g := get.Get{
				Source:     co.Source,
				Table:      co.Table,
				Fields:     co.Fields(),
				ShowHidden: showHidden,
				All:        co.All,
				Store:      store,
			}
			return output.HandleError(g.Do(context.Background()))
		},
	}

	options.AddContextArgs(cmd, co)
	options.AddFieldsArg(cmd, co)
	options.AddAllContextsArg(cmd, co)
	options.AddOutputArg(cmd, output)
	cmd.Flags().BoolVar(&showHidden, "hidden", false, "Include hidden columns.")

	topLevel.AddCommand(cmd)
}
