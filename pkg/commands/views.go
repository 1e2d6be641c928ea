package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/gridstate/pkg/commands/options"
	"tableflip.dev/gridstate/pkg/runner/view"
)

func addViews(topLevel *cobra.Command) {
	vo := &options.ViewOptions{}

	cmd := &cobra.Command{
		Use:   "views",
		Short: "Manage saved views.",
		RunE: func(cmd *cobra.Command, args []string) error {
			l := view.List{Dir: vo.Dir}
			return output.HandleError(l.Do(context.Background()))
		},
	}
	options.AddViewArgs(cmd, vo)

	addViewsSave(cmd, vo)
	addViewsLoad(cmd, vo)
	addViewsDelete(cmd, vo)

	topLevel.AddCommand(cmd)
}

func addViewsSave(parent *cobra.Command, vo *options.ViewOptions) {
	co := &options.ContextOptions{}

	cmd := &cobra.Command{
		Use:   "save [name]",
		Short: "Save a context's current layout as a named view.",
		Example: `
gridstate views save "active users" -s ds1 -t users
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("expected exactly one view name")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			store, _, err := collaborators()
			if err != nil {
				return err
			}
			s := view.Save{
				Name:   args[0],
				Source: co.Source,
				Table:  co.Table,
				Dir:    vo.Dir,
				Store:  store,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	options.AddContextArgs(cmd, co)
	parent.AddCommand(cmd)
}

func addViewsLoad(parent *cobra.Command, vo *options.ViewOptions) {
	cmd := &cobra.Command{
		Use:   "load [name]",
		Short: "Apply a saved view to its context.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("expected exactly one view name")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			store, client, err := collaborators()
			if err != nil {
				return err
			}
			l := view.Load{
				Name:   args[0],
				Dir:    vo.Dir,
				Store:  store,
				Client: client,
			}
			return output.HandleError(l.Do(context.Background()))
		},
	}
	parent.AddCommand(cmd)
}

func addViewsDelete(parent *cobra.Command, vo *options.ViewOptions) {
	cmd := &cobra.Command{
		Use:   "delete [name]",
		Short: "Delete a saved view.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("expected exactly one view name")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			d := view.Delete{Name: args[0], Dir: vo.Dir}
			return output.HandleError(d.Do(context.Background()))
		},
	}
	parent.AddCommand(cmd)
}
