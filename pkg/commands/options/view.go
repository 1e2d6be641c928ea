package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/gridstate/pkg/views"
)

// ViewOptions captures saved-view flags.
type ViewOptions struct {
	Dir string
}

// AddViewArgs wires the saved-view directory flag.
func AddViewArgs(cmd *cobra.Command, o *ViewOptions) {
	cmd.Flags().StringVar(&o.Dir, "views-dir", views.DefaultDir(),
		"Directory holding saved view files.")
}
