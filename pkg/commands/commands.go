package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/gridstate/pkg/cache"
	"tableflip.dev/gridstate/pkg/commands/options"
	"tableflip.dev/gridstate/pkg/session"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "gridstate",
		Short: base.Wrap80("Remembered table layouts per data source, synced to a resumable session."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addGet(topLevel)
	addPin(topLevel)
	addHide(topLevel)
	addOrder(topLevel)
	addClear(topLevel)
	addViews(topLevel)
	addWatch(topLevel)
	addUI(topLevel)
	addVersion(topLevel)
}

// collaborators loads the durable cache and the session client every
// command shares.
func collaborators() (cache.Store, session.Client, error) {
	store, err := cache.Load(nil)
	if err != nil {
		return nil, nil, err
	}
	client := session.NewClientFromConfig(session.LoadConfig())
	return store, client, nil
}
