// Package options defines shared flag helpers for CLI commands.
package options

import (
	"strings"

	"github.com/spf13/cobra"
)

// ContextOptions captures the (data source, table) pair a command
// operates on, plus an optional explicit field set.
type ContextOptions struct {
	Source    string
	Table     string
	FieldList string
	All       bool
}

// AddContextArgs wires context selection flags on the provided command.
func AddContextArgs(cmd *cobra.Command, o *ContextOptions) {
	cmd.Flags().StringVarP(&o.Source, "source", "s", "",
		"Specify the data source id.")
	cmd.Flags().StringVarP(&o.Table, "table", "t", "",
		"Specify the table or collection name.")
}

// AddFieldsArg registers the explicit field set flag.
func AddFieldsArg(cmd *cobra.Command, o *ContextOptions) {
	cmd.Flags().StringVarP(&o.FieldList, "fields", "f", "",
		"Comma-separated full field set for the table. Defaults to the fields the cached layout already knows.")
}

// AddAllContextsArg registers the flag that lists every cached context.
func AddAllContextsArg(cmd *cobra.Command, o *ContextOptions) {
	cmd.Flags().BoolVar(&o.All, "all", false,
		"Operate on all cached contexts.")
}

// Fields parses the comma-separated field flag.
func (o *ContextOptions) Fields() []string {
	if strings.TrimSpace(o.FieldList) == "" {
		return nil
	}
	parts := strings.Split(o.FieldList, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
