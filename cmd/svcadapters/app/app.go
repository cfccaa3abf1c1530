// Package app implements the svcadapters command line tool.
package app

import (
	"context"

	"github.com/spf13/cobra"
)

// NewCommand creates the root svcadapters command.
func NewCommand(ctx context.Context) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "svcadapters",
		Short:         "Exercise late-bound log services and data sources",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetContext(ctx)
	opts.AddFlags(cmd.PersistentFlags())

	cmd.AddCommand(newPingCommand(opts))

	return cmd
}
