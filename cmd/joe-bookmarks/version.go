package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joestump/joe-bookmarks/internal/build"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			info := build.Current()
			fmt.Fprintf(cmd.OutOrStdout(), "joe-bookmarks %s (commit %s, built %s, %s)\n",
				info.Version, info.Commit, info.Date, info.GoVersion)
		},
	}
}
