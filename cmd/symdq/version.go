package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/symdq"
	"github.com/aretw0/symdq/internal/presentation/tui"
)

func newVersionCmd() *cobra.Command {
	var banner bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number of symdq",
		Run: func(cmd *cobra.Command, args []string) {
			if banner {
				tui.PrintBanner(cmd.OutOrStdout())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "symdq version %s\n", symdq.Version)
		},
	}
	cmd.Flags().BoolVar(&banner, "banner", false, "Print the banner too")
	return cmd
}
