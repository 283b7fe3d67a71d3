package main

import (
	"fmt"

	"github.com/opst/extlite/pkg/buildtime"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of extlite",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "extlite %s\n", buildtime.VersionString())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
