package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "extlite",
	Short: "extlite serves controllers of conventional actions",
	Long: `extlite dispatches requests to controllers by the last path segment
(index, add, create, edit, save, delete, detail), and renders templates of them.`,
	SilenceUsage: true,
}

// Execute runs the command line.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config-path", "extlite.yaml", "config file path")
	rootCmd.PersistentFlags().String("loglevel", "", "log level, overriding the config. debug|info|warn|error|off")
}
