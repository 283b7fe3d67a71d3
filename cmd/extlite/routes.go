package main

import (
	"fmt"
	"log"
	"strings"
	"text/tabwriter"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Print the dispatch table",
	Long:  `Print actions of controllers, with their paths and views. It connects to the database as serve does.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config-path")
		loglevel, _ := cmd.Flags().GetString("loglevel")

		conf, err := loadConfig(configPath, loglevel)
		if err != nil {
			log.Fatalf("can not read configration: %s", err)
		}

		a, err := newApp(cmd.Context(), conf, nil, prometheus.NewRegistry())
		if err != nil {
			log.Fatalf("can not build server: %s", err)
		}
		defer a.Close()

		fmt.Fprintf(cmd.OutOrStdout(), "database: %s\n\n", a.database.Driver())
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CONTROLLER\tACTION\tMETHODS\tPATH\tVIEW")
		for _, r := range a.router.Routes() {
			fmt.Fprintf(
				w, "%s\t%s\t%s\t%s\t%s\n",
				r.Controller, r.Action, strings.Join(r.Methods, ","), r.Path, r.View,
			)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)
}
