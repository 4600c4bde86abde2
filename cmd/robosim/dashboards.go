package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/joshp123/robosim/internal/capabilities"
	"github.com/joshp123/robosim/internal/core"
)

var dashboardsDir string

var dashboardsCmd = &cobra.Command{
	Use:   "dashboards",
	Short: "Export the embedded Grafana dashboards",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if dashboardsDir == "" {
			return fmt.Errorf("--dir is required")
		}
		caps := capabilities.Compiled(capabilities.Deps{})
		if err := core.WriteDashboards(dashboardsDir, caps); err != nil {
			return err
		}
		for _, path := range slices.Sorted(maps.Keys(core.DashboardsMap(caps))) {
			fmt.Fprintln(cmd.OutOrStdout(), path)
		}
		return nil
	},
}

func init() {
	dashboardsCmd.Flags().StringVar(&dashboardsDir, "dir", "", "Destination directory")
}
