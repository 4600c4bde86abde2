package main

import (
	"fmt"

	"github.com/spf13/cobra"

	robotv1 "github.com/joshp123/robosim/api/robot/v1"
)

func newCapabilitiesCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "capabilities",
		Aliases: []string{"caps"},
		Short:   "Discover the capabilities the robot serves",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(newCapabilitiesListCommand(a), newCapabilitiesDescribeCommand(a))
	return cmd
}

func newCapabilitiesListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   "List capabilities with their health",
		Example: `robosim-cli capabilities list`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.callContext(cmd)
			defer cancel()
			resp, err := robotv1.NewRegistryClient(a.conn).ListCapabilities(ctx, &robotv1.ListCapabilitiesRequest{})
			if err != nil {
				return fmt.Errorf("list capabilities: %w", err)
			}
			rows := make([][]string, 0, len(resp.Capabilities))
			for _, c := range resp.Capabilities {
				rows = append(rows, []string{c.CapabilityId, c.DisplayName, c.Version, c.Status})
			}
			return a.output(cmd).print(resp, rows)
		},
	}
}

func newCapabilitiesDescribeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "describe <capability_id>",
		Short:   "Describe one capability",
		Example: `robosim-cli capabilities describe rc`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.callContext(cmd)
			defer cancel()
			client := robotv1.NewRegistryClient(a.conn)

			id := args[0]
			list, err := client.ListCapabilities(ctx, &robotv1.ListCapabilitiesRequest{})
			if err != nil {
				return fmt.Errorf("list capabilities: %w", err)
			}
			options := make(map[string]string, len(list.Capabilities))
			for _, c := range list.Capabilities {
				options[c.CapabilityId] = c.CapabilityId
				options[c.DisplayName] = c.CapabilityId
			}
			if id, err = resolveNamedID("capability", id, options); err != nil {
				return err
			}

			resp, err := client.DescribeCapability(ctx, &robotv1.DescribeCapabilityRequest{CapabilityId: id})
			if err != nil {
				return fmt.Errorf("describe capability: %w", err)
			}
			if resp.Capability == nil {
				return fmt.Errorf("capability %q not found", id)
			}
			if a.json {
				return a.output(cmd).printJSON(resp.Capability)
			}

			c := resp.Capability
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "id: %s\n", c.CapabilityId)
			fmt.Fprintf(out, "name: %s\n", c.DisplayName)
			fmt.Fprintf(out, "version: %s\n", c.Version)
			fmt.Fprintf(out, "status: %s\n", c.Status)
			if c.HealthMessage != "" {
				fmt.Fprintf(out, "health: %s\n", c.HealthMessage)
			}
			fmt.Fprintln(out, "services:")
			for _, svc := range c.Services {
				fmt.Fprintf(out, "  - %s\n", svc)
			}
			if len(c.Dashboards) > 0 {
				fmt.Fprintln(out, "dashboards:")
				for _, dash := range c.Dashboards {
					fmt.Fprintf(out, "  - %s (%s)\n", dash.Name, dash.Path)
				}
			}
			fmt.Fprintln(out, "description:")
			fmt.Fprintln(out, c.Description)
			return nil
		},
	}
}
