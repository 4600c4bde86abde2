package main

import (
	"fmt"

	"github.com/fullstorydev/grpcurl"
	"github.com/jhump/protoreflect/grpcreflect"
	"github.com/spf13/cobra"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func newServicesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "services",
		Short:   "List gRPC services via server reflection",
		Example: `robosim-cli services`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.callContext(cmd)
			defer cancel()

			client := grpcreflect.NewClientAuto(ctx, a.conn)
			defer client.Reset()
			services, err := grpcurl.ListServices(grpcurl.DescriptorSourceFromServer(ctx, client))
			if err != nil {
				return fmt.Errorf("list services: %w", err)
			}
			if a.json {
				return a.output(cmd).printJSON(services)
			}
			for _, service := range services {
				fmt.Fprintln(cmd.OutOrStdout(), service)
			}
			return nil
		},
	}
}

func newHealthCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "health [service]",
		Short:   "Query the gRPC health service",
		Example: `robosim-cli health robot.v1.RCService`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service := ""
			if len(args) == 1 {
				service = args[0]
			}
			ctx, cancel := a.callContext(cmd)
			defer cancel()
			resp, err := healthpb.NewHealthClient(a.conn).Check(ctx, &healthpb.HealthCheckRequest{Service: service})
			if err != nil {
				return fmt.Errorf("health check: %w", err)
			}
			if a.json {
				return a.output(cmd).printJSON(map[string]string{"service": service, "status": resp.Status.String()})
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Status.String())
			return nil
		},
	}
}
