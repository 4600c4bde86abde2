package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	robotv1 "github.com/joshp123/robosim/api/robot/v1"
	"github.com/joshp123/robosim/internal/wire"
)

var modeOptions = map[string]string{
	"manual":  robotv1.Mode_MODE_MANUAL.String(),
	"guided":  robotv1.Mode_MODE_GUIDED.String(),
	"unknown": robotv1.Mode_MODE_UNKNOWN.String(),
}

func headerRows(h *robotv1.Header) [][]string {
	if h == nil {
		return nil
	}
	return [][]string{
		{"uid:", h.GetUid()},
		{"timestamp:", h.GetTimestamp().AsTime().Format("2006-01-02T15:04:05.000Z07:00")},
	}
}

func newStopCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "stop",
		Short:   "Trigger the emergency stop",
		Example: `robosim-cli stop`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.callContext(cmd)
			defer cancel()
			reply, err := robotv1.NewStopServiceClient(a.conn).Stop(ctx, &robotv1.StopRequest{})
			if err != nil {
				return fmt.Errorf("stop: %w", err)
			}
			rows := append(headerRows(reply.Header), []string{"status:", wire.ShortName(reply.Status.String(), "STOP_STATUS_")})
			return a.output(cmd).print(reply, rows)
		},
	}
}

func newGoToCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "goto <x> <y>",
		Short:   "Navigate to a coordinate (requires GUIDED mode)",
		Example: `robosim-cli goto 3 4.5`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &robotv1.GoToRequest{XCoord: wire.ParseCoordinate(args[0]), YCoord: wire.ParseCoordinate(args[1])}
			ctx, cancel := a.callContext(cmd)
			defer cancel()
			reply, err := robotv1.NewGoToServiceClient(a.conn).GoToCoordinates(ctx, req)
			if err != nil {
				return fmt.Errorf("goto: %w", err)
			}
			rows := append(headerRows(reply.Header), []string{"result:", wire.ShortName(reply.Result.String(), "GO_TO_RESULT_")})
			return a.output(cmd).print(reply, rows)
		},
	}
}

func newModeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "mode <manual|guided>",
		Short:   "Set the robot mode",
		Example: `robosim-cli mode guided`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := resolveNamedID("mode", args[0], modeOptions)
			if err != nil {
				return err
			}
			mode := robotv1.Mode(robotv1.Mode_value[name])
			ctx, cancel := a.callContext(cmd)
			defer cancel()
			reply, err := robotv1.NewTelemServiceClient(a.conn).SetMode(ctx, &robotv1.SetModeRequest{Mode: mode})
			if err != nil {
				return fmt.Errorf("set mode: %w", err)
			}
			rows := append(headerRows(reply.Header), []string{"success:", strconv.FormatBool(reply.Success)})
			return a.output(cmd).print(reply, rows)
		},
	}
}

func newTelemetryCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "telemetry",
		Aliases: []string{"telem"},
		Short:   "Show mode, position and arm state",
		Example: `robosim-cli telemetry --json`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.callContext(cmd)
			defer cancel()
			reply, err := robotv1.NewTelemServiceClient(a.conn).GetTelemetry(ctx, &robotv1.TelemetryRequest{})
			if err != nil {
				return fmt.Errorf("telemetry: %w", err)
			}
			rows := append(headerRows(reply.Header),
				[]string{"mode:", wire.ShortName(reply.Mode.String(), "MODE_")},
				[]string{"position:", fmt.Sprintf("(%g, %g)", reply.X, reply.Y)},
				[]string{"left_arm:", wire.ShortName(reply.LeftArm.String(), "ARM_STATE_")},
				[]string{"right_arm:", wire.ShortName(reply.RightArm.String(), "ARM_STATE_")},
			)
			return a.output(cmd).print(reply, rows)
		},
	}
}

func newMetadataCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "metadata",
		Short:   "Show the robot's identity",
		Example: `robosim-cli metadata`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.callContext(cmd)
			defer cancel()
			md, err := robotv1.NewMetaServiceClient(a.conn).GetMetadata(ctx, &robotv1.MetadataRequest{})
			if err != nil {
				return fmt.Errorf("metadata: %w", err)
			}
			return a.output(cmd).print(md, [][]string{
				{"name:", md.Name},
				{"firmware:", md.FirmwareVersion},
				{"birthday:", md.Birthday},
				{"serial:", md.SerialId},
				{"battery:", md.BatteryType},
			})
		},
	}
}
