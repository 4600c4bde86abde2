package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fullstorydev/grpcurl"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const defaultTimeout = 10 * time.Second

// app carries the connection and output settings shared by every command.
type app struct {
	addr    string
	json    bool
	timeout time.Duration
	in      io.Reader

	dial func(ctx context.Context, addr string) (*grpc.ClientConn, error)
	conn *grpc.ClientConn
}

func main() {
	a := &app{in: os.Stdin, dial: blockingDial}
	if err := newRootCommand(a).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func blockingDial(ctx context.Context, addr string) (*grpc.ClientConn, error) {
	return grpcurl.BlockingDial(ctx, "tcp", addr, insecure.NewCredentials())
}

func newRootCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "robosim-cli",
		Short:        "Drive a robosim robot over gRPC",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if a.conn != nil {
				return nil
			}
			if a.addr == "" {
				a.addr = resolveAddr()
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout)
			defer cancel()
			conn, err := a.dial(ctx, a.addr)
			if err != nil {
				return fmt.Errorf("dial %s: %w", a.addr, err)
			}
			a.conn = conn
			return nil
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if a.conn == nil {
				return nil
			}
			return a.conn.Close()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.addr, "addr", "", "gRPC address (default: $ROBOSIM_GRPC_ADDR, then config, then localhost:9000)")
	flags.BoolVar(&a.json, "json", false, "Print replies as JSON")
	flags.DurationVar(&a.timeout, "timeout", defaultTimeout, "Timeout for unary calls")

	cmd.AddCommand(
		newStopCommand(a),
		newGoToCommand(a),
		newModeCommand(a),
		newTelemetryCommand(a),
		newMetadataCommand(a),
		newMoveCommand(a),
		newCapabilitiesCommand(a),
		newServicesCommand(a),
		newHealthCommand(a),
	)
	return cmd
}

// callContext bounds a unary call by the configured timeout.
func (a *app) callContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	timeout := a.timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return context.WithTimeout(cmd.Context(), timeout)
}

func (a *app) output(cmd *cobra.Command) outputMode {
	return outputMode{json: a.json, w: cmd.OutOrStdout()}
}
