package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/encoding/protojson"

	robotv1 "github.com/joshp123/robosim/api/robot/v1"
)

const defaultFrameRate = 20

func newMoveCommand(a *app) *cobra.Command {
	var hz float64
	cmd := &cobra.Command{
		Use:   "move [frames.jsonl]",
		Short: "Stream manual-control frames (requires MANUAL mode)",
		Long: `move streams control frames read as protobuf JSON objects, one per line,
from the given file or stdin. Blank lines are skipped:

  {"x_axis": 1, "y_axis": 2, "left_arm_command": "ARM_STATE_OPEN", "right_arm_command": "ARM_STATE_CLOSED"}

Frames are paced at --rate per second; 0 sends as fast as possible.`,
		Example: `printf '{"x_axis":1,"y_axis":1}\n' | robosim-cli move`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := a.in
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			limit := rate.Inf
			if hz > 0 {
				limit = rate.Limit(hz)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			sent, err := streamFrames(ctx, a.conn, in, rate.NewLimiter(limit, 1))
			if err != nil {
				return err
			}
			if a.json {
				return a.output(cmd).printJSON(map[string]int{"frames_sent": sent})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "sent %d frames\n", sent)
			return nil
		},
	}
	cmd.Flags().Float64Var(&hz, "rate", defaultFrameRate, "Frames per second")
	return cmd
}

// streamFrames sends every frame decoded from in and reports how many were
// sent. Numbering in errors counts frames, not input lines.
func streamFrames(ctx context.Context, conn grpc.ClientConnInterface, in io.Reader, limiter *rate.Limiter) (int, error) {
	stream, err := robotv1.NewRCServiceClient(conn).Move(ctx)
	if err != nil {
		return 0, fmt.Errorf("open control stream: %w", err)
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 4096), 1<<20)
	sent := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		frame := &robotv1.ControlFrame{}
		if err := protojson.Unmarshal([]byte(line), frame); err != nil {
			_, _ = stream.CloseAndRecv()
			return sent, fmt.Errorf("frame %d: %w", sent+1, err)
		}
		if err := limiter.Wait(ctx); err != nil {
			return sent, err
		}
		if err := stream.Send(frame); err != nil {
			if errors.Is(err, io.EOF) {
				_, err = stream.CloseAndRecv()
			}
			return sent, fmt.Errorf("send frame %d: %w", sent+1, err)
		}
		sent++
	}
	if err := scanner.Err(); err != nil {
		_, _ = stream.CloseAndRecv()
		return sent, fmt.Errorf("frame %d: %w", sent+1, err)
	}

	if _, err := stream.CloseAndRecv(); err != nil {
		return sent, fmt.Errorf("close control stream: %w", err)
	}
	return sent, nil
}
