package wire

import (
	"math"
	"testing"
	"time"

	robotv1 "github.com/joshp123/robosim/api/robot/v1"
	"github.com/joshp123/robosim/internal/robot"
)

func TestModeMapping(t *testing.T) {
	for _, m := range []robot.Mode{robot.ModeUnknown, robot.ModeManual, robot.ModeGuided} {
		if got := ModeFromWire(Mode(m)); got != m {
			t.Fatalf("mode %s did not survive the wire: %s", m, got)
		}
		if ShortName(Mode(m).String(), "MODE_") != m.String() {
			t.Fatalf("mode names diverge: %s vs %s", Mode(m), m)
		}
	}
	if got := ModeFromWire(robotv1.Mode(42)); got != robot.ModeUnknown {
		t.Fatalf("out-of-range mode must map to UNKNOWN, got %s", got)
	}
}

func TestGoToResultNames(t *testing.T) {
	for _, r := range []robot.NavigateResult{robot.NavigateUndefined, robot.NavigateSuccess, robot.NavigateCannotMove, robot.NavigateInvalidCoordinates} {
		if ShortName(GoToResult(r).String(), "GO_TO_RESULT_") != r.String() {
			t.Fatalf("result names diverge: %s vs %s", GoToResult(r), r)
		}
	}
}

func TestArmStateMapping(t *testing.T) {
	for _, a := range []robot.ArmState{robot.ArmUnknown, robot.ArmOpen, robot.ArmClosed} {
		if got := ArmStateFromWire(ArmState(a)); got != a {
			t.Fatalf("arm state %s did not survive the wire: %s", a, got)
		}
	}
}

func TestHeader(t *testing.T) {
	ts := time.Date(2026, 3, 1, 12, 0, 0, 500, time.UTC)
	h := Header(robot.Header{UID: "00000000000000000042", Timestamp: ts})
	if h.GetUid() != "00000000000000000042" || !h.GetTimestamp().AsTime().Equal(ts) {
		t.Fatalf("unexpected header: %v", h)
	}
	if RequestUID(nil) != "" {
		t.Fatalf("nil header must yield empty uid")
	}
}

func TestFrame(t *testing.T) {
	got := Frame(&robotv1.ControlFrame{XAxis: 1.5, YAxis: -2, LeftArmCommand: robotv1.ArmState_ARM_STATE_CLOSED})
	want := robot.Frame{XAxis: 1.5, YAxis: -2, Left: robot.ArmClosed, Right: robot.ArmUnknown}
	if got != want {
		t.Fatalf("unexpected frame: %+v", got)
	}
}

func TestParseCoordinate(t *testing.T) {
	cases := map[string]float64{"3": 3, " 4.5 ": 4.5, "-1": -1, "0": 0}
	for in, want := range cases {
		if got := ParseCoordinate(in); got != want {
			t.Fatalf("ParseCoordinate(%q) = %v, want %v", in, got, want)
		}
	}
	for _, in := range []string{"north", "", "1,5"} {
		if got := ParseCoordinate(in); !math.IsNaN(got) {
			t.Fatalf("ParseCoordinate(%q) = %v, want NaN", in, got)
		}
	}
}

func TestMalformedTargetNavigatesUndefined(t *testing.T) {
	r, err := robot.New(robot.Config{
		Templates:   []robot.Template{{Name: "Arnie", Model: "T-800", Description: "GOOD"}},
		UIDStartMax: 10,
		Seed:        1,
	})
	if err != nil {
		t.Fatalf("robot.New: %v", err)
	}
	r.SetMode(robot.ModeGuided)

	x, y := Target(&robotv1.GoToRequest{XCoord: ParseCoordinate("north"), YCoord: 2})
	if got := GoToResult(r.Navigate(x, y).Result); got != robotv1.GoToResult_GO_TO_RESULT_UNDEFINED {
		t.Fatalf("expected UNDEFINED, got %s", got)
	}
}
