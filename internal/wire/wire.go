// Package wire converts between robot domain values and robot.v1 messages.
package wire

import (
	"math"
	"strconv"
	"strings"

	"google.golang.org/protobuf/types/known/timestamppb"

	robotv1 "github.com/joshp123/robosim/api/robot/v1"
	"github.com/joshp123/robosim/internal/robot"
)

func Header(h robot.Header) *robotv1.Header {
	return &robotv1.Header{Uid: h.UID, Timestamp: timestamppb.New(h.Timestamp)}
}

func StopStatus(s robot.StopStatus) robotv1.StopStatus {
	if s == robot.StopFail {
		return robotv1.StopStatus_STOP_STATUS_FAIL
	}
	return robotv1.StopStatus_STOP_STATUS_SUCCESS
}

func GoToResult(r robot.NavigateResult) robotv1.GoToResult {
	switch r {
	case robot.NavigateSuccess:
		return robotv1.GoToResult_GO_TO_RESULT_SUCCESS
	case robot.NavigateCannotMove:
		return robotv1.GoToResult_GO_TO_RESULT_CANNOT_MOVE
	case robot.NavigateInvalidCoordinates:
		return robotv1.GoToResult_GO_TO_RESULT_INVALID_COORDINATES
	default:
		return robotv1.GoToResult_GO_TO_RESULT_UNDEFINED
	}
}

func Mode(m robot.Mode) robotv1.Mode {
	switch m {
	case robot.ModeManual:
		return robotv1.Mode_MODE_MANUAL
	case robot.ModeGuided:
		return robotv1.Mode_MODE_GUIDED
	default:
		return robotv1.Mode_MODE_UNKNOWN
	}
}

func ModeFromWire(m robotv1.Mode) robot.Mode {
	switch m {
	case robotv1.Mode_MODE_MANUAL:
		return robot.ModeManual
	case robotv1.Mode_MODE_GUIDED:
		return robot.ModeGuided
	default:
		return robot.ModeUnknown
	}
}

func ArmState(a robot.ArmState) robotv1.ArmState {
	switch a {
	case robot.ArmOpen:
		return robotv1.ArmState_ARM_STATE_OPEN
	case robot.ArmClosed:
		return robotv1.ArmState_ARM_STATE_CLOSED
	default:
		return robotv1.ArmState_ARM_STATE_UNKNOWN
	}
}

func ArmStateFromWire(a robotv1.ArmState) robot.ArmState {
	switch a {
	case robotv1.ArmState_ARM_STATE_OPEN:
		return robot.ArmOpen
	case robotv1.ArmState_ARM_STATE_CLOSED:
		return robot.ArmClosed
	default:
		return robot.ArmUnknown
	}
}

func Frame(f *robotv1.ControlFrame) robot.Frame {
	return robot.Frame{
		XAxis: f.GetXAxis(),
		YAxis: f.GetYAxis(),
		Left:  ArmStateFromWire(f.GetLeftArmCommand()),
		Right: ArmStateFromWire(f.GetRightArmCommand()),
	}
}

// Target returns the requested coordinates. Doubles arrive as-is, so NaN
// and infinities reach the robot and come back as UNDEFINED.
func Target(req *robotv1.GoToRequest) (x, y float64) {
	return req.GetXCoord(), req.GetYCoord()
}

// ParseCoordinate reads a coordinate typed by a user. Malformed input
// becomes NaN so the robot answers UNDEFINED instead of the call failing.
func ParseCoordinate(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

func RequestUID(h *robotv1.Header) string {
	return h.GetUid()
}

// ShortName drops the enum type prefix from a wire enum name, so
// MODE_GUIDED reads as GUIDED.
func ShortName(name, prefix string) string {
	return strings.TrimPrefix(name, prefix)
}
