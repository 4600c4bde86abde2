package robot

import "fmt"

// Mode is the robot's operating mode.
type Mode int

const (
	ModeUnknown Mode = iota
	ModeManual
	ModeGuided
)

var modeNames = map[Mode]string{
	ModeUnknown: "UNKNOWN",
	ModeManual:  "MANUAL",
	ModeGuided:  "GUIDED",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode resolves a mode name. Unrecognised names map to ModeUnknown.
func ParseMode(name string) (Mode, bool) {
	for mode, candidate := range modeNames {
		if candidate == name {
			return mode, true
		}
	}
	return ModeUnknown, false
}

// ArmState is the commanded state of one arm actuator.
type ArmState int

const (
	ArmUnknown ArmState = iota
	ArmOpen
	ArmClosed
)

var armNames = map[ArmState]string{
	ArmUnknown: "UNKNOWN",
	ArmOpen:    "OPEN",
	ArmClosed:  "CLOSED",
}

func (a ArmState) String() string {
	if name, ok := armNames[a]; ok {
		return name
	}
	return fmt.Sprintf("ArmState(%d)", int(a))
}

// ParseArmState resolves an arm state name.
func ParseArmState(name string) (ArmState, bool) {
	for state, candidate := range armNames {
		if candidate == name {
			return state, true
		}
	}
	return ArmUnknown, false
}

// StopStatus is the outcome of an emergency stop.
type StopStatus int

const (
	StopSuccess StopStatus = iota
	StopFail
)

func (s StopStatus) String() string {
	if s == StopFail {
		return "FAIL"
	}
	return "SUCCESS"
}

// NavigateResult is the outcome of a GoTo command.
type NavigateResult int

const (
	NavigateUndefined NavigateResult = iota
	NavigateSuccess
	NavigateCannotMove
	NavigateInvalidCoordinates
)

func (r NavigateResult) String() string {
	switch r {
	case NavigateSuccess:
		return "SUCCESS"
	case NavigateCannotMove:
		return "CANNOT_MOVE"
	case NavigateInvalidCoordinates:
		return "INVALID_COORDINATES"
	default:
		return "UNDEFINED"
	}
}

// Position is a point on the robot's 2D floor plane.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Arms holds the state of both arm actuators.
type Arms struct {
	Left  ArmState `json:"left"`
	Right ArmState `json:"right"`
}

// Frame is one manual-control input.
type Frame struct {
	XAxis float64
	YAxis float64
	Left  ArmState
	Right ArmState
}

// StopReply is returned by EmergencyStop.
type StopReply struct {
	Header Header
	Status StopStatus
}

// NavigateReply is returned by Navigate.
type NavigateReply struct {
	Header Header
	Result NavigateResult
}

// SetModeReply is returned by SetMode.
type SetModeReply struct {
	Header  Header
	Success bool
}

// TelemetryReply is a stamped snapshot of the mutable robot state.
type TelemetryReply struct {
	Header   Header
	Mode     Mode
	Position Position
	Arms     Arms
}
