package robot

import "math"

// EmergencyStop always disengages the active mode. The stop itself fails
// one time in StopFailureOneIn.
func (r *Robot) EmergencyStop() StopReply {
	r.mu.Lock()
	r.mode = ModeUnknown
	status := StopSuccess
	if r.failures.OneIn(r.stopOneIn) {
		status = StopFail
	}
	reply := StopReply{Header: r.nextHeaderLocked(), Status: status}
	r.unlockAndEmit(Event{Command: CommandStop, Outcome: status.String(), Header: reply.Header})
	return reply
}

// Navigate teleports the robot to (x, y). The mode gate is checked before
// the coordinates.
func (r *Robot) Navigate(x, y float64) NavigateReply {
	r.mu.Lock()
	result := navigateDecision(r.mode, x, y)
	if result == NavigateSuccess {
		r.position = Position{X: x, Y: y}
	}
	reply := NavigateReply{Header: r.nextHeaderLocked(), Result: result}
	r.unlockAndEmit(Event{Command: CommandNavigate, Outcome: result.String(), Header: reply.Header})
	return reply
}

func navigateDecision(mode Mode, x, y float64) NavigateResult {
	switch {
	case mode != ModeGuided:
		return NavigateCannotMove
	case !isFinite(x) || !isFinite(y):
		return NavigateUndefined
	case x < 0 || y < 0:
		return NavigateInvalidCoordinates
	default:
		return NavigateSuccess
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// SetMode commits any mode except ModeUnknown.
func (r *Robot) SetMode(mode Mode) SetModeReply {
	r.mu.Lock()
	ok := mode != ModeUnknown
	if ok {
		r.mode = mode
	}
	reply := SetModeReply{Header: r.nextHeaderLocked(), Success: ok}
	outcome := "rejected"
	if ok {
		outcome = "accepted"
	}
	r.unlockAndEmit(Event{Command: CommandSetMode, Outcome: outcome, Header: reply.Header})
	return reply
}

// ApplyControl applies one manual-control frame if the robot is in
// ModeManual at this instant, and reports whether it did.
func (r *Robot) ApplyControl(f Frame) bool {
	r.mu.Lock()
	if r.mode != ModeManual {
		r.mu.Unlock()
		return false
	}
	r.position = Position{X: f.XAxis, Y: f.YAxis}
	r.arms = Arms{Left: f.Left, Right: f.Right}
	r.unlockAndEmit(Event{Command: CommandControl, Outcome: "applied"})
	return true
}

// Telemetry returns a stamped snapshot of the mutable state.
func (r *Robot) Telemetry() TelemetryReply {
	r.mu.Lock()
	defer r.mu.Unlock()
	return TelemetryReply{
		Header:   r.nextHeaderLocked(),
		Mode:     r.mode,
		Position: r.position,
		Arms:     r.arms,
	}
}
