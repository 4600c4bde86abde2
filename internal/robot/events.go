package robot

// Command names reported in events.
const (
	CommandStop     = "stop"
	CommandNavigate = "goto"
	CommandSetMode  = "set_mode"
	CommandControl  = "control"
)

// Event describes one handled command. Header is zero for control frames,
// which are not stamped. State is captured under the robot lock right after
// the command was applied.
type Event struct {
	Command string
	Outcome string
	Header  Header
	State   State
	Serial  string
}

// Observer receives events after the robot lock is released, one at a time
// and in the order the commands took effect. Observe must not block.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

func (f ObserverFunc) Observe(e Event) { f(e) }

// unlockAndEmit captures the state for e, releases the robot lock and
// notifies observers. Must be called with r.mu held. emitMu is taken before
// r.mu is released so events leave in the same order as the state changes.
func (r *Robot) unlockAndEmit(e Event) {
	e.State = r.stateLocked()
	e.Serial = r.identity.SerialID
	r.emitMu.Lock()
	r.mu.Unlock()
	defer r.emitMu.Unlock()

	for _, o := range r.observers {
		o.Observe(e)
	}
}
