// Package robot holds the simulated robot's state machine: identity, mode,
// position, arm actuators and message sequencing, plus the command logic
// that mutates them.
package robot

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"
)

// DefaultStopFailureOneIn is the emergency stop failure denominator.
const DefaultStopFailureOneIn = 5

// Config is the runtime configuration needed to build a Robot.
type Config struct {
	Templates       []Template
	InitialPosition Position
	UIDStartMin     uint64
	UIDStartMax     uint64
	// StopFailureOneIn makes EmergencyStop fail one time in N.
	StopFailureOneIn int
	// Seed for the robot's random source. Zero picks a random seed.
	Seed uint64
}

// State is a consistent copy of the robot's mutable fields.
type State struct {
	Mode     Mode     `json:"mode"`
	Position Position `json:"position"`
	Arms     Arms     `json:"arms"`
}

// Robot owns all mutable robot state. A single mutex guards every
// read-decide-write sequence; header allocation happens under the same lock.
type Robot struct {
	identity  Identity
	stopOneIn int
	now       func() time.Time
	observers []Observer
	emitMu    sync.Mutex

	mu       sync.Mutex
	mode     Mode
	position Position
	arms     Arms
	seq      sequencer
	failures FailureInjector
}

// Option customises a Robot at construction.
type Option func(*Robot)

// WithClock overrides the wall clock used for headers and the birthday.
func WithClock(now func() time.Time) Option {
	return func(r *Robot) {
		if now != nil {
			r.now = now
		}
	}
}

// WithObserver registers an observer for state transitions.
func WithObserver(o Observer) Option {
	return func(r *Robot) {
		if o != nil {
			r.observers = append(r.observers, o)
		}
	}
}

// New builds a robot with a random identity drawn from cfg.Templates.
func New(cfg Config, opts ...Option) (*Robot, error) {
	if cfg.UIDStartMax <= cfg.UIDStartMin {
		return nil, fmt.Errorf("uid start range [%d, %d) is empty", cfg.UIDStartMin, cfg.UIDStartMax)
	}
	stopOneIn := cfg.StopFailureOneIn
	if stopOneIn == 0 {
		stopOneIn = DefaultStopFailureOneIn
	}
	if stopOneIn < 0 {
		return nil, fmt.Errorf("stop failure denominator must be positive, got %d", stopOneIn)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	r := &Robot{
		stopOneIn: stopOneIn,
		now:       time.Now,
		position:  cfg.InitialPosition,
		failures:  FailureInjector{rng: rng},
	}
	for _, opt := range opts {
		opt(r)
	}

	identity, err := newIdentity(rng, cfg.Templates, r.now())
	if err != nil {
		return nil, err
	}
	r.identity = identity
	r.seq.next = cfg.UIDStartMin + rng.Uint64N(cfg.UIDStartMax-cfg.UIDStartMin)

	return r, nil
}

// Metadata returns the robot's identity.
func (r *Robot) Metadata() Identity {
	return r.identity
}

// NextHeader allocates a header with the next message UID.
func (r *Robot) NextHeader() Header {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.nextHeaderLocked()
}

func (r *Robot) nextHeaderLocked() Header {
	return newHeader(r.seq.take(), r.now())
}

func (r *Robot) Mode() Mode {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mode
}

// ForceMode sets the mode without the rules SetMode applies.
func (r *Robot) ForceMode(mode Mode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mode = mode
}

func (r *Robot) Position() Position {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.position
}

func (r *Robot) SetPosition(x, y float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.position = Position{X: x, Y: y}
}

func (r *Robot) Arms() Arms {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.arms
}

func (r *Robot) SetArms(left, right ArmState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.arms = Arms{Left: left, Right: right}
}

// Snapshot returns the mutable state as one consistent copy.
func (r *Robot) Snapshot() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stateLocked()
}

// PeekUID returns the UID the next header will carry without consuming it.
func (r *Robot) PeekUID() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.seq.next
}

func (r *Robot) stateLocked() State {
	return State{Mode: r.mode, Position: r.position, Arms: r.arms}
}
