// Package domain holds the stopwatch state machine behind the timer screen.
//
// Ticks are cooperative: the caller schedules a single one-second tick per
// chain and asks Tick whether to schedule the next one. Start opens a new
// chain; ticks carrying an older chain number are ignored, so a pause
// followed by a quick restart never counts a second twice.
package domain

import "fmt"

type State int

const (
	Stopped State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Chain identifies one run of self-rescheduling ticks.
type Chain uint64

type Stopwatch struct {
	running bool
	elapsed uint64
	chain   Chain
}

func New() *Stopwatch {
	return &Stopwatch{}
}

func (s *Stopwatch) State() State {
	if s.running {
		return Running
	}
	return Stopped
}

func (s *Stopwatch) Running() bool { return s.running }

func (s *Stopwatch) Elapsed() uint64 { return s.elapsed }

// Start switches to Running and returns the chain the caller must arm a tick
// for. armed is false when the stopwatch was already running; nothing changes
// in that case.
func (s *Stopwatch) Start() (chain Chain, armed bool) {
	if s.running {
		return s.chain, false
	}
	s.running = true
	s.chain++
	return s.chain, true
}

// Tick advances by one second if chain is live and reports whether the
// caller should arm the next tick.
func (s *Stopwatch) Tick(chain Chain) (rearm bool) {
	if !s.running || chain != s.chain {
		return false
	}
	s.elapsed++
	return true
}

// Pause keeps the elapsed count.
func (s *Stopwatch) Pause() {
	s.running = false
}

func (s *Stopwatch) Reset() {
	s.running = false
	s.elapsed = 0
}

func (s *Stopwatch) Display() string {
	return Format(s.elapsed)
}

// Format renders seconds as HH:MM:SS. Hours are not capped and widen past 99.
func Format(seconds uint64) string {
	hrs := seconds / 3600
	mins := (seconds % 3600) / 60
	secs := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hrs, mins, secs)
}
