package core

import (
	"strconv"
	"time"
)

// DefaultTickInterval is the simulation cadence used when none is configured (20Hz).
const DefaultTickInterval = time.Second / 20

// Clock reports the current time. Tests substitute a manual clock.
type Clock interface {
	Now() time.Time
}

type wallClock struct{}

func (wallClock) Now() time.Time { return time.Now() }

// WallClock returns a Clock backed by time.Now.
func WallClock() Clock { return wallClock{} }

// Scheduler throttles simulation ticks to at most one per interval.
//
// Fire is meant to be called from a repeating timer that runs more often than
// the interval. Late fires are not compensated: excess elapsed time is dropped
// and missed ticks are never replayed.
type Scheduler struct {
	target   Ticker
	clock    Clock
	interval time.Duration
	last     time.Time
	running  bool
}

// NewScheduler constructs a paused Scheduler driving target. A non-positive
// interval selects DefaultTickInterval and a nil clock selects the wall clock.
func NewScheduler(target Ticker, interval time.Duration, clock Clock) *Scheduler {
	if clock == nil {
		clock = WallClock()
	}
	s := &Scheduler{target: target, clock: clock}
	s.SetInterval(interval)
	return s
}

// SetInterval changes the tick interval. It is safe to call from the main loop.
func (s *Scheduler) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	s.interval = interval
}

// Interval returns the configured tick interval.
func (s *Scheduler) Interval() time.Duration { return s.interval }

// Running reports whether Fire may tick.
func (s *Scheduler) Running() bool { return s.running }

// Start resumes ticking. Timing restarts from now rather than the last tick.
func (s *Scheduler) Start() {
	s.running = true
	s.last = s.clock.Now()
}

// Pause stops ticking until the next Start.
func (s *Scheduler) Pause() {
	s.running = false
}

// Fire ticks the target when running and more than one interval has elapsed
// since the previous tick. It reports whether a tick happened.
func (s *Scheduler) Fire() bool {
	if !s.running || s.target == nil {
		return false
	}
	now := s.clock.Now()
	if now.Sub(s.last) <= s.interval {
		return false
	}
	s.target.Tick()
	s.last = now
	return true
}

// Parameters reports the tick cadence for display.
func (s *Scheduler) Parameters() ParameterSnapshot {
	return ParameterSnapshot{Groups: []ParameterGroup{{
		Name: "Timing",
		Params: []Parameter{
			{Key: "interval_ms", Label: "Interval (ms)", Type: ParamTypeInt, Value: strconv.FormatInt(s.interval.Milliseconds(), 10)},
			{Key: "running", Label: "Running", Type: ParamTypeBool, Value: strconv.FormatBool(s.running)},
		},
	}}}
}
