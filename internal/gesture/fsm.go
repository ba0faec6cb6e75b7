package gesture

// State is the state of one gesture machine.
type State uint8

const (
	Idle State = iota
	Armed
	Active

	anyState State = 0xff
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Armed:
		return "armed"
	case Active:
		return "active"
	default:
		return "unknown"
	}
}

// guard inspects the region after tracking has been updated for ev.
type guard func(r *regionState, ev PointerEvent) bool

// rule is one row of a transition table. The first matching row wins.
type rule struct {
	from State
	on   Phase
	when guard
	to   State
	emit bool
}

// machine is a finite-state machine for one (region, gesture) pair.
type machine struct {
	state State
	rules []rule
}

// step advances the machine and reports whether the gesture fires.
func (m *machine) step(r *regionState, ev PointerEvent) bool {
	for _, rl := range m.rules {
		if rl.on != ev.Phase {
			continue
		}
		if rl.from != anyState && rl.from != m.state {
			continue
		}
		if rl.when != nil && !rl.when(r, ev) {
			continue
		}
		m.state = rl.to
		return rl.emit
	}
	return false
}

func tapCandidate(r *regionState, _ PointerEvent) bool {
	return r.buttons.has(ButtonLeft) || len(r.touches) == 1
}

func panCandidate(r *regionState, _ PointerEvent) bool {
	return r.buttons.has(ButtonRight) || len(r.touches) > 0
}

func panReleased(r *regionState, _ PointerEvent) bool {
	return !r.buttons.has(ButtonRight) && len(r.touches) == 0
}

// A tap is a press with no movement before release.
var tapRules = []rule{
	{from: anyState, on: PhaseDown, when: tapCandidate, to: Armed},
	{from: anyState, on: PhaseDown, to: Idle},
	{from: anyState, on: PhaseMove, to: Idle},
	{from: Armed, on: PhaseUp, to: Idle, emit: true},
	{from: anyState, on: PhaseUp, to: Idle},
	{from: anyState, on: PhaseCancel, to: Idle},
}

// A pan survives until neither the right button nor any touch remains.
var panRules = []rule{
	{from: anyState, on: PhaseDown, when: panCandidate, to: Active},
	{from: anyState, on: PhaseDown, to: Idle},
	{from: Active, on: PhaseMove, to: Active, emit: true},
	{from: Active, on: PhaseUp, when: panReleased, to: Idle},
	{from: Active, on: PhaseCancel, when: panReleased, to: Idle},
}

func newMachine(rules []rule) *machine {
	return &machine{state: Idle, rules: rules}
}
