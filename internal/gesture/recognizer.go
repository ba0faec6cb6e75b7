package gesture

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrNoRegion is returned when a registration needs an active region and
	// none was set.
	ErrNoRegion = errors.New("gesture: no region set")
	// ErrUnknownGesture is returned for gesture names without a recognizer.
	ErrUnknownGesture = errors.New("gesture: unknown gesture")
)

// Gesture names a semantic action recognized from pointer input.
type Gesture string

const (
	// Tap fires with the release coordinates of a press that did not move.
	Tap Gesture = "tap"
	// Pan fires with the movement delta of a right-button or touch drag.
	Pan Gesture = "pan"
)

// Callback receives gesture coordinates: (x, y) for Tap, (dx, dy) for Pan.
type Callback func(x, y float64)

var gestureRules = map[Gesture][]rule{
	Tap: tapRules,
	Pan: panRules,
}

// RegionID is the stable handle of an input region.
type RegionID uuid.UUID

// NewRegionID returns a fresh region handle.
func NewRegionID() RegionID { return RegionID(uuid.New()) }

func (id RegionID) String() string { return uuid.UUID(id).String() }

// regionState is the pointer bookkeeping shared by every gesture machine of
// one region.
type regionState struct {
	touches   []PointerEvent // active touches in arrival order
	buttons   buttonSet
	callbacks map[Gesture][]Callback
	machines  map[Gesture]*machine
	attached  []Gesture
	monitored bool
	noMenu    bool
}

func newRegionState() *regionState {
	return &regionState{
		callbacks: map[Gesture][]Callback{},
		machines:  map[Gesture]*machine{},
	}
}

func (r *regionState) touchIndex(id int) int {
	for i, t := range r.touches {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// track records pointer-down and pointer-move state.
func (r *regionState) track(ev PointerEvent) {
	switch ev.Type {
	case PointerTouch:
		i := r.touchIndex(ev.ID)
		switch {
		case i >= 0:
			r.touches[i] = ev
		case ev.Phase == PhaseDown:
			r.touches = append(r.touches, ev)
		}
	case PointerMouse, PointerPen:
		if ev.Phase == PhaseDown && ev.Button != NoButton {
			r.buttons.add(ev.Button)
		}
	}
}

// untrack forgets the pointer or button released by ev.
func (r *regionState) untrack(ev PointerEvent) {
	switch ev.Type {
	case PointerTouch:
		if i := r.touchIndex(ev.ID); i >= 0 {
			r.touches = append(r.touches[:i], r.touches[i+1:]...)
		}
	case PointerMouse, PointerPen:
		r.buttons.remove(ev.Button)
	}
}

// Recognizer turns pointer events into tap and pan callbacks. Each region
// keeps its own pointer state; registrations apply to the active region.
//
// A Recognizer is not safe for concurrent use; events, registrations and
// callbacks are expected on a single goroutine.
type Recognizer struct {
	regions   map[RegionID]*regionState
	active    RegionID
	hasActive bool
}

// NewRecognizer returns a Recognizer with no regions.
func NewRecognizer() *Recognizer {
	return &Recognizer{regions: map[RegionID]*regionState{}}
}

// SetRegion makes id the target of subsequent On and DisableContextMenu
// calls, creating its state on first use. Setting the same region again
// keeps its state and does not duplicate tracking.
func (r *Recognizer) SetRegion(id RegionID) {
	if _, ok := r.regions[id]; !ok {
		st := newRegionState()
		st.monitored = true
		r.regions[id] = st
	}
	r.active = id
	r.hasActive = true
}

// Unregister drops the state of id. Events for it are ignored afterwards.
func (r *Recognizer) Unregister(id RegionID) {
	delete(r.regions, id)
	if r.hasActive && r.active == id {
		r.hasActive = false
	}
}

// Active returns the active region.
func (r *Recognizer) Active() (RegionID, bool) {
	return r.active, r.hasActive
}

func (r *Recognizer) activeState() (*regionState, error) {
	if !r.hasActive {
		return nil, ErrNoRegion
	}
	st, ok := r.regions[r.active]
	if !ok {
		return nil, ErrNoRegion
	}
	return st, nil
}

// On registers cb for gesture g on the active region.
func (r *Recognizer) On(g Gesture, cb Callback) error {
	st, err := r.activeState()
	if err != nil {
		return err
	}
	rules, ok := gestureRules[g]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownGesture, g)
	}
	st.callbacks[g] = append(st.callbacks[g], cb)
	if _, attached := st.machines[g]; !attached {
		st.machines[g] = newMachine(rules)
		st.attached = append(st.attached, g)
	}
	return nil
}

// DisableContextMenu makes Dispatch report context-menu events on the active
// region as handled, so a right-drag pan does not open a menu on release.
func (r *Recognizer) DisableContextMenu() error {
	st, err := r.activeState()
	if err != nil {
		return err
	}
	st.noMenu = true
	return nil
}

// Dispatch feeds ev to region id. It reports whether the host should
// suppress its default handling of the event.
func (r *Recognizer) Dispatch(id RegionID, ev PointerEvent) bool {
	st, ok := r.regions[id]
	if !ok {
		return false
	}
	if ev.Phase == PhaseContextMenu {
		return st.noMenu
	}

	if st.monitored {
		switch ev.Phase {
		case PhaseDown, PhaseMove:
			st.track(ev)
		case PhaseUp, PhaseCancel:
			st.untrack(ev)
		}
	}

	for _, g := range st.attached {
		if st.machines[g].step(st, ev) {
			r.fire(st, g, ev)
		}
	}
	return false
}

func (r *Recognizer) fire(st *regionState, g Gesture, ev PointerEvent) {
	x, y := ev.X, ev.Y
	if g == Pan {
		x, y = ev.DX, ev.DY
		// The first active touch drives the pan; an axis it did not move
		// along falls back to the event's own delta.
		if len(st.touches) > 0 {
			if first := st.touches[0]; first.DX != 0 {
				x = first.DX
			}
			if first := st.touches[0]; first.DY != 0 {
				y = first.DY
			}
		}
	}
	callbacks := append([]Callback(nil), st.callbacks[g]...)
	for _, cb := range callbacks {
		if cb != nil {
			cb(x, y)
		}
	}
}

// State reports the machine state of gesture g on region id. Unattached
// gestures report Idle.
func (r *Recognizer) State(id RegionID, g Gesture) State {
	st, ok := r.regions[id]
	if !ok {
		return Idle
	}
	m, ok := st.machines[g]
	if !ok {
		return Idle
	}
	return m.state
}

// ActiveTouches returns the number of touches currently down on region id.
func (r *Recognizer) ActiveTouches(id RegionID) int {
	if st, ok := r.regions[id]; ok {
		return len(st.touches)
	}
	return 0
}

// ButtonHeld reports whether mouse button b is held on region id.
func (r *Recognizer) ButtonHeld(id RegionID, b int) bool {
	if st, ok := r.regions[id]; ok {
		return st.buttons.has(b)
	}
	return false
}
