package gesture

import (
	"maps"
	"slices"
)

// mousePointerID is the pointer id of the mouse; touches are numbered from
// touchPointerBase upwards.
const (
	mousePointerID   = 0
	touchPointerBase = 1
)

// TouchSample is the position of one touch in a polled frame.
type TouchSample struct {
	ID   int
	X, Y float64
}

// Sample is the pointer state observed in one polled frame.
type Sample struct {
	CursorX, CursorY float64
	Buttons          [3]bool // left, middle, right
	Touches          []TouchSample
}

// Sampler turns a sequence of polled samples into pointer events. Within a
// frame the mouse is reported before touches, and presses before moves
// before releases.
type Sampler struct {
	prev    Sample
	started bool
	touches map[int]TouchSample
}

// NewSampler returns a Sampler with no history.
func NewSampler() *Sampler {
	return &Sampler{touches: map[int]TouchSample{}}
}

// Next appends the events that lead from the previous sample to cur.
func (s *Sampler) Next(dst []PointerEvent, cur Sample) []PointerEvent {
	if !s.started {
		s.prev.CursorX, s.prev.CursorY = cur.CursorX, cur.CursorY
		s.started = true
	}
	dst = s.mouse(dst, cur)
	dst = s.touch(dst, cur.Touches)
	s.prev = cur
	return dst
}

func (s *Sampler) mouse(dst []PointerEvent, cur Sample) []PointerEvent {
	ev := PointerEvent{ID: mousePointerID, Type: PointerMouse, X: cur.CursorX, Y: cur.CursorY}
	for b, down := range cur.Buttons {
		if down && !s.prev.Buttons[b] {
			e := ev
			e.Phase, e.Button = PhaseDown, b
			dst = append(dst, e)
		}
	}
	if dx, dy := cur.CursorX-s.prev.CursorX, cur.CursorY-s.prev.CursorY; dx != 0 || dy != 0 {
		e := ev
		e.Phase, e.Button, e.DX, e.DY = PhaseMove, NoButton, dx, dy
		dst = append(dst, e)
	}
	for b, down := range cur.Buttons {
		if !down && s.prev.Buttons[b] {
			e := ev
			e.Phase, e.Button = PhaseUp, b
			dst = append(dst, e)
		}
	}
	return dst
}

func (s *Sampler) touch(dst []PointerEvent, cur []TouchSample) []PointerEvent {
	seen := make(map[int]bool, len(cur))
	for _, t := range cur {
		seen[t.ID] = true
		ev := PointerEvent{ID: touchPointerBase + t.ID, Type: PointerTouch, Button: NoButton, X: t.X, Y: t.Y}
		last, ok := s.touches[t.ID]
		switch {
		case !ok:
			ev.Phase = PhaseDown
			dst = append(dst, ev)
		case last.X != t.X || last.Y != t.Y:
			ev.Phase, ev.DX, ev.DY = PhaseMove, t.X-last.X, t.Y-last.Y
			dst = append(dst, ev)
		}
		s.touches[t.ID] = t
	}
	// Released touches go up in id order.
	for _, id := range slices.Sorted(maps.Keys(s.touches)) {
		if seen[id] {
			continue
		}
		last := s.touches[id]
		dst = append(dst, PointerEvent{
			Phase: PhaseUp, ID: touchPointerBase + id, Type: PointerTouch,
			Button: NoButton, X: last.X, Y: last.Y,
		})
		delete(s.touches, id)
	}
	return dst
}
