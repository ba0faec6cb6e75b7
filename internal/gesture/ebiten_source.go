//go:build ebiten

package gesture

import "github.com/hajimehoshi/ebiten/v2"

var ebitenButtons = [3]ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonMiddle,
	ebiten.MouseButtonRight,
}

// EbitenSource polls ebiten's mouse and touch state once per update and
// dispatches the resulting events to a region.
type EbitenSource struct {
	rec      *Recognizer
	region   RegionID
	sampler  *Sampler
	touchIDs []ebiten.TouchID
	events   []PointerEvent
}

// NewEbitenSource binds a source to region id of rec.
func NewEbitenSource(rec *Recognizer, id RegionID) *EbitenSource {
	return &EbitenSource{rec: rec, region: id, sampler: NewSampler()}
}

// Poll samples input and dispatches the events. It must be called from the
// game's Update.
func (s *EbitenSource) Poll() {
	var cur Sample
	mx, my := ebiten.CursorPosition()
	cur.CursorX, cur.CursorY = float64(mx), float64(my)
	for i, b := range ebitenButtons {
		cur.Buttons[i] = ebiten.IsMouseButtonPressed(b)
	}

	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	for _, id := range s.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		cur.Touches = append(cur.Touches, TouchSample{ID: int(id), X: float64(tx), Y: float64(ty)})
	}

	// An ebiten window has no platform context menu, so the source never
	// emits PhaseContextMenu and Dispatch's suppression result is unused.
	s.events = s.sampler.Next(s.events[:0], cur)
	for _, ev := range s.events {
		s.rec.Dispatch(s.region, ev)
	}
}
