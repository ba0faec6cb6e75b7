package gesture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	x, y float64
}

type harness struct {
	rec    *Recognizer
	region RegionID
	taps   []call
	pans   []call
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{rec: NewRecognizer(), region: NewRegionID()}
	h.rec.SetRegion(h.region)
	require.NoError(t, h.rec.On(Tap, func(x, y float64) { h.taps = append(h.taps, call{x, y}) }))
	require.NoError(t, h.rec.On(Pan, func(dx, dy float64) { h.pans = append(h.pans, call{dx, dy}) }))
	return h
}

func (h *harness) send(ev PointerEvent) bool { return h.rec.Dispatch(h.region, ev) }

func mouse(phase Phase, button int, x, y, dx, dy float64) PointerEvent {
	return PointerEvent{Phase: phase, ID: 1, Type: PointerMouse, Button: button, X: x, Y: y, DX: dx, DY: dy}
}

func touch(phase Phase, id int, x, y, dx, dy float64) PointerEvent {
	return PointerEvent{Phase: phase, ID: id, Type: PointerTouch, Button: NoButton, X: x, Y: y, DX: dx, DY: dy}
}

func TestLeftClickIsTap(t *testing.T) {
	h := newHarness(t)

	h.send(mouse(PhaseDown, ButtonLeft, 10, 20, 0, 0))
	h.send(mouse(PhaseUp, ButtonLeft, 11, 22, 0, 0))

	assert.Equal(t, []call{{11, 22}}, h.taps)
	assert.Empty(t, h.pans)
	assert.False(t, h.rec.ButtonHeld(h.region, ButtonLeft))
}

func TestMoveCancelsTap(t *testing.T) {
	h := newHarness(t)

	h.send(mouse(PhaseDown, ButtonLeft, 10, 20, 0, 0))
	h.send(mouse(PhaseMove, NoButton, 11, 20, 1, 0))
	h.send(mouse(PhaseUp, ButtonLeft, 11, 20, 0, 0))

	assert.Empty(t, h.taps)
	assert.Empty(t, h.pans, "left drag does not pan")
}

func TestRightDragPans(t *testing.T) {
	h := newHarness(t)

	h.send(mouse(PhaseDown, ButtonRight, 0, 0, 0, 0))
	h.send(mouse(PhaseMove, NoButton, 1, 0, 1, 0))
	h.send(mouse(PhaseMove, NoButton, 3, -1, 2, -1))
	h.send(mouse(PhaseMove, NoButton, 3, 4, 0, 5))
	assert.Equal(t, Active, h.rec.State(h.region, Pan))
	h.send(mouse(PhaseUp, ButtonRight, 3, 4, 0, 0))

	assert.Equal(t, []call{{1, 0}, {2, -1}, {0, 5}}, h.pans)
	assert.Empty(t, h.taps)
	assert.Equal(t, Idle, h.rec.State(h.region, Pan))

	h.send(mouse(PhaseMove, NoButton, 9, 9, 6, 5))
	assert.Len(t, h.pans, 3, "hover after release does not pan")
}

func TestRightClickWithoutMoveIsNotTap(t *testing.T) {
	h := newHarness(t)
	h.send(mouse(PhaseDown, ButtonRight, 5, 5, 0, 0))
	h.send(mouse(PhaseUp, ButtonRight, 5, 5, 0, 0))

	assert.Empty(t, h.taps)
	assert.Empty(t, h.pans)
}

func TestSingleTouchTap(t *testing.T) {
	h := newHarness(t)
	h.send(touch(PhaseDown, 7, 30, 40, 0, 0))
	assert.Equal(t, Armed, h.rec.State(h.region, Tap))
	h.send(touch(PhaseUp, 7, 30, 40, 0, 0))

	assert.Equal(t, []call{{30, 40}}, h.taps)
	assert.Equal(t, 0, h.rec.ActiveTouches(h.region))
}

func TestTwoFingerPanSurvivesLiftingOneFinger(t *testing.T) {
	h := newHarness(t)

	h.send(touch(PhaseDown, 1, 0, 0, 0, 0))
	h.send(touch(PhaseDown, 2, 50, 0, 0, 0))
	assert.Equal(t, Active, h.rec.State(h.region, Pan))
	assert.Equal(t, Idle, h.rec.State(h.region, Tap), "second finger disarms the tap")

	h.send(touch(PhaseMove, 1, 2, 1, 2, 1))
	h.send(touch(PhaseUp, 2, 50, 0, 0, 0))
	assert.Equal(t, Active, h.rec.State(h.region, Pan))
	assert.Equal(t, 1, h.rec.ActiveTouches(h.region))

	h.send(touch(PhaseMove, 1, 5, 1, 3, 0))
	h.send(touch(PhaseMove, 1, 5, 4, 0, 3))
	assert.Equal(t, []call{{2, 1}, {3, 0}, {0, 3}}, h.pans)

	h.send(touch(PhaseUp, 1, 5, 4, 0, 0))
	assert.Equal(t, Idle, h.rec.State(h.region, Pan))
	assert.Empty(t, h.taps)
}

func TestPanUsesFirstTouchDelta(t *testing.T) {
	h := newHarness(t)
	h.send(touch(PhaseDown, 1, 0, 0, 0, 0))
	h.send(touch(PhaseDown, 2, 10, 0, 0, 0))
	h.send(touch(PhaseMove, 1, 4, 0, 4, 0))
	h.send(touch(PhaseMove, 2, 19, 0, 9, 0))

	// The first touch's last recorded delta drives the pan.
	assert.Equal(t, []call{{4, 0}, {4, 0}}, h.pans)
}

func TestPanFallsBackToEventDeltaWhenFirstTouchIsStill(t *testing.T) {
	h := newHarness(t)
	h.send(touch(PhaseDown, 1, 0, 0, 0, 0))
	h.send(touch(PhaseDown, 2, 10, 0, 0, 0))
	h.send(touch(PhaseMove, 2, 15, 0, 5, 0))
	h.send(touch(PhaseMove, 2, 20, 0, 5, 0))
	assert.Equal(t, []call{{5, 0}, {5, 0}}, h.pans)

	// Each axis falls back on its own.
	h.send(touch(PhaseMove, 1, 3, 0, 3, 0))
	h.send(touch(PhaseMove, 2, 20, 7, 0, 7))
	assert.Equal(t, []call{{5, 0}, {5, 0}, {3, 0}, {3, 7}}, h.pans)
}

func TestPanHandsOffBetweenButtonAndTouch(t *testing.T) {
	h := newHarness(t)

	h.send(mouse(PhaseDown, ButtonRight, 0, 0, 0, 0))
	h.send(touch(PhaseDown, 3, 0, 0, 0, 0))
	h.send(mouse(PhaseUp, ButtonRight, 0, 0, 0, 0))
	assert.Equal(t, Active, h.rec.State(h.region, Pan), "touch keeps the pan alive")

	h.send(touch(PhaseMove, 3, 1, 1, 1, 1))
	assert.Equal(t, []call{{1, 1}}, h.pans)

	h.send(touch(PhaseCancel, 3, 1, 1, 0, 0))
	assert.Equal(t, Idle, h.rec.State(h.region, Pan))
}

func TestOnErrors(t *testing.T) {
	rec := NewRecognizer()
	assert.ErrorIs(t, rec.On(Tap, func(float64, float64) {}), ErrNoRegion)
	assert.ErrorIs(t, rec.DisableContextMenu(), ErrNoRegion)

	id := NewRegionID()
	rec.SetRegion(id)
	assert.ErrorIs(t, rec.On("pinch", func(float64, float64) {}), ErrUnknownGesture)

	rec.Unregister(id)
	_, ok := rec.Active()
	assert.False(t, ok)
	assert.ErrorIs(t, rec.On(Tap, func(float64, float64) {}), ErrNoRegion)
}

func TestRepeatedRegistrationDoesNotDuplicate(t *testing.T) {
	rec := NewRecognizer()
	id := NewRegionID()
	rec.SetRegion(id)
	rec.SetRegion(id)

	var first, second int
	require.NoError(t, rec.On(Tap, func(float64, float64) { first++ }))
	require.NoError(t, rec.On(Tap, func(float64, float64) { second++ }))

	rec.Dispatch(id, touch(PhaseDown, 1, 0, 0, 0, 0))
	rec.Dispatch(id, touch(PhaseDown, 1, 0, 0, 0, 0))
	assert.Equal(t, 1, rec.ActiveTouches(id), "a repeated down for the same pointer is tracked once")

	rec.Dispatch(id, touch(PhaseUp, 1, 0, 0, 0, 0))
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}

func TestRegionsAreIndependent(t *testing.T) {
	rec := NewRecognizer()
	a, b := NewRegionID(), NewRegionID()
	assert.NotEqual(t, a, b)

	var tapsA, tapsB int
	rec.SetRegion(a)
	require.NoError(t, rec.On(Tap, func(float64, float64) { tapsA++ }))
	rec.SetRegion(b)
	require.NoError(t, rec.On(Tap, func(float64, float64) { tapsB++ }))

	rec.Dispatch(a, mouse(PhaseDown, ButtonLeft, 0, 0, 0, 0))
	rec.Dispatch(a, mouse(PhaseUp, ButtonLeft, 0, 0, 0, 0))
	assert.Equal(t, 1, tapsA)
	assert.Equal(t, 0, tapsB)

	rec.Unregister(a)
	assert.False(t, rec.Dispatch(a, mouse(PhaseDown, ButtonLeft, 0, 0, 0, 0)))
	active, ok := rec.Active()
	assert.True(t, ok)
	assert.Equal(t, b, active)
}

func TestContextMenuSuppression(t *testing.T) {
	h := newHarness(t)
	menu := PointerEvent{Phase: PhaseContextMenu, Type: PointerMouse, Button: ButtonRight}
	assert.False(t, h.send(menu))

	require.NoError(t, h.rec.DisableContextMenu())
	assert.True(t, h.send(menu))
}

func TestThirdFingerKeepsPanning(t *testing.T) {
	h := newHarness(t)
	for id := 1; id <= 3; id++ {
		h.send(touch(PhaseDown, id, 0, 0, 0, 0))
	}
	assert.Equal(t, 3, h.rec.ActiveTouches(h.region))
	assert.Equal(t, Active, h.rec.State(h.region, Pan))
	assert.Equal(t, Idle, h.rec.State(h.region, Tap))
}

func TestMiddleButtonArmsNothing(t *testing.T) {
	h := newHarness(t)
	h.send(mouse(PhaseDown, ButtonMiddle, 0, 0, 0, 0))
	assert.True(t, h.rec.ButtonHeld(h.region, ButtonMiddle))
	assert.Equal(t, Idle, h.rec.State(h.region, Tap))
	assert.Equal(t, Idle, h.rec.State(h.region, Pan))
	h.send(mouse(PhaseMove, NoButton, 1, 1, 1, 1))
	h.send(mouse(PhaseUp, ButtonMiddle, 1, 1, 0, 0))
	assert.Empty(t, h.taps)
	assert.Empty(t, h.pans)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "down", PhaseDown.String())
	assert.Equal(t, "contextmenu", PhaseContextMenu.String())
	assert.Equal(t, "active", Active.String())
}

func TestPenBehavesLikeMouse(t *testing.T) {
	h := newHarness(t)
	pen := func(phase Phase, button int, x, y, dx, dy float64) PointerEvent {
		ev := mouse(phase, button, x, y, dx, dy)
		ev.Type = PointerPen
		return ev
	}

	h.send(pen(PhaseDown, ButtonLeft, 4, 6, 0, 0))
	assert.True(t, h.rec.ButtonHeld(h.region, ButtonLeft))
	h.send(pen(PhaseUp, ButtonLeft, 4, 6, 0, 0))
	assert.Equal(t, []call{{4, 6}}, h.taps)
	assert.False(t, h.rec.ButtonHeld(h.region, ButtonLeft))

	h.send(pen(PhaseDown, ButtonRight, 4, 6, 0, 0))
	h.send(pen(PhaseMove, NoButton, 6, 6, 2, 0))
	h.send(pen(PhaseUp, ButtonRight, 6, 6, 0, 0))
	assert.Equal(t, []call{{2, 0}}, h.pans)
	assert.Equal(t, Idle, h.rec.State(h.region, Pan))
}
