//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"lifeview/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the status panel along the right edge of the window.
type HUD struct {
	source   core.ParameterProvider
	setter   IntSetter
	width    int
	title    string
	visible  bool
	offsetX  int
	snapshot core.ParameterSnapshot

	controls []controlState
	panel    *ebiten.Image
}

type controlState struct {
	control   Control
	value     int
	hasValue  bool
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// NewHUD constructs a HUD listing the parameters of source. Controls are
// adjusted through setter, which may be nil for a read-only panel.
func NewHUD(name string, source core.ParameterProvider, setter IntSetter, controls []Control, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{source: source, setter: setter, width: width, title: Title(name), visible: true}
	h.controls = make([]controlState, len(controls))
	for i, c := range controls {
		h.controls[i] = controlState{control: c}
	}
	return h
}

// Width returns the panel width, or zero while hidden.
func (h *HUD) Width() int {
	if h == nil || !h.visible {
		return 0
	}
	return h.width
}

// Toggle shows or hides the panel.
func (h *HUD) Toggle() {
	if h != nil {
		h.visible = !h.visible
	}
}

// Contains reports whether the screen position lies on the panel.
func (h *HUD) Contains(x, y int) bool {
	return h.Width() > 0 && x >= h.offsetX && x < h.offsetX+h.width && y >= 0
}

// Update refreshes the snapshot and handles clicks on the panel controls.
func (h *HUD) Update(offsetX int) {
	if h == nil || !h.visible {
		return
	}
	h.offsetX = offsetX
	if h.source != nil {
		h.snapshot = h.source.Parameters()
	}
	for i := range h.controls {
		st := &h.controls[i]
		st.value, st.hasValue = lookupInt(h.snapshot, st.control.Key)
	}
	h.handleInput()
}

func (h *HUD) handleInput() {
	if h.setter == nil || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	px := mx - h.offsetX
	for i := range h.controls {
		st := &h.controls[i]
		if !st.hasValue {
			continue
		}
		dir := 0
		switch {
		case image.Pt(px, my).In(st.minusRect):
			dir = -1
		case image.Pt(px, my).In(st.plusRect):
			dir = 1
		}
		if dir == 0 {
			continue
		}
		if v, ok := st.control.Adjust(st.value, dir); ok && h.setter.SetIntParameter(st.control.Key, v) {
			st.value = v
		}
		return
	}
}

// Draw paints the panel at the offset passed to the last Update.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h.Width() == 0 {
		return
	}
	height := screen.Bounds().Dy()
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		if h.panel != nil {
			h.panel.Dispose()
		}
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, titleColor)
	y += sectionGap

	for _, line := range Lines(h.snapshot) {
		if line.Header {
			y += headerGap
			text.Draw(h.panel, line.Label, face, panelPadding, y, titleColor)
		} else {
			text.Draw(h.panel, line.Label, face, panelPadding, y, labelColor)
			w := text.BoundString(face, line.Value).Dx()
			text.Draw(h.panel, line.Value, face, h.width-panelPadding-w, y, labelColor)
		}
		y += lineHeight
	}

	y += sectionGap
	for i := range h.controls {
		h.drawControl(&h.controls[i], y)
		y += controlHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(h.offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawControl(st *controlState, top int) {
	buttonY := top + (controlHeight-buttonSize)/2
	st.plusRect = image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
	st.minusRect = image.Rect(st.plusRect.Min.X-buttonGap-buttonSize, buttonY, st.plusRect.Min.X-buttonGap, buttonY+buttonSize)

	face := basicfont.Face7x13
	text.Draw(h.panel, st.control.Label, face, panelPadding, top+labelBaseline, labelColor)
	enabled := st.hasValue && h.setter != nil
	h.drawButton(st.minusRect, "-", enabled)
	h.drawButton(st.plusRect, "+", enabled)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg, fg := buttonColor, labelColor
	if !enabled {
		bg, fg = disabledButtonColor, disabledLabelColor
	}
	vector.DrawFilledRect(h.panel, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

var (
	panelColor          = color.RGBA{R: 16, G: 16, B: 20, A: 230}
	titleColor          = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor          = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	buttonColor         = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	disabledButtonColor = color.RGBA{R: 32, G: 34, B: 40, A: 255}
	disabledLabelColor  = color.RGBA{R: 120, G: 120, B: 130, A: 255}
)

const (
	panelPadding   = 12
	headerBaseline = 18
	sectionGap     = 10
	headerGap      = 8
	lineHeight     = 18
	controlHeight  = 36
	buttonSize     = 24
	buttonGap      = 6
	labelBaseline  = 22
)
