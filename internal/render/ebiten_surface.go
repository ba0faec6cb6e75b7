//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenSurface draws onto an offscreen *ebiten.Image. The image persists
// between frames so unchanged cells do not need to be redrawn.
type EbitenSurface struct {
	paintStack
	path

	dst *ebiten.Image
}

// NewEbitenSurface allocates a w×h offscreen target.
func NewEbitenSurface(w, h int) *EbitenSurface {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &EbitenSurface{paintStack: newPaintStack(), dst: ebiten.NewImage(w, h)}
}

// Image exposes the offscreen target so it can be composited onto the screen.
func (s *EbitenSurface) Image() *ebiten.Image { return s.dst }

// Clear wipes the target.
func (s *EbitenSurface) Clear() { s.dst.Clear() }

// FillRect paints the rectangle with the current fill color.
func (s *EbitenSurface) FillRect(x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), s.cur.fill, false)
}

// Stroke draws every segment of the current path.
func (s *EbitenSurface) Stroke() {
	if s.cur.lineWidth <= 0 {
		return
	}
	for _, seg := range s.segments {
		vector.StrokeLine(s.dst, float32(seg.x0), float32(seg.y0), float32(seg.x1), float32(seg.y1),
			float32(s.cur.lineWidth), s.cur.stroke, false)
	}
}

// Dispose releases the GPU image.
func (s *EbitenSurface) Dispose() { s.dst.Dispose() }
