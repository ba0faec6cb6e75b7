package render

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// ImageSurface is a software Surface backed by an *image.RGBA. Rectangles
// snap to whole pixels; strokes are antialiased.
type ImageSurface struct {
	paintStack
	path

	img    *image.RGBA
	raster *vector.Rasterizer
}

// NewImageSurface allocates a w×h surface.
func NewImageSurface(w, h int) *ImageSurface {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &ImageSurface{
		paintStack: newPaintStack(),
		img:        image.NewRGBA(image.Rect(0, 0, w, h)),
		raster:     vector.NewRasterizer(w, h),
	}
}

// Image exposes the backing image.
func (s *ImageSurface) Image() *image.RGBA { return s.img }

// Clear resets the surface to transparent.
func (s *ImageSurface) Clear() { clearRGBA(s.img) }

// FillRect paints the rectangle with the current fill color.
func (s *ImageSurface) FillRect(x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	r := image.Rect(
		int(math.Round(x)), int(math.Round(y)),
		int(math.Round(x+w)), int(math.Round(y+h)),
	)
	fillRectRGBA(s.img, r, s.cur.fill)
}

// Stroke draws every segment of the current path with the current stroke
// color and line width.
func (s *ImageSurface) Stroke() {
	if len(s.segments) == 0 || s.cur.lineWidth <= 0 {
		return
	}
	b := s.img.Bounds()
	if b.Empty() {
		return
	}
	z := s.raster
	z.Reset(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	half := s.cur.lineWidth / 2
	for _, seg := range s.segments {
		dx, dy := seg.x1-seg.x0, seg.y1-seg.y0
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		nx, ny := -dy/length*half, dx/length*half
		z.MoveTo(float32(seg.x0+nx), float32(seg.y0+ny))
		z.LineTo(float32(seg.x1+nx), float32(seg.y1+ny))
		z.LineTo(float32(seg.x1-nx), float32(seg.y1-ny))
		z.LineTo(float32(seg.x0-nx), float32(seg.y0-ny))
		z.ClosePath()
	}
	z.Draw(s.img, b, image.NewUniform(s.cur.stroke), image.Point{})
}
