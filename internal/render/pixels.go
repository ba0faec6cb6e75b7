package render

import (
	"image"
	"image/color"
)

// fillRectRGBA writes c into every pixel of r, clipped to the image bounds.
func fillRectRGBA(img *image.RGBA, r image.Rectangle, c color.Color) {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	rr, gg, bb, aa := c.RGBA()
	px := [4]uint8{uint8(rr >> 8), uint8(gg >> 8), uint8(bb >> 8), uint8(aa >> 8)}
	buf := img.Pix
	for y := r.Min.Y; y < r.Max.Y; y++ {
		base := img.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			buf[base+0] = px[0]
			buf[base+1] = px[1]
			buf[base+2] = px[2]
			buf[base+3] = px[3]
			base += 4
		}
	}
}

// clearRGBA resets every pixel to transparent black.
func clearRGBA(img *image.RGBA) {
	for i := range img.Pix {
		img.Pix[i] = 0
	}
}
