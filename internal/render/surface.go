package render

import "image/color"

// Surface is the drawing target consumed by Board. Paint state (fill color,
// stroke color, line width) is scoped by Save/Restore pairs.
type Surface interface {
	Save()
	Restore()

	SetFillColor(c color.Color)
	FillRect(x, y, w, h float64)

	SetStrokeColor(c color.Color)
	SetLineWidth(w float64)
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke()
}

// Clearer is implemented by surfaces that can wipe their whole area. Board
// clears such surfaces before a full repaint so panned-away pixels vanish.
type Clearer interface {
	Clear()
}

// Grid is the read-only view of the automaton consumed by Board.
type Grid interface {
	Rows() int
	Cols() int
	Alive(row, col int) bool
}

type paintState struct {
	fill      color.Color
	stroke    color.Color
	lineWidth float64
}

// paintStack implements the Save/Restore half of Surface for concrete surfaces.
type paintStack struct {
	cur   paintState
	saved []paintState
}

func newPaintStack() paintStack {
	return paintStack{cur: paintState{fill: color.Black, stroke: color.Black, lineWidth: 1}}
}

func (p *paintStack) Save() { p.saved = append(p.saved, p.cur) }

func (p *paintStack) Restore() {
	if len(p.saved) == 0 {
		return
	}
	p.cur = p.saved[len(p.saved)-1]
	p.saved = p.saved[:len(p.saved)-1]
}

func (p *paintStack) SetFillColor(c color.Color)   { p.cur.fill = c }
func (p *paintStack) SetStrokeColor(c color.Color) { p.cur.stroke = c }
func (p *paintStack) SetLineWidth(w float64)       { p.cur.lineWidth = w }

type segment struct {
	x0, y0, x1, y1 float64
}

// path collects line segments between BeginPath and Stroke.
type path struct {
	segments []segment
	x, y     float64
	open     bool
}

func (p *path) BeginPath() {
	p.segments = p.segments[:0]
	p.open = false
}

func (p *path) MoveTo(x, y float64) {
	p.x, p.y = x, y
	p.open = true
}

func (p *path) LineTo(x, y float64) {
	if p.open {
		p.segments = append(p.segments, segment{x0: p.x, y0: p.y, x1: x, y1: y})
	}
	p.x, p.y = x, y
	p.open = true
}
