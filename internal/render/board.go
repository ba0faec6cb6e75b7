package render

import (
	"image/color"
	"math"
	"strconv"

	"lifeview/internal/core"
)

type backgroundKey struct {
	background color.RGBA
	cellLength float64
}

type gridKey struct {
	line       color.RGBA
	cellLength float64
	lineWidth  float64
}

// Board paints a Grid onto a Surface, redrawing only the cells whose
// liveness changed since the previous frame.
//
// The shadow buffer remembers what the surface currently shows. After a pan,
// resize or style change every cell, the background and the grid lines are
// repainted once, then incremental diffing resumes.
type Board struct {
	surface Surface
	grid    Grid

	style Style
	pal   palette

	centerX, centerY float64
	panX, panY       float64

	shadow  *core.ByteGrid
	repaint bool

	lastBackground backgroundKey
	hasBackground  bool
	lastGrid       gridKey
	hasGrid        bool
}

// NewBoard constructs a Board drawing grid onto surface. Unset style fields
// take their defaults.
func NewBoard(surface Surface, grid Grid, style Style) (*Board, error) {
	style = style.WithDefaults()
	pal, err := style.palette()
	if err != nil {
		return nil, err
	}
	return &Board{surface: surface, grid: grid, style: style, pal: pal, repaint: true}, nil
}

// Style returns the active style.
func (b *Board) Style() Style { return b.style }

// SetStyle replaces the style and schedules a full repaint.
func (b *Board) SetStyle(style Style) error {
	style = style.WithDefaults()
	pal, err := style.palette()
	if err != nil {
		return err
	}
	b.style = style
	b.pal = pal
	b.repaint = true
	return nil
}

// SetSurface swaps the drawing target, e.g. after the host recreated it on
// resize. A full repaint follows.
func (b *Board) SetSurface(surface Surface) {
	b.surface = surface
	b.repaint = true
}

// SetCenter moves the board center to (x, y) in surface coordinates. It is
// called on resize and always triggers a full repaint.
func (b *Board) SetCenter(x, y float64) {
	b.centerX, b.centerY = x, y
	b.repaint = true
}

// Center returns the board center in surface coordinates.
func (b *Board) Center() (float64, float64) { return b.centerX, b.centerY }

// Pan shifts the board by (dx, dy). The next Render repaints everything at
// the new position.
func (b *Board) Pan(dx, dy float64) {
	b.panX += dx
	b.panY += dy
	b.repaint = true
}

// Offset returns the cumulative pan offset.
func (b *Board) Offset() (float64, float64) { return b.panX, b.panY }

// origin returns the surface position of the board's top-left corner.
func (b *Board) origin() (float64, float64) {
	cl := b.style.CellLength
	x := b.centerX - float64(b.grid.Cols())*cl/2 + b.panX
	y := b.centerY - float64(b.grid.Rows())*cl/2 + b.panY
	return x, y
}

// CellOrigin returns the surface position of the top-left corner of
// (row, col).
func (b *Board) CellOrigin(row, col int) (float64, float64) {
	ox, oy := b.origin()
	cl := b.style.CellLength
	return ox + float64(col)*cl, oy + float64(row)*cl
}

// CellAt maps a surface position back to the cell under it. ok is false when
// the position lies outside the board.
func (b *Board) CellAt(x, y float64) (row, col int, ok bool) {
	ox, oy := b.origin()
	cl := b.style.CellLength
	col = int(math.Floor((x - ox) / cl))
	row = int(math.Floor((y - oy) / cl))
	ok = row >= 0 && row < b.grid.Rows() && col >= 0 && col < b.grid.Cols()
	return row, col, ok
}

// Init paints the background and grid lines unconditionally and forgets
// every previously drawn cell.
func (b *Board) Init() {
	b.resetShadow()
	b.drawBackground(true)
	b.drawGrid(true)
	b.repaint = false
}

// Render brings the surface up to date with the grid: background, then
// cells, then grid lines.
func (b *Board) Render() {
	b.syncDimensions()
	panned := b.repaint
	b.drawBackground(panned)
	b.drawCells(panned)
	b.drawGrid(panned)
	b.repaint = false
}

func (b *Board) resetShadow() {
	b.shadow = core.NewByteGrid(b.grid.Cols(), b.grid.Rows())
}

// syncDimensions reallocates the shadow buffer when the grid was reset to a
// different size.
func (b *Board) syncDimensions() {
	if b.shadow != nil && b.shadow.W == b.grid.Cols() && b.shadow.H == b.grid.Rows() {
		return
	}
	b.resetShadow()
	b.repaint = true
}

func (b *Board) drawBackground(force bool) {
	key := backgroundKey{background: b.pal.background, cellLength: b.style.CellLength}
	if !force && b.hasBackground && b.lastBackground == key {
		return
	}
	b.lastBackground = key
	b.hasBackground = true

	if force {
		if c, ok := b.surface.(Clearer); ok {
			c.Clear()
		}
	}

	s := b.surface
	s.Save()
	defer s.Restore()

	cl := b.style.CellLength
	x, y := b.origin()
	s.SetFillColor(b.pal.background)
	s.FillRect(x, y, float64(b.grid.Cols())*cl, float64(b.grid.Rows())*cl)
}

func (b *Board) drawGrid(force bool) {
	key := gridKey{line: b.pal.line, cellLength: b.style.CellLength, lineWidth: b.style.LineWidth}
	if !force && b.hasGrid && b.lastGrid == key {
		return
	}
	b.lastGrid = key
	b.hasGrid = true

	s := b.surface
	s.Save()
	defer s.Restore()

	rows, cols := b.grid.Rows(), b.grid.Cols()
	cl := b.style.CellLength
	left, top := b.origin()
	right := left + float64(cols)*cl
	bottom := top + float64(rows)*cl

	s.SetStrokeColor(b.pal.line)
	s.SetLineWidth(b.style.LineWidth)
	s.BeginPath()
	for i := 0; i <= cols; i++ {
		x := left + float64(i)*cl
		s.MoveTo(x, top)
		s.LineTo(x, bottom)
	}
	for i := 0; i <= rows; i++ {
		y := top + float64(i)*cl
		s.MoveTo(left, y)
		s.LineTo(right, y)
	}
	s.Stroke()
}

// drawCells fills newly live cells and clears newly dead ones. When panned
// is set every cell is redrawn regardless of the shadow buffer.
func (b *Board) drawCells(panned bool) {
	s := b.surface
	s.Save()
	defer s.Restore()

	rows, cols := b.grid.Rows(), b.grid.Cols()
	shadow := b.shadow.Cells()

	s.SetFillColor(b.pal.fill)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			idx := b.shadow.Index(col, row)
			if b.grid.Alive(row, col) && (shadow[idx] == 0 || panned) {
				b.fillCell(row, col)
				shadow[idx] = 1
			}
		}
	}

	s.SetFillColor(b.pal.background)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			idx := b.shadow.Index(col, row)
			if !b.grid.Alive(row, col) && (shadow[idx] != 0 || panned) {
				b.fillCell(row, col)
				shadow[idx] = 0
			}
		}
	}
}

// fillCell paints the inset rectangle of (row, col) with the current fill
// color, leaving the grid lines around it untouched.
func (b *Board) fillCell(row, col int) {
	lw := b.style.LineWidth
	size := b.style.CellLength - 2*lw
	x, y := b.CellOrigin(row, col)
	b.surface.FillRect(x+lw, y+lw, size, size)
}

// Parameters reports the viewport state for display.
func (b *Board) Parameters() core.ParameterSnapshot {
	format := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "View",
		Params: []core.Parameter{
			{Key: "pan_x", Label: "Pan X", Type: core.ParamTypeFloat, Value: format(b.panX)},
			{Key: "pan_y", Label: "Pan Y", Type: core.ParamTypeFloat, Value: format(b.panY)},
			{Key: "cell_length", Label: "Cell", Type: core.ParamTypeFloat, Value: format(b.style.CellLength)},
		},
	}}}
}
