package life

import (
	"strconv"

	"lifeview/internal/core"
	prng "lifeview/pkg/core"
)

// Life implements Conway's Game of Life on a bounded grid. Cells outside the
// grid count as dead; there is no wraparound.
type Life struct {
	grid       *core.ByteGrid
	delta      []change
	generation int
}

// change is one entry of the pending delta computed by Tick.
type change struct {
	idx   int
	alive bool
}

// New returns an empty Life simulation with the provided dimensions.
func New(rows, cols int) *Life {
	l := &Life{}
	l.Reset(rows, cols)
	return l
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Rows returns the number of grid rows.
func (l *Life) Rows() int { return l.grid.H }

// Cols returns the number of grid columns.
func (l *Life) Cols() int { return l.grid.W }

// Cells exposes the current grid values in row-major order.
func (l *Life) Cells() []uint8 { return l.grid.Cells() }

// Generation returns the number of ticks applied since the last reset.
func (l *Life) Generation() int { return l.generation }

// Reset discards the board and allocates an all-dead grid of the new size.
func (l *Life) Reset(rows, cols int) {
	l.grid = core.NewByteGrid(cols, rows)
	l.delta = l.delta[:0]
	l.generation = 0
}

// Randomize fills the board with live cells at the given density using a
// deterministic seed.
func (l *Life) Randomize(seed int64, density float64) {
	prng.NewRNG(seed).FillDensity(l.grid.Cells(), density)
	l.delta = l.delta[:0]
	l.generation = 0
}

// WithinBounds reports whether (row, col) addresses a cell of the board.
func (l *Life) WithinBounds(row, col int) bool {
	return l.grid.InBounds(col, row)
}

// Alive reports whether the cell at (row, col) is alive. Out of range cells
// are dead.
func (l *Life) Alive(row, col int) bool {
	return l.grid.At(col, row) != 0
}

// FillCell marks the cell alive. Out of range coordinates are ignored.
func (l *Life) FillCell(row, col int) {
	l.grid.Set(col, row, 1)
}

// CountLiveNeighbors returns the number of live cells in the Moore
// neighborhood of (row, col).
func (l *Life) CountLiveNeighbors(row, col int) int {
	neighbors := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if l.Alive(row+dr, col+dc) {
				neighbors++
			}
		}
	}
	return neighbors
}

// Population returns the number of live cells.
func (l *Life) Population() int {
	n := 0
	for _, c := range l.grid.Cells() {
		if c != 0 {
			n++
		}
	}
	return n
}

// Tick advances the simulation by one generation.
//
// Every decision is made against the pre-tick grid; the resulting sparse
// delta is applied only after the scan completes.
func (l *Life) Tick() {
	l.delta = l.delta[:0]
	rows, cols := l.grid.H, l.grid.W
	cells := l.grid.Cells()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			neighbors := l.CountLiveNeighbors(row, col)
			idx := l.grid.Index(col, row)
			if cells[idx] != 0 {
				if neighbors < 2 || neighbors > 3 {
					l.delta = append(l.delta, change{idx: idx, alive: false})
				}
			} else if neighbors == 3 {
				l.delta = append(l.delta, change{idx: idx, alive: true})
			}
		}
	}

	for _, c := range l.delta {
		cells[c.idx] = 0
		if c.alive {
			cells[c.idx] = 1
		}
	}
	l.generation++
}

// Changed returns how many cells the last Tick flipped.
func (l *Life) Changed() int { return len(l.delta) }

// Parameters reports the simulation counters for display.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Simulation",
		Params: []core.Parameter{
			{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.Itoa(l.generation)},
			{Key: "population", Label: "Population", Type: core.ParamTypeInt, Value: strconv.Itoa(l.Population())},
			{Key: "changed", Label: "Changed", Type: core.ParamTypeInt, Value: strconv.Itoa(l.Changed())},
			{Key: "size", Label: "Size", Type: core.ParamTypeText, Value: strconv.Itoa(l.grid.H) + "x" + strconv.Itoa(l.grid.W)},
		},
	}}}
}
