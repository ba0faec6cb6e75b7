package life

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownPattern is returned when a pattern name is not in the catalogue.
var ErrUnknownPattern = errors.New("unknown pattern")

// Pattern is a set of live cells relative to its top-left corner.
type Pattern struct {
	Name  string
	Cells [][2]int // (row, col)
	Rows  int
	Cols  int
}

// ParsePlaintext reads a pattern drawn with 'O' (alive) and '.' (dead), one
// row per line. Lines starting with '!' are comments.
func ParsePlaintext(name, src string) (Pattern, error) {
	p := Pattern{Name: name}
	row := 0
	for _, line := range strings.Split(strings.TrimRight(src, "\r\n"), "\n") {
		line = strings.TrimRight(line, "\r ")
		if strings.HasPrefix(line, "!") {
			continue
		}
		for col, ch := range line {
			switch ch {
			case 'O', 'o', '*':
				p.Cells = append(p.Cells, [2]int{row, col})
			case '.':
			default:
				return Pattern{}, fmt.Errorf("pattern %s: unexpected %q at row %d col %d", name, ch, row, col)
			}
			if col+1 > p.Cols {
				p.Cols = col + 1
			}
		}
		row++
	}
	p.Rows = row
	return p, nil
}

var catalogue = map[string]string{
	"block":       "OO\nOO",
	"blinker":     "OOO",
	"glider":      ".O.\n..O\nOOO",
	"r-pentomino": ".OO\nOO.\n.O.",
	"glider-gun": `........................O...........
......................O.O...........
............OO......OO............OO
...........O...O....OO............OO
OO........O.....O...OO..............
OO........O...O.OO....O.O...........
..........O.....O.......O...........
...........O...O....................
............OO......................`,
}

// PatternNames lists the built-in patterns in alphabetical order.
func PatternNames() []string {
	names := make([]string, 0, len(catalogue))
	for name := range catalogue {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PatternByName returns a built-in pattern.
func PatternByName(name string) (Pattern, error) {
	src, ok := catalogue[name]
	if !ok {
		return Pattern{}, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return ParsePlaintext(name, src)
}

// Place stamps p with its top-left corner at (row, col). Cells falling
// outside the board are dropped.
func (l *Life) Place(p Pattern, row, col int) {
	for _, c := range p.Cells {
		l.FillCell(row+c[0], col+c[1])
	}
}

// PlaceCentered stamps p in the middle of the board.
func (l *Life) PlaceCentered(p Pattern) {
	l.Place(p, (l.Rows()-p.Rows)/2, (l.Cols()-p.Cols)/2)
}
