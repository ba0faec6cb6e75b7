package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// recorder is a Surface that logs every call as a line of text.
type recorder struct {
	ops   []string
	depth int
	clear int
}

func hexOf(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func (r *recorder) add(format string, args ...any) {
	r.ops = append(r.ops, fmt.Sprintf(format, args...))
}

func (r *recorder) mark(label string) { r.add("# %s", label) }

func (r *recorder) Save() {
	r.depth++
	r.add("save")
}

func (r *recorder) Restore() {
	r.depth--
	r.add("restore")
}

func (r *recorder) SetFillColor(c color.Color)   { r.add("fill %s", hexOf(c)) }
func (r *recorder) SetStrokeColor(c color.Color) { r.add("stroke-color %s", hexOf(c)) }
func (r *recorder) SetLineWidth(w float64)       { r.add("line-width %s", num(w)) }
func (r *recorder) BeginPath()                   { r.add("begin") }
func (r *recorder) MoveTo(x, y float64)          { r.add("move %s %s", num(x), num(y)) }
func (r *recorder) LineTo(x, y float64)          { r.add("line %s %s", num(x), num(y)) }
func (r *recorder) Stroke()                      { r.add("stroke") }

func (r *recorder) FillRect(x, y, w, h float64) {
	r.add("rect %s %s %s %s", num(x), num(y), num(w), num(h))
}

func (r *recorder) reset() { r.ops = r.ops[:0] }

// rects returns the FillRect calls recorded since the last reset.
func (r *recorder) rects() []string {
	var out []string
	for _, op := range r.ops {
		if strings.HasPrefix(op, "rect ") {
			out = append(out, op)
		}
	}
	return out
}

// count returns how many recorded ops are named op, ignoring arguments.
func (r *recorder) count(op string) int {
	n := 0
	for _, line := range r.ops {
		if name, _, _ := strings.Cut(line, " "); name == op {
			n++
		}
	}
	return n
}

func (r *recorder) String() string { return strings.Join(r.ops, "\n") + "\n" }

// clearingRecorder additionally implements Clearer.
type clearingRecorder struct {
	recorder
}

func (r *clearingRecorder) Clear() {
	r.clear++
	r.add("clear")
}
