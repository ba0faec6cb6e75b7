package ui

import (
	"strconv"

	"lifeview/internal/core"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Line is one row of the status panel. Header lines carry a group name in
// Label and no value.
type Line struct {
	Label  string
	Value  string
	Header bool
}

// Title builds the panel heading for a simulation name.
func Title(name string) string {
	if name == "" {
		return "Status"
	}
	return cases.Title(language.English).String(name) + " Status"
}

// Lines flattens a snapshot into panel rows.
func Lines(s core.ParameterSnapshot) []Line {
	var lines []Line
	for _, g := range s.Groups {
		lines = append(lines, Line{Label: g.Name, Header: true})
		for _, p := range g.Params {
			label := p.Label
			if label == "" {
				label = p.Key
			}
			value := p.Value
			if value == "" {
				value = "--"
			}
			lines = append(lines, Line{Label: label, Value: value})
		}
	}
	return lines
}

// IntSetter is implemented by components whose integer parameters can be
// changed from the panel.
type IntSetter interface {
	SetIntParameter(key string, value int) bool
}

// Control is an integer parameter adjustable with -/+ buttons.
type Control struct {
	Key   string
	Label string
	Step  int
	Min   int
	Max   int
}

// Adjust moves cur one step in direction dir and clamps to [Min, Max]. It
// reports false when the value would not change.
func (c Control) Adjust(cur, dir int) (int, bool) {
	if dir == 0 {
		return cur, false
	}
	step := c.Step
	if step <= 0 {
		step = 1
	}
	target := cur + dir*step
	if target < c.Min {
		target = c.Min
	}
	if c.Max > c.Min && target > c.Max {
		target = c.Max
	}
	return target, target != cur
}

// lookupInt finds key in s and parses its value.
func lookupInt(s core.ParameterSnapshot, key string) (int, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key != key {
				continue
			}
			v, err := strconv.Atoi(p.Value)
			if err != nil {
				return 0, false
			}
			return v, true
		}
	}
	return 0, false
}
