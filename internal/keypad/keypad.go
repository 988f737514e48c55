// Package keypad walks a finger over a keypad and reads off the keys it
// stops on.
package keypad

import (
	"fmt"
	"strings"

	"gridwalk/internal/grid"
)

// Direction is one finger move. Rows grow downwards, so Up is -Y.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) Delta() grid.Point {
	switch d {
	case Up:
		return grid.Point{X: 0, Y: -1}
	case Down:
		return grid.Point{X: 0, Y: 1}
	case Left:
		return grid.Point{X: -1, Y: 0}
	case Right:
		return grid.Point{X: 1, Y: 0}
	}
	return grid.Point{}
}

func (d Direction) String() string {
	if d < Up || d > Right {
		return "Direction(?)"
	}
	return string("UDLR"[d])
}

const gap = ' '

// Keypad is a layout of keys. A space in the layout is a hole with no key.
type Keypad struct {
	rows [][]rune
}

func New(rows ...string) *Keypad {
	k := &Keypad{rows: make([][]rune, len(rows))}
	for i, r := range rows {
		k.rows[i] = []rune(r)
	}
	return k
}

var (
	// Standard is the plain 3x3 pad.
	Standard = New(
		"123",
		"456",
		"789",
	)
	// Diamond is the 13 key pad shaped like a diamond.
	Diamond = New(
		"  1  ",
		" 234 ",
		"56789",
		" ABC ",
		"  D  ",
	)
)

var layouts = map[string]*Keypad{
	"standard": Standard,
	"diamond":  Diamond,
}

// ByName returns a built in layout.
func ByName(name string) (*Keypad, bool) {
	k, ok := layouts[strings.ToLower(name)]
	return k, ok
}

// Key returns the key under p.
func (k *Keypad) Key(p grid.Point) (rune, bool) {
	if p.Y < 0 || p.Y >= len(k.rows) || p.X < 0 || p.X >= len(k.rows[p.Y]) {
		return 0, false
	}
	r := k.rows[p.Y][p.X]
	return r, r != gap
}

// Find locates key on the pad.
func (k *Keypad) Find(key rune) (grid.Point, bool) {
	for y, row := range k.rows {
		for x, r := range row {
			if r == key && r != gap {
				return grid.Point{X: x, Y: y}, true
			}
		}
	}
	return grid.Point{}, false
}

// Step moves one key in d. A move that would leave the pad is ignored.
func (k *Keypad) Step(p grid.Point, d Direction) grid.Point {
	next := p.Add(d.Delta())
	if _, ok := k.Key(next); !ok {
		return p
	}
	return next
}

// Press follows moves from start and returns where the finger ends.
func (k *Keypad) Press(start grid.Point, moves []Direction) grid.Point {
	return grid.Fold(start, moves, k.Step)
}

// Code presses one key per line. Each line starts where the previous one
// stopped, the first at startKey.
func (k *Keypad) Code(startKey rune, lines [][]Direction) (string, error) {
	pos, ok := k.Find(startKey)
	if !ok {
		return "", fmt.Errorf("key %q is not on the keypad", startKey)
	}
	var sb strings.Builder
	for _, line := range lines {
		pos = k.Press(pos, line)
		key, _ := k.Key(pos)
		sb.WriteRune(key)
	}
	return sb.String(), nil
}
