package keypad

import (
	"strings"

	"gridwalk/internal/grid"
)

// Render draws the pad with the key under p in brackets.
func (k *Keypad) Render(p grid.Point) string {
	var sb strings.Builder
	for y, row := range k.rows {
		for x, r := range row {
			switch {
			case x == p.X && y == p.Y:
				sb.WriteString("[" + string(r) + "]")
			case r == gap:
				sb.WriteString("   ")
			default:
				sb.WriteString(" " + string(r) + " ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
