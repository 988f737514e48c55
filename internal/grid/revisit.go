package grid

import "github.com/zyedidia/generic/mapset"

// FirstRevisit walks moves one cell at a time from Start and returns the
// first cell entered twice. The origin counts as visited before the first
// move. ok is false when no cell is ever revisited.
func FirstRevisit(moves []Move) (p Point, ok bool) {
	state := Start()
	visited := mapset.New[Point]()
	visited.Put(state.Pos)

	for _, m := range moves {
		state = state.Steps(m, func(next State) bool {
			if visited.Has(next.Pos) {
				p, ok = next.Pos, true
				return false
			}
			visited.Put(next.Pos)
			return true
		})
		if ok {
			return p, true
		}
	}
	return Point{}, false
}

// RevisitDistance is the taxicab distance from the origin to FirstRevisit.
func RevisitDistance(moves []Move) (int, bool) {
	p, ok := FirstRevisit(moves)
	if !ok {
		return 0, false
	}
	return Origin().Taxicab(p), true
}
