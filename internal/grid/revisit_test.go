package grid

import (
	"math"
	"testing"
)

func TestRevisitExample(t *testing.T) {
	moves := []Move{{Right, 8}, {Right, 4}, {Right, 4}, {Right, 8}}
	p, ok := FirstRevisit(moves)
	if !ok {
		t.Fatal("expected a revisit")
	}
	if p != (Point{4, 0}) {
		t.Fatalf("want (4,0) got %v", p)
	}
	if d, _ := RevisitDistance(moves); d != 4 {
		t.Fatalf("want distance 4 got %d", d)
	}
}

func TestNoRevisitOnStraightLine(t *testing.T) {
	for _, n := range []int{1, 2, 50} {
		if d, ok := RevisitDistance([]Move{{Right, n}}); ok {
			t.Fatalf("R%d: unexpected revisit at distance %d", n, d)
		}
	}
	if _, ok := RevisitDistance(nil); ok {
		t.Fatal("empty walk cannot revisit")
	}
}

func TestRevisitOrigin(t *testing.T) {
	// a unit square ends on the origin
	moves := []Move{{Right, 1}, {Right, 1}, {Right, 1}, {Right, 1}}
	p, ok := FirstRevisit(moves)
	if !ok || p != Origin() {
		t.Fatalf("want origin revisit, got %v %v", p, ok)
	}
	if d, _ := RevisitDistance(moves); d != 0 {
		t.Fatalf("want distance 0 got %d", d)
	}
}

func TestZeroMovesNeverRevisit(t *testing.T) {
	moves := []Move{{Right, 0}, {Left, 0}, {Left, 0}, {Right, 3}, {Left, 0}}
	if p, ok := FirstRevisit(moves); ok {
		t.Fatalf("unexpected revisit at %v", p)
	}
}

func TestZeroMoveStillTurns(t *testing.T) {
	// R0 faces East without moving, so L2 then heads North
	moves := []Move{{Right, 0}, {Left, 2}, {Left, 1}, {Left, 1}, {Left, 5}}
	p, ok := FirstRevisit(moves)
	if !ok || p != (Point{0, 1}) {
		t.Fatalf("want (0,1) got %v %v", p, ok)
	}
}

func TestRevisitHugeMove(t *testing.T) {
	// the last move heads back north through the origin straight away
	moves := []Move{{Right, 1}, {Right, 1}, {Right, 1}, {Right, math.MaxInt}}
	p, ok := FirstRevisit(moves)
	if !ok || p != Origin() {
		t.Fatalf("want origin revisit, got %v %v", p, ok)
	}

	moves = []Move{{Right, 2}, {Right, 1}, {Right, 1}, {Right, math.MaxInt32}}
	if d, ok := RevisitDistance(moves); !ok || d != 1 {
		t.Fatalf("want distance 1 got %d %v", d, ok)
	}
}
