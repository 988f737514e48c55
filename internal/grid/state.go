package grid

import "fmt"

// Move turns and then walks Blocks cells forward.
type Move struct {
	Turn   Turn
	Blocks int
}

func (m Move) String() string {
	return fmt.Sprintf("%s%d", m.Turn, m.Blocks)
}

// State is the walker's position and facing. Transitions return a new State.
type State struct {
	Pos    Point
	Facing Heading
}

// Start is the origin facing North.
func Start() State {
	return State{Pos: Origin(), Facing: North}
}

func (s State) String() string {
	return fmt.Sprintf("%v facing %v", s.Pos, s.Facing)
}

// Apply turns first and then jumps the whole distance at once.
func (s State) Apply(m Move) State {
	h := s.Facing.Turn(m.Turn)
	return State{Pos: s.Pos.Add(h.Delta().Scale(m.Blocks)), Facing: h}
}

// Steps turns and then calls f with the state after each unit step of m,
// stopping early when f returns false. It returns the last state reached.
// A zero-block move only turns.
func (s State) Steps(m Move, f func(State) (keepGoing bool)) State {
	cur := State{Pos: s.Pos, Facing: s.Facing.Turn(m.Turn)}
	for i := 0; i < m.Blocks; i++ {
		cur = State{Pos: cur.Pos.Add(cur.Facing.Delta()), Facing: cur.Facing}
		if !f(cur) {
			break
		}
	}
	return cur
}

// Walk applies every move to start and returns the final state.
func Walk(start State, moves []Move) State {
	return Fold(start, moves, State.Apply)
}

// Distance is the taxicab distance from Start to the end of the walk.
func Distance(moves []Move) int {
	start := Start()
	end := Walk(start, moves)
	return start.Pos.Taxicab(end.Pos)
}
