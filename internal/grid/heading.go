package grid

// Heading is a compass direction, ordered clockwise.
type Heading int

const (
	North Heading = iota
	East
	South
	West
)

var headingNames = [...]string{"North", "East", "South", "West"}

func (h Heading) String() string {
	if h < North || h > West {
		return "Heading(?)"
	}
	return headingNames[h]
}

// Delta is the unit step along h. North is +Y, East is +X.
func (h Heading) Delta() Point {
	switch h {
	case North:
		return Point{0, 1}
	case East:
		return Point{1, 0}
	case South:
		return Point{0, -1}
	case West:
		return Point{-1, 0}
	}
	return Point{}
}

// Turn is a quarter rotation relative to the current heading.
type Turn int

const (
	Left Turn = iota
	Right
)

func (t Turn) String() string {
	if t == Left {
		return "L"
	}
	return "R"
}

// Turn rotates h one quarter. Result is always one of the four headings.
func (h Heading) Turn(t Turn) Heading {
	switch t {
	case Left:
		return (h + 3) % 4
	default:
		return (h + 1) % 4
	}
}
