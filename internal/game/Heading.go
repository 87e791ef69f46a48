package game

// Heading is one of the four cardinal directions the snake can travel.
type Heading int

const (
	Up Heading = iota
	Down
	Left
	Right
)

// Headings lists the four headings in a fixed order. The pathfinder
// expands neighbors in this order, so it also decides which of several
// equally short paths wins.
var Headings = [4]Heading{Up, Down, Left, Right}

// Delta returns the unit displacement for one step along the heading,
// in cell units. Up decreases Y, Down increases Y (screen coordinates).
func (h Heading) Delta() (dx, dy int) {
	switch h {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// Opposite returns the 180-degree reverse of the heading.
func (h Heading) Opposite() Heading {
	switch h {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return h
}

func (h Heading) String() string {
	switch h {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// HeadingFor maps a displacement sign pair back to a heading. It is the
// inverse of Delta for unit steps and also accepts scaled displacements,
// so a pilot answering in whole segments still resolves. Diagonal or
// zero displacements report false.
func HeadingFor(dx, dy int) (Heading, bool) {
	switch {
	case dx > 0 && dy == 0:
		return Right, true
	case dx < 0 && dy == 0:
		return Left, true
	case dy > 0 && dx == 0:
		return Down, true
	case dy < 0 && dx == 0:
		return Up, true
	}
	return 0, false
}
