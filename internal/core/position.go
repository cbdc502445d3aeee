package core

// HashStride is the multiplier used by Position.Hash.
// It must exceed the largest grid height so that two distinct in-bounds
// positions never share a hash.
const HashStride = 1000

// Direction is one of the four grid directions.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Opposite returns the reverse direction. Opposite(Opposite(d)) == d.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Delta returns the unit step for the direction in screen coordinates
// (row grows downward).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Position is a cell on the play grid.
type Position struct {
	X, Y int
}

// Pos is shorthand for Position{X: x, Y: y}.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Next returns the position one cell away in direction d.
func (p Position) Next(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Hash returns a scalar key for p, unique for 0 <= Y < HashStride.
func (p Position) Hash() int {
	return p.X*HashStride + p.Y
}

// Wrap folds p back into r when it leaves it by one step on any side.
func (p Position) Wrap(r Rect) Position {
	if r.W <= 0 || r.H <= 0 {
		return p
	}
	if p.X < r.X {
		p.X = r.Right() - 1
	} else if p.X >= r.Right() {
		p.X = r.X
	}
	if p.Y < r.Y {
		p.Y = r.Bottom() - 1
	} else if p.Y >= r.Bottom() {
		p.Y = r.Y
	}
	return p
}
