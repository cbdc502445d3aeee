// Package snake implements the snake engine, the food and score model and the
// Game aggregate that ties them together for one play session.
package snake

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/viper/internal/core"
)

// ErrSelfCollision is returned by Propagate when the head would enter a cell
// the snake already occupies. It ends the round.
var ErrSelfCollision = errors.New("snake: self collision")

// InitialLength is the number of segments of a new snake.
const InitialLength = 3

// Role tags a segment as head, body or tail.
type Role int

const (
	RoleHead Role = iota
	RoleBody
	RoleTail
)

func (r Role) String() string {
	switch r {
	case RoleHead:
		return "head"
	case RoleBody:
		return "body"
	case RoleTail:
		return "tail"
	default:
		return "unknown"
	}
}

// Segment is one cell of the snake.
type Segment struct {
	Pos  core.Position
	Role Role
}

// Texture holds the glyphs used to draw the snake.
type Texture struct {
	Head rune
	Body rune
	Tail rune
}

// DefaultTexture is the classic look.
var DefaultTexture = Texture{Head: '@', Body: 'O', Tail: 'o'}

// Snake is the moving body. Segments are stored head first.
// occupied always holds exactly the hashes of the segment positions.
type Snake struct {
	body      []Segment
	occupied  map[int]struct{}
	direction core.Direction
	speed     int
	texture   Texture
	bounds    core.Rect
	growth    int // deferred ExtendBack calls
}

// New creates a snake of InitialLength with its head at head, heading right,
// body trailing to the left.
func New(head core.Position, texture Texture) *Snake {
	s := &Snake{
		body:      make([]Segment, 0, InitialLength),
		occupied:  make(map[int]struct{}, InitialLength),
		direction: core.DirRight,
		speed:     1,
		texture:   texture,
	}

	p := head
	for i := range InitialLength {
		role := RoleBody
		switch i {
		case 0:
			role = RoleHead
		case InitialLength - 1:
			role = RoleTail
		}
		s.body = append(s.body, Segment{Pos: p, Role: role})
		s.occupied[p.Hash()] = struct{}{}
		p = p.Next(core.DirLeft)
	}
	return s
}

// SetBounds confines the snake to r; a head leaving r re-enters on the
// opposite side. The zero Rect disables wrapping.
func (s *Snake) SetBounds(r core.Rect) {
	s.bounds = r
}

// Head returns the head position.
func (s *Snake) Head() core.Position {
	return s.body[0].Pos
}

// Tail returns the tail position.
func (s *Snake) Tail() core.Position {
	return s.body[len(s.body)-1].Pos
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Direction returns the current direction of travel.
func (s *Snake) Direction() core.Direction {
	return s.direction
}

// Speed returns the current speed factor (>= 1).
func (s *Snake) Speed() int {
	return s.speed
}

// Segments returns a copy of the body, head first.
func (s *Snake) Segments() []Segment {
	out := make([]Segment, len(s.body))
	copy(out, s.body)
	return out
}

// Occupies reports whether any segment sits on p.
func (s *Snake) Occupies(p core.Position) bool {
	_, ok := s.occupied[p.Hash()]
	return ok
}

// OccupiedCount returns the size of the occupied set.
func (s *Snake) OccupiedCount() int {
	return len(s.occupied)
}

// Turn changes the direction of travel. Reversing onto the body is refused;
// any other direction is taken and the speed jumps to turnSpeed.
func (s *Snake) Turn(d core.Direction, turnSpeed int) bool {
	if d == s.direction.Opposite() {
		return false
	}
	s.direction = d
	s.speed = core.Max(turnSpeed, 1)
	return true
}

// Decay slows the snake by one step toward speed 1.
func (s *Snake) Decay() {
	if s.speed > 1 {
		s.speed--
	}
}

func (s *Snake) wrap(p core.Position) core.Position {
	return p.Wrap(s.bounds)
}

// extendFront pushes a new head one cell in the direction of travel.
// The collision check runs before any mutation.
func (s *Snake) extendFront() error {
	next := s.wrap(s.Head().Next(s.direction))
	if s.Occupies(next) {
		return fmt.Errorf("%w at (%d, %d)", ErrSelfCollision, next.X, next.Y)
	}

	s.body[0].Role = RoleBody
	s.occupied[next.Hash()] = struct{}{}
	s.body = append(s.body, Segment{})
	copy(s.body[1:], s.body)
	s.body[0] = Segment{Pos: next, Role: RoleHead}
	return nil
}

// ExtendBack grows the snake by one segment behind the tail.
// The new tail continues the old tail's trajectory when that cell is free,
// otherwise it takes the first free neighbour. A tail boxed in on all sides
// grows on the next Propagate instead.
func (s *Snake) ExtendBack() {
	next, ok := s.freeBehindTail()
	if !ok {
		s.growth++
		return
	}

	s.body[len(s.body)-1].Role = RoleBody
	s.body = append(s.body, Segment{Pos: next, Role: RoleTail})
	s.occupied[next.Hash()] = struct{}{}
}

func (s *Snake) freeBehindTail() (core.Position, bool) {
	tail := s.Tail()
	prev := s.body[len(s.body)-2].Pos

	candidates := make([]core.Position, 0, 5)
	// Straight on from the segment before the tail. Comparing wrapped steps
	// keeps this right when the body crosses an edge.
	for _, d := range []core.Direction{core.DirUp, core.DirDown, core.DirLeft, core.DirRight} {
		if s.wrap(prev.Next(d)) == tail {
			candidates = append(candidates, s.wrap(tail.Next(d)))
			break
		}
	}
	candidates = append(candidates, s.wrap(tail.Next(s.direction.Opposite())))
	for _, d := range []core.Direction{core.DirUp, core.DirDown, core.DirLeft, core.DirRight} {
		candidates = append(candidates, s.wrap(tail.Next(d)))
	}

	for _, c := range candidates {
		if !s.Occupies(c) {
			return c, true
		}
	}
	return core.Position{}, false
}

// Propagate advances the snake one cell. On ErrSelfCollision the snake is
// left exactly as it was before the call.
func (s *Snake) Propagate() error {
	if err := s.extendFront(); err != nil {
		return err
	}

	if s.growth > 0 {
		s.growth--
	} else {
		last := len(s.body) - 1
		delete(s.occupied, s.body[last].Pos.Hash())
		s.body = s.body[:last]
	}

	s.body[len(s.body)-1].Role = RoleTail
	return nil
}

// Render draws the snake in bold.
func (s *Snake) Render(dst *core.Screen) {
	st := core.Style{Color: core.ColorBrightGreen, Bold: true}
	// Tail first so the head wins if anything overlaps.
	for i := len(s.body) - 1; i >= 0; i-- {
		seg := s.body[i]
		glyph := s.texture.Body
		switch seg.Role {
		case RoleHead:
			glyph = s.texture.Head
		case RoleTail:
			glyph = s.texture.Tail
		}
		dst.SetStyled(seg.Pos.X, seg.Pos.Y, glyph, st)
	}
}
