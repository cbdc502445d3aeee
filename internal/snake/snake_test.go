package snake

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vovakirdan/viper/internal/core"
)

// fromPath builds a snake from head-first positions.
func fromPath(path []core.Position, dir core.Direction) *Snake {
	s := &Snake{
		occupied:  make(map[int]struct{}),
		direction: dir,
		speed:     1,
		texture:   DefaultTexture,
	}
	for i, p := range path {
		role := RoleBody
		switch i {
		case 0:
			role = RoleHead
		case len(path) - 1:
			role = RoleTail
		}
		s.body = append(s.body, Segment{Pos: p, Role: role})
		s.occupied[p.Hash()] = struct{}{}
	}
	return s
}

func occupiedCopy(s *Snake) map[int]struct{} {
	out := make(map[int]struct{}, len(s.occupied))
	for k := range s.occupied {
		out[k] = struct{}{}
	}
	return out
}

func checkInvariants(t *testing.T, s *Snake) {
	t.Helper()

	if len(s.occupied) != len(s.body) {
		t.Fatalf("occupied set has %d entries, body has %d segments", len(s.occupied), len(s.body))
	}
	for _, seg := range s.body {
		if _, ok := s.occupied[seg.Pos.Hash()]; !ok {
			t.Fatalf("segment %v missing from occupied set", seg.Pos)
		}
	}

	heads, tails := 0, 0
	for _, seg := range s.body {
		switch seg.Role {
		case RoleHead:
			heads++
		case RoleTail:
			tails++
		}
	}
	if heads != 1 || tails != 1 {
		t.Fatalf("expected one head and one tail, got %d heads and %d tails", heads, tails)
	}
	if s.body[0].Role != RoleHead || s.body[len(s.body)-1].Role != RoleTail {
		t.Fatal("head must be first and tail last")
	}
}

func TestNewSnake(t *testing.T) {
	s := New(core.Pos(10, 10), DefaultTexture)

	if s.Len() != InitialLength {
		t.Fatalf("Len() = %d, expected %d", s.Len(), InitialLength)
	}
	if s.Direction() != core.DirRight {
		t.Errorf("Direction() = %v, expected right", s.Direction())
	}
	if s.Head() != core.Pos(10, 10) || s.Tail() != core.Pos(8, 10) {
		t.Errorf("Head/Tail = %v/%v, expected (10,10)/(8,10)", s.Head(), s.Tail())
	}
	if s.Speed() != 1 {
		t.Errorf("Speed() = %d, expected 1", s.Speed())
	}
	checkInvariants(t, s)
}

func TestPropagateKeepsLength(t *testing.T) {
	s := New(core.Pos(10, 10), DefaultTexture)

	for i := 0; i < 20; i++ {
		if i == 5 {
			s.Turn(core.DirDown, 1)
		}
		if i == 10 {
			s.Turn(core.DirLeft, 1)
		}

		lenBefore, occBefore := s.Len(), s.OccupiedCount()
		if err := s.Propagate(); err != nil {
			t.Fatalf("tick %d: Propagate() failed: %v", i, err)
		}
		if s.Len() != lenBefore {
			t.Errorf("tick %d: Len() = %d, expected %d", i, s.Len(), lenBefore)
		}
		if s.OccupiedCount() != occBefore {
			t.Errorf("tick %d: OccupiedCount() = %d, expected %d", i, s.OccupiedCount(), occBefore)
		}
		checkInvariants(t, s)
	}
}

func TestTwoTicksRight(t *testing.T) {
	start := core.Pos(10, 10)
	s := New(start, DefaultTexture)

	for i := 0; i < 2; i++ {
		if err := s.Propagate(); err != nil {
			t.Fatalf("Propagate() failed: %v", err)
		}
	}

	if s.Head() != core.Pos(12, 10) {
		t.Errorf("Head() = %v, expected (12, 10)", s.Head())
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", s.Len())
	}
}

func TestSelfCollisionLeavesStateUntouched(t *testing.T) {
	s := New(core.Pos(10, 10), DefaultTexture)
	s.ExtendBack()
	s.ExtendBack()

	s.Turn(core.DirUp, 1)
	if err := s.Propagate(); err != nil {
		t.Fatalf("Propagate() up failed: %v", err)
	}
	s.Turn(core.DirLeft, 1)
	if err := s.Propagate(); err != nil {
		t.Fatalf("Propagate() left failed: %v", err)
	}
	s.Turn(core.DirDown, 1)

	bodyBefore := s.Segments()
	occBefore := occupiedCopy(s)

	err := s.Propagate()
	if !errors.Is(err, ErrSelfCollision) {
		t.Fatalf("Propagate() error = %v, expected ErrSelfCollision", err)
	}

	if !reflect.DeepEqual(s.Segments(), bodyBefore) {
		t.Errorf("body changed on collision:\n got %v\nwant %v", s.Segments(), bodyBefore)
	}
	if !reflect.DeepEqual(occupiedCopy(s), occBefore) {
		t.Error("occupied set changed on collision")
	}
}

func TestMovingOntoTailIsCollision(t *testing.T) {
	// A 2x2 loop: the head's next cell is the current tail.
	s := fromPath([]core.Position{
		core.Pos(5, 5), core.Pos(6, 5), core.Pos(6, 6), core.Pos(5, 6),
	}, core.DirDown)

	if err := s.Propagate(); !errors.Is(err, ErrSelfCollision) {
		t.Errorf("Propagate() error = %v, expected ErrSelfCollision", err)
	}
}

func TestExtendBackGrowsByOne(t *testing.T) {
	s := New(core.Pos(10, 10), DefaultTexture)

	lenBefore, occBefore := s.Len(), s.OccupiedCount()
	s.ExtendBack()

	if s.Len() != lenBefore+1 {
		t.Errorf("Len() = %d, expected %d", s.Len(), lenBefore+1)
	}
	if s.OccupiedCount() != occBefore+1 {
		t.Errorf("OccupiedCount() = %d, expected %d", s.OccupiedCount(), occBefore+1)
	}
	// Straight snake heading right grows to the left.
	if s.Tail() != core.Pos(7, 10) {
		t.Errorf("Tail() = %v, expected (7, 10)", s.Tail())
	}
	checkInvariants(t, s)
}

func TestExtendBackAfterTurn(t *testing.T) {
	// Tail segment runs vertically while the head heads right.
	s := fromPath([]core.Position{
		core.Pos(6, 5), core.Pos(5, 5), core.Pos(5, 6), core.Pos(5, 7),
	}, core.DirRight)

	s.ExtendBack()

	if s.Tail() != core.Pos(5, 8) {
		t.Errorf("Tail() = %v, expected (5, 8)", s.Tail())
	}
	checkInvariants(t, s)
}

func TestExtendBackBoxedInDefersGrowth(t *testing.T) {
	// The tail at (5,5) has all four neighbours taken by the body.
	s := fromPath([]core.Position{
		core.Pos(4, 4), core.Pos(5, 4), core.Pos(6, 4), core.Pos(6, 5),
		core.Pos(6, 6), core.Pos(5, 6), core.Pos(4, 6), core.Pos(4, 5),
		core.Pos(5, 5),
	}, core.DirLeft)

	lenBefore := s.Len()
	s.ExtendBack()
	if s.Len() != lenBefore {
		t.Fatalf("boxed-in ExtendBack should defer, Len() = %d", s.Len())
	}
	checkInvariants(t, s)

	if err := s.Propagate(); err != nil {
		t.Fatalf("Propagate() failed: %v", err)
	}
	if s.Len() != lenBefore+1 {
		t.Errorf("Len() after deferred growth = %d, expected %d", s.Len(), lenBefore+1)
	}
	checkInvariants(t, s)

	if err := s.Propagate(); err != nil {
		t.Fatalf("Propagate() failed: %v", err)
	}
	if s.Len() != lenBefore+1 {
		t.Errorf("growth should be applied once, Len() = %d", s.Len())
	}
}

func TestTurnRejectsReversal(t *testing.T) {
	for _, d := range []core.Direction{core.DirUp, core.DirDown, core.DirLeft, core.DirRight} {
		t.Run(d.String(), func(t *testing.T) {
			s := New(core.Pos(10, 10), DefaultTexture)
			s.direction = d

			if s.Turn(d.Opposite(), 4) {
				t.Errorf("Turn(%v) from %v should be rejected", d.Opposite(), d)
			}
			if s.Direction() != d {
				t.Errorf("Direction() = %v, expected %v", s.Direction(), d)
			}
			if s.Speed() != 1 {
				t.Errorf("rejected turn should not change speed, got %d", s.Speed())
			}

			for _, other := range []core.Direction{core.DirUp, core.DirDown, core.DirLeft, core.DirRight} {
				if other == d.Opposite() {
					continue
				}
				s.direction = d
				if !s.Turn(other, 4) {
					t.Errorf("Turn(%v) from %v should be accepted", other, d)
				}
				if s.Direction() != other {
					t.Errorf("Direction() = %v, expected %v", s.Direction(), other)
				}
			}
		})
	}
}

func TestSpeedDecay(t *testing.T) {
	s := New(core.Pos(10, 10), DefaultTexture)
	s.Turn(core.DirUp, 4)

	expected := []int{3, 2, 1, 1}
	for i, want := range expected {
		s.Decay()
		if s.Speed() != want {
			t.Errorf("after %d decays Speed() = %d, expected %d", i+1, s.Speed(), want)
		}
	}
}

func TestWrapAroundBounds(t *testing.T) {
	s := New(core.Pos(8, 3), DefaultTexture)
	s.SetBounds(core.NewRect(1, 1, 8, 4))

	if err := s.Propagate(); err != nil {
		t.Fatalf("Propagate() failed: %v", err)
	}
	if s.Head() != core.Pos(1, 3) {
		t.Errorf("Head() = %v, expected wrap to (1, 3)", s.Head())
	}
	checkInvariants(t, s)
}

func TestRenderUsesTexture(t *testing.T) {
	s := New(core.Pos(3, 1), DefaultTexture)
	dst := core.NewScreen(10, 3)
	s.Render(dst)

	if got := dst.Row(1); got[1:4] != "oO@" {
		t.Errorf("Row(1) = %q, expected \"oO@\" at 1..3", got)
	}
	if !dst.GetCell(3, 1).Bold {
		t.Error("snake should be drawn bold")
	}
}
