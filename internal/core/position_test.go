package core

import "testing"

var allDirections = []Direction{DirUp, DirDown, DirLeft, DirRight}

func TestOppositeIsInvolution(t *testing.T) {
	for _, d := range allDirections {
		if d.Opposite() == d {
			t.Errorf("Opposite(%v) should differ from %v", d, d)
		}
		if d.Opposite().Opposite() != d {
			t.Errorf("Opposite(Opposite(%v)) = %v, expected %v", d, d.Opposite().Opposite(), d)
		}
	}
}

func TestPositionNext(t *testing.T) {
	p := Pos(10, 10)

	tests := []struct {
		dir      Direction
		expected Position
	}{
		{DirUp, Pos(10, 9)},
		{DirDown, Pos(10, 11)},
		{DirLeft, Pos(9, 10)},
		{DirRight, Pos(11, 10)},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			if got := p.Next(tc.dir); got != tc.expected {
				t.Errorf("Next(%v) = %v, expected %v", tc.dir, got, tc.expected)
			}
		})
	}

	if p != Pos(10, 10) {
		t.Errorf("Next must not mutate the receiver, got %v", p)
	}
}

func TestNextThenOppositeReturns(t *testing.T) {
	p := Pos(3, 7)
	for _, d := range allDirections {
		if got := p.Next(d).Next(d.Opposite()); got != p {
			t.Errorf("Next(%v).Next(%v) = %v, expected %v", d, d.Opposite(), got, p)
		}
	}
}

func TestHashUniqueWithinGrid(t *testing.T) {
	seen := make(map[int]Position)
	for x := 0; x < 300; x++ {
		for y := 0; y < 200; y++ {
			p := Pos(x, y)
			if other, ok := seen[p.Hash()]; ok {
				t.Fatalf("Hash collision between %v and %v", p, other)
			}
			seen[p.Hash()] = p
		}
	}
}

func TestPositionWrap(t *testing.T) {
	r := NewRect(1, 1, 10, 5)

	tests := []struct {
		name    string
		in, out Position
	}{
		{"inside", Pos(4, 3), Pos(4, 3)},
		{"off left", Pos(0, 3), Pos(10, 3)},
		{"off right", Pos(11, 3), Pos(1, 3)},
		{"off top", Pos(4, 0), Pos(4, 5)},
		{"off bottom", Pos(4, 6), Pos(4, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Wrap(r); got != tc.out {
				t.Errorf("Wrap(%v) = %v, expected %v", tc.in, got, tc.out)
			}
		})
	}

	if got := Pos(-5, -5).Wrap(Rect{}); got != Pos(-5, -5) {
		t.Errorf("Wrap on empty rect should be identity, got %v", got)
	}
}
