package snake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/viper/internal/core"
)

func TestFoodRelocateStaysInside(t *testing.T) {
	sizes := []struct{ w, h int }{
		{3, 3},
		{4, 7},
		{80, 24},
		{120, 40},
	}

	for _, sz := range sizes {
		f := NewFood(DefaultFoodValue, DefaultFoodGlyph, rand.New(rand.NewSource(7)))
		for i := 0; i < 500; i++ {
			f.Relocate(sz.w, sz.h, nil)
			if f.Pos.X < 1 || f.Pos.X > sz.w-2 || f.Pos.Y < 1 || f.Pos.Y > sz.h-2 {
				t.Fatalf("%dx%d: food at %v outside interior", sz.w, sz.h, f.Pos)
			}
		}
	}
}

func TestFoodRelocateAvoidsSnake(t *testing.T) {
	s := New(core.Pos(5, 2), DefaultTexture)
	f := NewFood(DefaultFoodValue, DefaultFoodGlyph, rand.New(rand.NewSource(99)))

	for i := 0; i < 500; i++ {
		f.Relocate(10, 5, s)
		if s.Occupies(f.Pos) {
			t.Fatalf("food placed on snake at %v", f.Pos)
		}
	}
}

func TestFoodRelocateFullBoard(t *testing.T) {
	// Every interior cell of a 5x3 board belongs to the snake.
	s := New(core.Pos(3, 1), DefaultTexture)
	f := NewFood(DefaultFoodValue, DefaultFoodGlyph, rand.New(rand.NewSource(1)))

	f.Relocate(5, 3, s)
	if f.Pos.X < 1 || f.Pos.X > 3 || f.Pos.Y != 1 {
		t.Errorf("food at %v, expected somewhere in the interior", f.Pos)
	}
}

func TestFoodRelocateDegenerateBoard(t *testing.T) {
	f := NewFood(DefaultFoodValue, DefaultFoodGlyph, rand.New(rand.NewSource(1)))

	for _, sz := range []struct{ w, h int }{{0, 0}, {2, 10}, {10, 2}, {-4, 5}} {
		f.Relocate(sz.w, sz.h, nil)
		if f.Pos != core.Pos(1, 1) {
			t.Errorf("%dx%d: food at %v, expected (1, 1)", sz.w, sz.h, f.Pos)
		}
	}
}

func TestFoodRender(t *testing.T) {
	f := NewFood(DefaultFoodValue, '*', rand.New(rand.NewSource(1)))
	f.Pos = core.Pos(2, 1)

	dst := core.NewScreen(5, 3)
	f.Render(dst)

	c := dst.GetCell(2, 1)
	if c.Rune != '*' || c.Color != core.ColorRed || !c.Bold {
		t.Errorf("GetCell(2, 1) = %+v, expected bold red '*'", c)
	}
}
