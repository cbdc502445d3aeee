package snake

import (
	"math/rand"

	"github.com/vovakirdan/viper/internal/core"
)

// Default food settings.
const (
	DefaultFoodValue = 5
	DefaultFoodGlyph = '$'
)

// Occupancy reports cells that food must avoid.
type Occupancy interface {
	Occupies(p core.Position) bool
}

// Food is the single item on the board. It is moved, never recreated.
type Food struct {
	Value int
	Glyph rune
	Pos   core.Position

	rng *rand.Rand
}

// NewFood creates food worth value points.
func NewFood(value int, glyph rune, rng *rand.Rand) *Food {
	return &Food{
		Value: value,
		Glyph: glyph,
		Pos:   core.Pos(1, 1),
		rng:   rng,
	}
}

// Relocate moves the food to a random cell strictly inside the border of a
// width x height board, i.e. within [1, width-2] x [1, height-2].
// Cells reported by occupied are skipped while any free interior cell is left.
// Boards too small to have an interior pin the food to (1, 1).
func (f *Food) Relocate(width, height int, occupied Occupancy) {
	if width < 3 || height < 3 {
		f.Pos = core.Pos(1, 1)
		return
	}

	if occupied != nil {
		var free []core.Position
		for y := 1; y <= height-2; y++ {
			for x := 1; x <= width-2; x++ {
				p := core.Pos(x, y)
				if !occupied.Occupies(p) {
					free = append(free, p)
				}
			}
		}
		if len(free) > 0 {
			f.Pos = free[f.rng.Intn(len(free))]
			return
		}
	}

	f.Pos = core.Pos(1+f.rng.Intn(width-2), 1+f.rng.Intn(height-2))
}

// Render draws the food in bold red.
func (f *Food) Render(dst *core.Screen) {
	dst.SetStyled(f.Pos.X, f.Pos.Y, f.Glyph, core.Style{Color: core.ColorRed, Bold: true})
}
