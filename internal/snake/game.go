package snake

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/viper/internal/core"
)

// Board limits. The upper bound keeps Position.Hash collision free.
const (
	MinBoardWidth  = InitialLength + 5
	MinBoardHeight = 5
	MaxBoardSide   = core.HashStride - 1
)

// DefaultTurnSpeed is the speed factor set by an accepted turn.
const DefaultTurnSpeed = 4

// Options tunes a Game. Zero fields take the defaults.
type Options struct {
	Seed      int64 // 0 means seed from the clock
	FoodValue int
	FoodGlyph rune
	Texture   Texture
	TurnSpeed int
}

func (o Options) withDefaults() Options {
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	if o.FoodValue == 0 {
		o.FoodValue = DefaultFoodValue
	}
	if o.FoodGlyph == 0 {
		o.FoodGlyph = DefaultFoodGlyph
	}
	if o.Texture == (Texture{}) {
		o.Texture = DefaultTexture
	}
	if o.TurnSpeed <= 0 {
		o.TurnSpeed = DefaultTurnSpeed
	}
	return o
}

// Game is one play session: a player, a score, a snake and its food.
// A restart replaces the whole Game.
type Game struct {
	id        string
	username  string
	score     int
	eaten     int
	snake     *Snake
	food      *Food
	width     int
	height    int
	turnSpeed int
	tick      uint64
	over      bool
}

// NewGame creates a session for name on a width x height board whose outer
// ring is the border. The snake starts in the middle heading right.
func NewGame(name string, width, height int, opts Options) *Game {
	opts = opts.withDefaults()
	width = core.Clamp(width, MinBoardWidth, MaxBoardSide)
	height = core.Clamp(height, MinBoardHeight, MaxBoardSide)

	rng := rand.New(rand.NewSource(opts.Seed))
	interior := core.NewRect(1, 1, width-2, height-2)
	cx, cy := interior.Center()

	s := New(core.Pos(cx, cy), opts.Texture)
	s.SetBounds(interior)

	g := &Game{
		id:        uuid.NewString(),
		username:  name,
		snake:     s,
		food:      NewFood(opts.FoodValue, opts.FoodGlyph, rng),
		width:     width,
		height:    height,
		turnSpeed: opts.TurnSpeed,
	}
	g.food.Relocate(width, height, s)
	return g
}

// ID returns the unique round identifier.
func (g *Game) ID() string {
	return g.id
}

// Username returns the player name.
func (g *Game) Username() string {
	return g.username
}

// Score returns the points collected so far.
func (g *Game) Score() int {
	return g.score
}

// Snake returns the snake owned by the game.
func (g *Game) Snake() *Snake {
	return g.snake
}

// Food returns the food owned by the game.
func (g *Game) Food() *Food {
	return g.food
}

// Size returns the board dimensions including the border.
func (g *Game) Size() (width, height int) {
	return g.width, g.height
}

// Over reports whether the snake has run into itself.
func (g *Game) Over() bool {
	return g.over
}

// ControlSnake applies a steering intent. Non-steering actions and reversals
// are ignored.
func (g *Game) ControlSnake(a core.Action) bool {
	d, ok := a.Direction()
	if !ok {
		return false
	}
	return g.snake.Turn(d, g.turnSpeed)
}

// UpdateScore checks whether the head is on the food. On a hit the score
// grows by the food's value, the snake grows and the food moves to a cell
// off the grown snake.
func (g *Game) UpdateScore(width, height int) bool {
	if g.snake.Head() != g.food.Pos {
		return false
	}
	g.score += g.food.Value
	g.eaten++
	g.snake.ExtendBack()
	g.food.Relocate(width, height, g.snake)
	return true
}

// Step runs one tick: steer (or slow down when no turn was taken), advance,
// then check the food. It returns an error wrapping ErrSelfCollision when the
// round ends; a finished game ignores further steps.
func (g *Game) Step(k core.KeyPress) error {
	if g.over {
		return nil
	}
	g.tick++

	if !g.ControlSnake(k.Action) {
		g.snake.Decay()
	}

	if err := g.snake.Propagate(); err != nil {
		g.over = true
		return err
	}

	g.UpdateScore(g.width, g.height)
	return nil
}

// Delay returns the tick interval for base at the current speed.
func (g *Game) Delay(base time.Duration) time.Duration {
	return base / time.Duration(g.snake.Speed())
}

// Display draws the board, the status line, the snake and the food.
func (g *Game) Display(dst *core.Screen) {
	dst.DrawBox(core.NewRect(0, 0, g.width, g.height))
	header := fmt.Sprintf(" USER : %s | SCORE : %d ", g.username, g.score)
	dst.DrawStyledText(2, 0, header, core.Style{Bold: true})
	g.food.Render(dst)
	g.snake.Render(dst)
}
