package snake

import "github.com/vovakirdan/viper/internal/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the complete game state for determinism testing and logs.
type Snapshot struct {
	Tick     uint64
	Username string
	Score    int
	Eaten    int
	SnakeLen int
	Head     core.Position
	Dir      core.Direction
	Speed    int
	Food     core.Position
	State    GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	if g.over {
		state = StateGameOver
	}

	return Snapshot{
		Tick:     g.tick,
		Username: g.username,
		Score:    g.score,
		Eaten:    g.eaten,
		SnakeLen: g.snake.Len(),
		Head:     g.snake.Head(),
		Dir:      g.snake.Direction(),
		Speed:    g.snake.Speed(),
		Food:     g.food.Pos,
		State:    state,
	}
}
