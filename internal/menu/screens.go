package menu

import "github.com/vovakirdan/viper/internal/core"

// Titles of the built-in menus.
const (
	StartTitle     = "VIPER"
	PauseTitle     = "Paused"
	NameEntryTitle = "Your Name?"
)

// Start builds the opening menu: Start or Quit.
func Start(rc *core.RenderContext, height, width int) *Component {
	return New(rc, Layout{
		Height: height,
		Width:  width,
		Title:  StartTitle,
		Options: []Option{
			{Text: "Start", Action: ActionStart},
			{Text: "Quit", Action: ActionQuit},
		},
	})
}

// Pause builds the pause menu. After a game over there is nothing to resume,
// so only Restart and Quit are offered.
func Pause(rc *core.RenderContext, height, width int, title string, isGameOver bool) *Component {
	var opts []Option
	if !isGameOver {
		opts = append(opts, Option{Text: "Resume", Action: ActionResume})
	}
	opts = append(opts,
		Option{Text: "Restart", Action: ActionRestart},
		Option{Text: "Quit", Action: ActionQuit},
	)

	return New(rc, Layout{
		Height:  height,
		Width:   width,
		Title:   title,
		Options: opts,
	})
}

// NameEntry builds the player name prompt.
func NameEntry(rc *core.RenderContext, height, width int) *Component {
	return New(rc, Layout{
		Height: height,
		Width:  width,
		Title:  NameEntryTitle,
		Input:  true,
	})
}
