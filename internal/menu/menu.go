// Package menu provides the boxed option menus shown around a round: the
// start screen, the pause and game-over screen, and the name prompt.
//
// A Component is a pure state machine. The session feeds it one polled key
// at a time through HandleKey and redraws it with Draw; it never reads the
// terminal itself.
package menu

import (
	"unicode/utf8"

	"github.com/vovakirdan/viper/internal/core"
)

// Action is the outcome a menu resolves to.
type Action int

const (
	ActionNone Action = iota
	ActionStart
	ActionResume
	ActionRestart
	ActionQuit
	ActionSubmit // name entry finished; Result.Text holds the name
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionStart:
		return "start"
	case ActionResume:
		return "resume"
	case ActionRestart:
		return "restart"
	case ActionQuit:
		return "quit"
	case ActionSubmit:
		return "submit"
	default:
		return "unknown"
	}
}

// State is the lifecycle stage of a Component.
type State int

const (
	StateDisplaying    State = iota // built, not drawn yet
	StateAwaitingInput              // drawn, polling for keys
	StateResolved                   // terminal; the panel is released
)

func (s State) String() string {
	switch s {
	case StateDisplaying:
		return "displaying"
	case StateAwaitingInput:
		return "awaiting_input"
	case StateResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// Option is one selectable line.
type Option struct {
	Text   string
	Action Action
}

// Result is what a resolved menu hands back to its caller.
type Result struct {
	Action Action
	Text   string
}

// Layout describes a menu before it is placed on screen.
type Layout struct {
	Height  int
	Width   int
	Title   string
	Options []Option
	Input   bool // show a single-line text field
}

// Row offsets inside the panel.
const (
	titleRow       = 0
	firstOptionRow = 2
)

var (
	titleStyle    = core.Style{Color: core.ColorRed, Bold: true}
	selectedStyle = core.Style{Bold: true}
	optionStyle   = core.Style{}
	inputStyle    = core.Style{Color: core.ColorBrightWhite}
)

// Component is a single menu invocation. It owns its panel from New until it
// resolves or Close is called.
type Component struct {
	panel    *core.Panel
	title    string
	options  []Option
	selected int
	input    bool
	buffer   []rune
	state    State
	result   Result
}

// New builds a menu centered on rc. The panel grows to fit every option.
func New(rc *core.RenderContext, l Layout) *Component {
	height := l.Height
	need := firstOptionRow + len(l.Options) + 1
	if l.Input {
		need++
	}
	height = core.Max(height, need)
	width := core.Max(l.Width, utf8.RuneCountInString(l.Title)+4)

	opts := make([]Option, len(l.Options))
	copy(opts, l.Options)

	return &Component{
		panel:   rc.NewPanel(height, width),
		title:   l.Title,
		options: opts,
		input:   l.Input,
		state:   StateDisplaying,
	}
}

// State returns the current lifecycle stage.
func (c *Component) State() State {
	return c.state
}

// Result returns the resolution, valid once State is StateResolved.
func (c *Component) Result() Result {
	return c.result
}

// Selected returns the index of the highlighted option.
func (c *Component) Selected() int {
	return c.selected
}

// Options returns the menu lines.
func (c *Component) Options() []Option {
	return c.options
}

// Text returns the current contents of the text field.
func (c *Component) Text() string {
	return string(c.buffer)
}

// Next moves the highlight down, wrapping to the first option.
func (c *Component) Next() {
	if n := len(c.options); n > 0 {
		c.selected = (c.selected + 1) % n
	}
}

// Prev moves the highlight up, wrapping to the last option.
func (c *Component) Prev() {
	if n := len(c.options); n > 0 {
		c.selected = (c.selected - 1 + n) % n
	}
}

// HandleKey applies one polled key. It reports true once the menu has
// resolved; the panel is already released by then. An empty key is a no-op.
func (c *Component) HandleKey(k core.KeyPress) (Result, bool) {
	if c.state == StateResolved {
		return c.result, true
	}
	if k.Empty() {
		return Result{}, false
	}

	if c.input {
		return c.handleInputKey(k)
	}

	switch k.Action {
	case core.ActionDown:
		c.Next()
	case core.ActionUp:
		c.Prev()
	case core.ActionConfirm:
		if len(c.options) > 0 {
			return c.resolve(Result{Action: c.options[c.selected].Action}), true
		}
	case core.ActionCancel:
		return c.resolve(Result{Action: ActionQuit}), true
	}
	return Result{}, false
}

func (c *Component) handleInputKey(k core.KeyPress) (Result, bool) {
	switch {
	case k.Action == core.ActionConfirm || k.Action == core.ActionCancel:
		return c.resolve(Result{Action: ActionSubmit, Text: string(c.buffer)}), true
	case k.Action == core.ActionBackspace:
		if len(c.buffer) > 0 {
			c.buffer = c.buffer[:len(c.buffer)-1]
		}
	case k.Alphanumeric():
		if len(c.buffer) < c.inputCap() {
			c.buffer = append(c.buffer, k.Rune)
		}
	}
	return Result{}, false
}

// inputCap is the room left between the borders on the input row.
func (c *Component) inputCap() int {
	return core.Max(c.panel.Width()-4, 0)
}

func (c *Component) resolve(r Result) Result {
	c.result = r
	c.state = StateResolved
	c.panel.Close()
	return r
}

// Close releases the panel without resolving. Safe to call any number of
// times and after resolution.
func (c *Component) Close() {
	c.panel.Close()
}

// Draw redraws the whole menu and flushes it onto the frame.
func (c *Component) Draw() {
	if c.state == StateResolved || c.panel.Closed() {
		return
	}

	c.panel.Clear()
	c.panel.Box()
	c.panel.DrawCentered(titleRow, " "+c.title+" ", titleStyle)

	for i, opt := range c.options {
		st := optionStyle
		text := "  " + opt.Text
		if i == c.selected {
			st = selectedStyle
			text = "> " + opt.Text
		}
		c.panel.DrawText(firstOptionRow+i, 2, text, st)
	}

	if c.input {
		row := firstOptionRow + len(c.options)
		c.panel.DrawText(row, 2, string(c.buffer)+"_", inputStyle)
	}

	c.panel.Refresh()
	c.state = StateAwaitingInput
}
