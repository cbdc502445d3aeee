package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/viper/internal/config"
	"github.com/vovakirdan/viper/internal/core"
)

// KeyMap translates Bubble Tea key messages to input intents.
// Bindings come from the configuration's key table.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
	Backspace key.Binding
	Pause     key.Binding
	Quit      key.Binding

	Screenshot key.Binding
}

// NewKeyMap builds the bindings from cfg.
func NewKeyMap(cfg config.KeysConfig) KeyMap {
	return KeyMap{
		Up:        binding(cfg.Up, "up"),
		Down:      binding(cfg.Down, "down"),
		Left:      binding(cfg.Left, "left"),
		Right:     binding(cfg.Right, "right"),
		Confirm:   binding(cfg.Confirm, "select"),
		Cancel:    binding(cfg.Cancel, "back"),
		Backspace: binding(cfg.Backspace, "delete"),
		Pause:     binding(cfg.Pause, "pause"),
		Quit:      binding(cfg.Quit, "quit"),

		Screenshot: binding(cfg.Screenshot, "screenshot"),
	}
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), desc),
	)
}

// MapKey translates a key message to a KeyPress.
// Quit is checked first so it cannot be shadowed by another binding.
func (km KeyMap) MapKey(msg tea.KeyMsg) core.KeyPress {
	var kp core.KeyPress
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && !msg.Alt {
		kp.Rune = msg.Runes[0]
	}

	switch {
	case key.Matches(msg, km.Quit):
		kp.Action = core.ActionQuit
	case key.Matches(msg, km.Up):
		kp.Action = core.ActionUp
	case key.Matches(msg, km.Down):
		kp.Action = core.ActionDown
	case key.Matches(msg, km.Left):
		kp.Action = core.ActionLeft
	case key.Matches(msg, km.Right):
		kp.Action = core.ActionRight
	case key.Matches(msg, km.Confirm):
		kp.Action = core.ActionConfirm
	case key.Matches(msg, km.Cancel):
		kp.Action = core.ActionCancel
	case key.Matches(msg, km.Backspace):
		kp.Action = core.ActionBackspace
	case key.Matches(msg, km.Pause):
		kp.Action = core.ActionPause
	}
	return kp
}

// phaseHelp adapts the key map to help.KeyMap for one session phase.
type phaseHelp struct {
	keys  KeyMap
	phase phase
}

// ShortHelp returns the bindings that matter in the current phase.
func (h phaseHelp) ShortHelp() []key.Binding {
	k := h.keys
	switch h.phase {
	case phaseGame:
		return []key.Binding{k.Pause, k.Quit, k.Up, k.Down, k.Left, k.Right}
	case phaseName:
		return []key.Binding{k.Confirm, k.Backspace, k.Quit}
	default:
		return []key.Binding{k.Confirm, k.Cancel, k.Up, k.Down, k.Quit}
	}
}

// FullHelp returns every binding.
func (h phaseHelp) FullHelp() [][]key.Binding {
	k := h.keys
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Confirm, k.Cancel, k.Backspace},
		{k.Pause, k.Screenshot, k.Quit},
	}
}
