package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/viper/internal/config"
	"github.com/vovakirdan/viper/internal/core"
	"github.com/vovakirdan/viper/internal/menu"
	"github.com/vovakirdan/viper/internal/snake"
	"github.com/vovakirdan/viper/internal/storage"
)

// phase is the part of the session currently on screen.
type phase int

const (
	phaseStart phase = iota
	phaseName
	phaseGame
	phasePause
	phaseOver
	phaseDone
)

func (p phase) String() string {
	switch p {
	case phaseStart:
		return "start"
	case phaseName:
		return "name"
	case phaseGame:
		return "game"
	case phasePause:
		return "pause"
	case phaseOver:
		return "game_over"
	case phaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// Options configures a session.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Ledger  *storage.Ledger // optional; enables the best score on game over
	Logger  *log.Logger     // optional; discards when nil

	// Username replaces an empty answer to the name prompt.
	// Falls back to the configured default name when empty.
	Username string

	// ScreenshotDir receives text dumps of the frame. Empty disables them.
	ScreenshotDir string
}

// SessionModel runs one player's session: start menu, name prompt, rounds of
// snake and the pause / game-over menu between them. All state changes happen
// on ticks; keys are only queued when they arrive.
type SessionModel struct {
	cfg        config.Config
	runtime    core.RuntimeConfig
	ledger     *storage.Ledger
	logger     *log.Logger
	fallback   string
	shotDir    string
	keys       KeyMap
	help       help.Model
	difficulty *config.DifficultyManager

	rc    *core.RenderContext
	queue keyQueue
	seq   uint64
	phase phase
	menu  *menu.Component

	name     string
	game     *snake.Game
	recorded bool
	rounds   int
}

// NewSessionModel creates a session sized to opts.Runtime, showing the start
// menu.
func NewSessionModel(opts Options) SessionModel {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	fallback := opts.Username
	if fallback == "" {
		fallback = opts.Config.Player.DefaultName
	}

	rt := opts.Runtime
	if rt.BaseDelay <= 0 {
		rt.BaseDelay = opts.Config.Tick.BaseDelay()
	}
	if rt.MenuPoll <= 0 {
		rt.MenuPoll = opts.Config.Tick.MenuPoll()
	}

	h := help.New()
	h.Width = rt.ScreenW

	m := SessionModel{
		cfg:        opts.Config,
		runtime:    rt,
		ledger:     opts.Ledger,
		logger:     logger,
		fallback:   fallback,
		shotDir:    opts.ScreenshotDir,
		keys:       NewKeyMap(opts.Config.Keys),
		help:       h,
		difficulty: config.NewDifficultyManager(opts.Config.Difficulty),
		rc:         core.NewRenderContext(rt.ScreenW, frameHeight(rt.ScreenH)),
	}
	m.openStart()
	m.draw()
	return m
}

// frameHeight leaves the last terminal row to the help footer.
func frameHeight(h int) int {
	return core.Max(h-1, 0)
}

// Init starts the tick chain.
func (m SessionModel) Init() tea.Cmd {
	return m.schedule()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.rc.Resize(msg.Width, frameHeight(msg.Height))
		m.help.Width = msg.Width
		m.draw()
		return m, nil

	case TickMsg:
		if msg.Seq != m.seq || m.phase == phaseDone {
			return m, nil // stale chain
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues a key for the next tick. Quit and screenshot act immediately.
func (m SessionModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if _, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("could not save screenshot", "error", err)
		}
		return m, nil
	}
	kp := m.keys.MapKey(msg)
	if kp.Action == core.ActionQuit {
		cmd := m.quit()
		return m, cmd
	}
	if kp.Empty() {
		return m, nil
	}
	if !m.queue.Push(kp) {
		m.logger.Debug("key dropped, queue full", "key", msg.String())
	}
	return m, nil
}

// handleTick runs one poll cycle: take at most one key, act on it, redraw.
func (m SessionModel) handleTick() (tea.Model, tea.Cmd) {
	k := m.queue.Pop()

	if m.phase == phaseGame {
		m.stepGame(k)
	} else if res, done := m.menu.HandleKey(k); done {
		m.resolve(res)
	}

	if m.phase == phaseDone {
		return m, tea.Quit
	}
	m.draw()
	return m, m.schedule()
}

// stepGame advances the round by one tick.
func (m *SessionModel) stepGame(k core.KeyPress) {
	if k.Action == core.ActionPause || k.Action == core.ActionCancel {
		m.openPause()
		return
	}

	err := m.game.Step(k)
	if err == nil {
		return
	}
	if !errors.Is(err, snake.ErrSelfCollision) {
		m.logger.Error("round failed", "round", m.game.ID(), "error", err)
	}

	m.logger.Info("self collision",
		"round", m.game.ID(),
		"user", m.name,
		"score", m.game.Score(),
		"length", m.game.Snake().Len(),
	)
	m.recordRound(storage.ReasonCollision)
	m.openGameOver()
}

// resolve acts on a finished menu. The menu has already released its panel.
func (m *SessionModel) resolve(res menu.Result) {
	m.logger.Debug("menu resolved", "menu", m.phase, "action", res.Action)
	m.menu = nil

	switch res.Action {
	case menu.ActionStart:
		m.openName()
	case menu.ActionSubmit:
		m.name = res.Text
		if m.name == "" {
			m.name = m.fallback
		}
		m.startRound()
	case menu.ActionResume:
		m.setPhase(phaseGame)
	case menu.ActionRestart:
		m.recordRound(storage.ReasonRestart)
		m.startRound()
	case menu.ActionQuit:
		m.recordRound(storage.ReasonQuit)
		m.setPhase(phaseDone)
	}
}

// quit ends the session from any phase.
func (m *SessionModel) quit() tea.Cmd {
	if m.menu != nil {
		m.menu.Close()
		m.menu = nil
	}
	m.recordRound(storage.ReasonQuit)
	m.setPhase(phaseDone)
	return tea.Quit
}

func (m *SessionModel) setPhase(p phase) {
	if p == m.phase {
		return
	}
	m.phase = p
	m.seq++ // ticks scheduled by the previous phase are stale
	m.queue.Reset()
	if p == phaseDone {
		m.logger.Info("session ended", "user", m.name, "rounds", m.rounds)
	}
}

func (m *SessionModel) openStart() {
	sz := m.cfg.Menus.Start
	m.menu = menu.Start(m.rc, sz.Height, sz.Width)
	m.setPhase(phaseStart)
}

func (m *SessionModel) openName() {
	sz := m.cfg.Menus.Name
	m.menu = menu.NameEntry(m.rc, sz.Height, sz.Width)
	m.setPhase(phaseName)
}

func (m *SessionModel) openPause() {
	sz := m.cfg.Menus.Pause
	m.menu = menu.Pause(m.rc, sz.Height, sz.Width, menu.PauseTitle, false)
	m.setPhase(phasePause)
}

func (m *SessionModel) openGameOver() {
	title := fmt.Sprintf("Score : %d", m.game.Score())
	if m.ledger != nil {
		best, err := m.ledger.Best(m.name)
		if err != nil {
			m.logger.Warn("could not read best score", "error", err)
		} else {
			title = fmt.Sprintf("%s | Best : %d", title, best)
		}
	}

	sz := m.cfg.Menus.Pause
	m.menu = menu.Pause(m.rc, sz.Height, sz.Width, title, true)
	m.setPhase(phaseOver)
}

// startRound replaces the current game with a fresh one for the same player.
func (m *SessionModel) startRound() {
	seed := m.runtime.Seed
	if seed != 0 {
		seed += int64(m.rounds)
	}

	m.game = snake.NewGame(m.name, m.rc.Width(), m.rc.Height(), snake.Options{
		Seed:      seed,
		FoodValue: m.cfg.Food.Value,
		FoodGlyph: config.Glyph(m.cfg.Food.Glyph),
		Texture: snake.Texture{
			Head: config.Glyph(m.cfg.Texture.Head),
			Body: config.Glyph(m.cfg.Texture.Body),
			Tail: config.Glyph(m.cfg.Texture.Tail),
		},
		TurnSpeed: m.cfg.Tick.TurnSpeed,
	})
	m.recorded = false
	m.rounds++
	m.setPhase(phaseGame)

	w, h := m.game.Size()
	m.logger.Info("round started", "round", m.game.ID(), "user", m.name, "board", fmt.Sprintf("%dx%d", w, h))
}

// recordRound writes the current round to the ledger once.
func (m *SessionModel) recordRound(reason string) {
	if m.game == nil || m.recorded {
		return
	}
	m.recorded = true
	if m.ledger == nil {
		return
	}

	snap := m.game.Snapshot()
	err := m.ledger.RecordRound(storage.Round{
		ID:       m.game.ID(),
		Username: m.name,
		Score:    snap.Score,
		Length:   snap.SnakeLen,
		Ticks:    snap.Tick,
		Reason:   reason,
	})
	if err != nil {
		m.logger.Warn("could not record round", "round", m.game.ID(), "error", err)
	}
}

// delay returns the wait before the next tick in the current phase.
func (m *SessionModel) delay() time.Duration {
	if m.phase != phaseGame {
		return m.runtime.MenuPoll
	}
	snap := m.game.Snapshot()
	base := m.difficulty.Delay(m.runtime.BaseDelay, snap.Score)
	return m.game.Delay(base)
}

func (m *SessionModel) schedule() tea.Cmd {
	return tickCmd(m.seq, m.delay())
}

// draw composes the frame: the board under any open menu.
func (m *SessionModel) draw() {
	screen := m.rc.Screen()
	screen.Clear()

	if m.game != nil && m.phase != phaseStart && m.phase != phaseName {
		m.game.Display(screen)
	}
	if m.menu != nil {
		m.menu.Draw()
	}
}

// saveScreenshot writes the current frame as plain text and returns its path.
func (m *SessionModel) saveScreenshot() (string, error) {
	if m.shotDir == "" {
		return "", nil
	}
	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot dir: %w", err)
	}

	name := m.phase.String()
	if m.game != nil {
		name = m.game.ID()
	}
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.txt", name, timestamp))

	if err := os.WriteFile(path, []byte(m.rc.Screen().String()), 0o600); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	m.logger.Debug("screenshot saved", "path", path)
	return path, nil
}

// View renders the frame and the help footer.
func (m SessionModel) View() string {
	if m.phase == phaseDone {
		return ""
	}
	return RenderScreen(m.rc.Screen()) + "\n" + m.help.View(phaseHelp{keys: m.keys, phase: m.phase})
}

// Name returns the player name, empty until the prompt is answered.
func (m SessionModel) Name() string {
	return m.name
}

// Run starts the Bubble Tea program for a local session.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
