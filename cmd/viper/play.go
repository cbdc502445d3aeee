package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/viper/internal/core"
	"github.com/vovakirdan/viper/internal/platform/tui"
	"github.com/vovakirdan/viper/internal/storage"
)

// summaryRounds is how many rounds the exit summary lists.
const summaryRounds = 5

var (
	flagLogFile  string
	flagLogLevel string
	flagName     string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD  - Steer (menus: Up/Down to move)
  Enter        - Select
  P/Esc        - Pause (menus: Esc quits)
  Ctrl+S       - Save a text screenshot to ~/.viper/screenshots
  Ctrl+C       - Quit

Difficulty options:
  easy   - Slower ticks, progression from the lowest level
  normal - Start at 30% difficulty, progresses to max
  hard   - Faster ticks, start at 70% difficulty
  fixed  - No progression, stays at config's initial level

Examples:
  viper play
  viper play --difficulty easy
  viper play --config ./my-viper.yaml --log-file viper.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: no logging)")
	cmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	cmd.Flags().StringVar(&flagName, "name", "", "Name used when the name prompt is left empty")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// Get terminal size early so the first frame fits
	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.BaseDelay = cfg.Tick.BaseDelay()
	rt.MenuPoll = cfg.Tick.MenuPoll()
	rt.Seed = flagSeed

	// Best scores only live as long as this process
	ledger, err := storage.Open()
	if err != nil {
		logger.Warn("could not open round ledger", "error", err)
		ledger = nil
	} else {
		defer ledger.Close()
	}

	var shotDir string
	if home, homeErr := os.UserHomeDir(); homeErr == nil {
		shotDir = filepath.Join(home, ".viper", "screenshots")
	}

	err = tui.Run(tui.Options{
		Config:        cfg,
		Runtime:       rt,
		Ledger:        ledger,
		Logger:        logger,
		Username:      flagName,
		ScreenshotDir: shotDir,
	})
	if err != nil {
		logger.Error("session failed", "error", err)
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printSummary(ledger)
}

// printSummary shows the best rounds of the session once the alt screen is gone.
func printSummary(ledger *storage.Ledger) {
	if ledger == nil {
		return
	}
	rounds, err := ledger.TopRounds(summaryRounds)
	if err != nil {
		return
	}
	fmt.Print(tui.RenderRounds(rounds))
}

// newLogger writes to --log-file when set. The alternate screen owns the
// terminal, so without a file logs are discarded.
func newLogger() (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "viper",
		Level:           level,
	})
	return logger, func() { f.Close() }, nil
}
