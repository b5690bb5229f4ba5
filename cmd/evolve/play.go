package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/alien-evolution/internal/core"
	"github.com/vovakirdan/alien-evolution/internal/games/alien"
	"github.com/vovakirdan/alien-evolution/internal/platform/tui"
	"github.com/vovakirdan/alien-evolution/internal/registry"
	"github.com/vovakirdan/alien-evolution/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start playing Alien Evolution.

Controls:
  Space/Enter/Click  - Tap: start a round, or catch the meteorite
  P                  - Pause/resume (also pauses when the terminal loses focus)
  R                  - Restart from stage 1
  Tab                - Session journal
  Ctrl+S             - Save a text screenshot to ~/.evolve/screenshots
  Q/Ctrl+C           - Quit

Difficulty options:
  easy   - Slower meteorites, wider catch window
  normal - Default tuning
  hard   - Faster meteorites, narrower catch window

Examples:
  evolve play
  evolve play --difficulty easy
  evolve play --config ./my-evolution.yaml
  evolve play --sprites ./my-art --log evolve.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	var logFile *os.File
	var logOut io.Writer
	if flagLog != "" {
		f, err := os.OpenFile(flagLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot open log file: %v\n", err)
			os.Exit(1)
		}
		logFile, logOut = f, f
	}
	logger := newLogger(logOut)

	err := play(logger)
	if err != nil {
		logger.Error("game stopped", "error", err)
	}
	// os.Exit skips deferred calls
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play(logger *log.Logger) error {
	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	set, err := loadSprites(cfg, logger)
	if err != nil {
		return err
	}

	// Configure the game before creation
	alien.Configure(alien.Options{Config: cfg, Sprites: set})

	game, err := registry.Create(alien.GameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	// The journal lives in memory for this session only
	store, err := storage.Open(storage.MemoryDSN)
	if err != nil {
		logger.Warn("session journal unavailable", "error", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, tui.Options{Store: store, Logger: logger}, runtime); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
