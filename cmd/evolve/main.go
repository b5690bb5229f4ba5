// evolve is a terminal reflex game: tap to catch falling meteorites before
// they hit your alien, and watch it evolve every few catches.
//
// Usage:
//
//	evolve                   - Play (same as evolve play)
//	evolve play              - Play the game
//	evolve list              - List registered games
//	evolve config            - Print the effective configuration as YAML
//	evolve sprites           - Show how every alien sprite resolves
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - Preset: easy, normal, hard
//	--sprites <dir>       - Directory with a sprites.yaml override
//	--log <path>          - Write logs to a file (default: discarded)
//	--debug               - Log at debug level
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/alien-evolution/internal/config"
	"github.com/vovakirdan/alien-evolution/internal/sprites"

	// Import games to register them
	_ "github.com/vovakirdan/alien-evolution/internal/games/alien"
)

var (
	// Global flags
	flagFPS        int
	flagConfig     string
	flagDifficulty string
	flagSprites    string
	flagLog        string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "evolve",
	Short: "Alien Evolution - catch meteorites, evolve your alien",
	Long: `Alien Evolution is a one-button reflex game for the terminal.

A meteorite falls toward your alien. Tap (Space, Enter or a mouse click)
while it is inside the catch window to grab it. Every five catches in a row
your alien evolves; let one hit and it explodes back to stage 1.

Available commands:
  play     - Play the game (default)
  list     - Show all registered games
  config   - Print the effective configuration
  sprites  - Show the sprite resolution table

Examples:
  evolve
  evolve play --difficulty hard
  evolve play --sprites ./my-art --log evolve.log --debug
  evolve config --difficulty easy > my-evolution.yaml
  evolve sprites --sprites ./my-art`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagSprites, "sprites", "", "Directory containing a sprites.yaml override")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(spritesCmd)
}

// newLogger builds the logger for w. A nil w discards everything.
func newLogger(w io.Writer) *log.Logger {
	if w == nil {
		w = io.Discard
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "evolve",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadConfig resolves the configuration and applies the difficulty preset.
func loadConfig(logger *log.Logger) (config.EvolutionConfig, error) {
	preset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		return config.EvolutionConfig{}, err
	}

	cfg, source, err := config.LoadEvolution(flagConfig)
	if err != nil {
		return config.EvolutionConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)
	logger.Info("config loaded", "source", source, "difficulty", preset)

	return cfg, nil
}

// loadSprites loads the sprite set for the configured stage count.
func loadSprites(cfg config.EvolutionConfig, logger *log.Logger) (*sprites.Set, error) {
	set, err := sprites.Load(flagSprites, cfg.Evolution.MaxStage, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("sprites loaded", "dir", flagSprites, "count", set.Len())
	return set, nil
}
