package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/alien-evolution/internal/sprites"
)

var spritesCmd = &cobra.Command{
	Use:   "sprites",
	Short: "Show the sprite resolution table",
	Long: `Loads the sprite sheet (built-in, plus --sprites <dir>/sprites.yaml) and
shows how every stage/action pair resolves: exact art, a lower stage's art,
or a generated placeholder. Problems in the sheet are logged to stderr.

Examples:
  evolve sprites
  evolve sprites --sprites ./my-art`,
	Args: cobra.NoArgs,
	Run:  runSprites,
}

func runSprites(cmd *cobra.Command, args []string) {
	logger := newLogger(os.Stderr)

	cfg, err := loadConfig(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	set, err := loadSprites(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Alien sprites:")
	for _, row := range set.Table(cfg.Evolution.MaxStage) {
		fmt.Printf("  %s\n", row)
	}

	fmt.Println()
	fmt.Println("Props:")
	for _, p := range sprites.Props {
		status := "loaded"
		if !set.HasProp(p) {
			status = "placeholder"
		}
		fmt.Printf("  %-10s %s\n", p, status)
	}
}
