package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/alien-evolution/internal/games/alien"
	"github.com/vovakirdan/alien-evolution/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered games",
	Long:  `Shows the games compiled into this binary. The one marked * is what 'evolve play' starts.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games registered.")
		return
	}

	width := len("ID")
	for _, g := range games {
		width = max(width, len(g.ID))
	}

	fmt.Printf("    %-*s  %s\n", width, "ID", "Title")
	for _, g := range games {
		mark := " "
		if g.ID == alien.GameID {
			mark = "*"
		}
		fmt.Printf("  %s %-*s  %s\n", mark, width, g.ID, g.Title)
	}
}
