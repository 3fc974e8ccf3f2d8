package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-pixels/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available backends",
	Long:  `Shows a list of all backends the game can be played on.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	backends := registry.List()

	if len(backends) == 0 {
		fmt.Println("No backends available.")
		return
	}

	fmt.Println("Available backends:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, b := range backends {
		if len(b.ID) > maxIDLen {
			maxIDLen = len(b.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, b := range backends {
		fmt.Printf("  %-*s  %s\n", maxIDLen, b.ID, b.Title)
	}

	fmt.Println()
	fmt.Println("Run 'snakepix play --backend <id>' to play.")
}
