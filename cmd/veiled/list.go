package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available levels",
	Long: `Shows the bundled levels, maps found in game.maps_dir and maps stored
in the configured pack.`,
	Args: cobra.NoArgs,
	Run:  runList,
}

func runList(_ *cobra.Command, _ []string) {
	a, err := loadApp(false)
	if err != nil {
		fail("%v", err)
	}
	defer a.Close()

	items := a.levelItems()
	if len(items) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, it := range items {
		if len(it.ID) > maxIDLen {
			maxIDLen = len(it.ID)
		}
	}

	fmt.Printf("  %-*s  %-8s  %4s  %s\n", maxIDLen, "ID", "Source", "Size", "Title")
	fmt.Printf("  %-*s  %-8s  %4s  %s\n", maxIDLen, "--", "------", "----", "-----")
	for _, it := range items {
		fmt.Printf("  %-*s  %-8s  %4d  %s\n", maxIDLen, it.ID, it.Source, it.Size, it.Title)
	}

	fmt.Println()
	fmt.Println("Run 'veiled play <id>' to play a level.")
}
