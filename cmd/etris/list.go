package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-etris/internal/games/tetris"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available fields",
	Long:  `Shows every registered field with its size.`,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	if _, err := loadConfig(); err != nil {
		return err
	}

	variants := tetris.Variants()

	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		maxIDLen = max(maxIDLen, len(v.ID))
	}

	fmt.Println("Available fields:")
	fmt.Println()
	fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, "ID", "Title", "Size")
	fmt.Printf("  %-*s  %-12s  %s\n", maxIDLen, "--", "-----", "----")
	for _, v := range variants {
		fmt.Printf("  %-*s  %-12s  %dx%d\n", maxIDLen, v.ID, v.Title, v.Width, v.Height)
	}

	fmt.Println()
	fmt.Println("Run 'etris play <id>' to play a field.")
	return nil
}
