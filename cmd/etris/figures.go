package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-etris/internal/etris"
)

var figuresCmd = &cobra.Command{
	Use:   "figures",
	Short: "Print the figure catalog",
	Long:  `Prints every figure in spawn order with its four rotations.`,
	Args:  cobra.NoArgs,
	Run:   runFigures,
}

func runFigures(_ *cobra.Command, _ []string) {
	for _, t := range etris.Templates() {
		fmt.Printf("%s (color %d)\n", t.Name, t.Color)

		rows := make([][]string, etris.Rotations)
		for r := range rows {
			rows[r] = strings.Split(t.Shape(r), "\n")
		}
		for y := range rows[0] {
			line := make([]string, 0, etris.Rotations)
			for r := range rows {
				line = append(line, rows[r][y])
			}
			fmt.Println("  " + strings.Join(line, "  "))
		}
		fmt.Println()
	}
}
