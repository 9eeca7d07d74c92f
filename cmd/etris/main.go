// etris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	etris list               - List available fields
//	etris play [variant]     - Play a field (menu when omitted)
//	etris menu               - Pick fields interactively
//	etris serve              - Start SSH server for remote play
//	etris scores <variant>   - Show high scores for a field
//	etris figures            - Print the figure catalog
//	etris config             - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>     - Set frame rate (default: from config, 60)
//	--db <path>      - Set database path (default: ~/.etris/scores.db)
//	--config <path>  - Use a specific etris.yaml
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-etris/internal/config"
	"github.com/vovakirdan/tui-etris/internal/games/tetris"
)

var (
	// Global flags
	flagFPS    int
	flagDBPath string
	flagConfig string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "etris",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "etris",
	Short: "Etris - falling blocks in your terminal",
	Long: `Etris is a falling-block puzzle game for the terminal.
Complete rows to clear them; the game ends when the stack reaches the top.

Available commands:
  list     - Show all available fields
  play     - Play a field directly
  menu     - Interactive field picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  figures  - Print the figure catalog
  config   - Print the effective configuration

Examples:
  etris list
  etris play etris_mini
  etris menu --fps 30
  etris serve --ssh :2222 --metrics :9090
  etris scores etris
  etris config --fps 30 > etris.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = display.fps from config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default: storage.db_path from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to etris.yaml")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(figuresCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the configuration, applies flag overrides and hands the
// board and display settings to the game package.
func loadConfig() (config.EtrisConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagFPS > 0 {
		cfg.Display.FPS = flagFPS
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}

	tetris.SetBoard(cfg.Board.Width, cfg.Board.Height, cfg.Board.Border)
	tetris.SetGlyph([]rune(cfg.Display.Glyph)[0])
	tetris.SetShowPreview(cfg.Display.ShowPreview)
	return cfg, nil
}
