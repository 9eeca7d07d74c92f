// etris-gui plays etris in a desktop window.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-etris/internal/config"
	"github.com/vovakirdan/tui-etris/internal/games/tetris"
	"github.com/vovakirdan/tui-etris/internal/platform/gui"
	"github.com/vovakirdan/tui-etris/internal/storage"
)

var (
	flagConfig    string
	flagDBPath    string
	flagBlockSize int
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "etris-gui",
})

var rootCmd = &cobra.Command{
	Use:   "etris-gui [variant]",
	Short: "Play etris in a window",
	Long: `Opens a window with one etris field.

Controls:
  Left/Right  - Move
  Up          - Rotate
  Down        - Drop
  Space       - Advance one tick
  P           - Pause
  R           - Redraw
  N           - New game (after game over)
  Esc         - Quit`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to etris.yaml")
	rootCmd.Flags().StringVar(&flagDBPath, "db", "", "Path to scores database (default: storage.db_path from config)")
	rootCmd.Flags().IntVar(&flagBlockSize, "block-size", 0, "Pixels per block (0 = gui.block_size from config)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func run(_ *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagBlockSize > 0 {
		cfg.GUI.BlockSize = flagBlockSize
	}
	tetris.SetBoard(cfg.Board.Width, cfg.Board.Height, cfg.Board.Border)

	variant := tetris.Variants()[0]
	if len(args) == 1 {
		found := false
		for _, v := range tetris.Variants() {
			if v.ID == args[0] {
				variant, found = v, true
			}
		}
		if !found {
			return fmt.Errorf("unknown field %q", args[0])
		}
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return gui.Run(gui.Options{
		GameID:    variant.ID,
		Width:     variant.Width,
		Height:    variant.Height,
		Border:    variant.Border,
		BlockSize: cfg.GUI.BlockSize,
		HUDWidth:  cfg.GUI.HUDWidth,
		Store:     store,
		Logger:    logger,
	})
}
