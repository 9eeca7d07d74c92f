package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-etris/internal/config"
	"github.com/vovakirdan/tui-etris/internal/core"
	"github.com/vovakirdan/tui-etris/internal/platform/tui"
	"github.com/vovakirdan/tui-etris/internal/registry"
	"github.com/vovakirdan/tui-etris/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a field",
	Long: `Start playing the given field. Without a variant the menu opens.

Controls:
  Left/Right   - Move
  Up           - Rotate
  Down         - Drop
  Space        - Advance one tick
  P            - Pause
  R/N          - New game (after game over)
  Ctrl+L       - Redraw
  Ctrl+S       - Screenshot
  Esc          - Back
  Q/Ctrl+C     - Quit

Examples:
  etris play
  etris play etris_wide
  etris play etris --config ./etris.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return runMenu(cmd, args)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown field %q, run 'etris list' to see available fields", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore(cfg)
	defer closeStore(store)

	if _, err := tui.Run(game, store, runtimeConfig(cfg)); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig(cfg config.EtrisConfig) core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Display.FPS,
	}
}

// openStore opens the score database. Games still run without one.
func openStore(cfg config.EtrisConfig) *storage.Store {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", cfg.Storage.DBPath, "error", err)
		return nil
	}
	return store
}

func closeStore(store *storage.Store) {
	if store != nil {
		store.Close()
	}
}
