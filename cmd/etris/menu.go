package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-etris/internal/platform/tui"
	"github.com/vovakirdan/tui-etris/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start etris with a field picker menu",
	Long: `Start etris in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a field and Tab for the
scoreboard. Esc in a game returns to the menu.

Examples:
  etris menu
  etris menu --fps 30
  etris menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store := openStore(cfg)
	defer closeStore(store)

	rc := runtimeConfig(cfg)
	for {
		result, err := tui.RunMenu(store, rc)
		if err != nil {
			return err
		}
		rc = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, rc.ScreenW, rc.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			logger.Error("creating game", "game", result.GameID, "error", err)
			continue
		}

		backToMenu, err := tui.Run(game, store, rc)
		if err != nil {
			return err
		}
		if !backToMenu {
			return nil
		}
	}
}
