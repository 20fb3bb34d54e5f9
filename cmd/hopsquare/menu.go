package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hopsquare/internal/platform/tui"
	"github.com/vovakirdan/hopsquare/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Hop Square with the main menu",
	Long: `Start in interactive menu mode.

Pick a mode to play, read the rules or browse the best runs. After a game
you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Scores
  ?            - Rules
  Q            - Quit

Examples:
  hopsquare menu
  hopsquare menu --fps 30
  hopsquare menu --db ./runs.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := interactiveLogger()
	defer closeLog()
	if err != nil {
		return err
	}

	ps := openPrefs(logger)
	cfg := runtimeConfig(cmd, ps, logger)

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	for {
		result, err := tui.RunMenu(store, ps, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		switch result.Choice {
		case tui.ChoiceRules:
			goBack, err := tui.RunRules(cfg.ScreenW, cfg.ScreenH)
			if err != nil || !goBack {
				return err
			}

		case tui.ChoiceScores:
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, logger)
			if err != nil || !goBack {
				return err
			}

		case tui.ChoicePlay:
			game, err := registry.Create(result.GameID)
			if err != nil {
				logger.Error("cannot create game", "game", result.GameID, "err", err)
				continue
			}

			// A fixed --seed replays the same layout every time
			runCfg := cfg
			if runCfg.Seed == 0 {
				runCfg.Seed = time.Now().UnixNano()
			}
			backToMenu, err := tui.Run(game, store, runCfg, logger)
			if err != nil {
				return fmt.Errorf("error running game: %w", err)
			}
			if !backToMenu {
				return nil
			}

		default:
			return nil
		}
	}
}
