package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hopsquare/internal/games/hopsquare"
	"github.com/vovakirdan/hopsquare/internal/platform/tui"
	"github.com/vovakirdan/hopsquare/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play Hop Square",
	Long: `Start playing. The mode defaults to the classic layout; use
hopsquare_fair for layouts where every jump is reachable.

Controls:
  A/D, Left/Right  - Run
  Space/W/Up       - Jump
  E                - Use the exit platform
  P                - Pause
  R                - Restart (after game over)
  B/Esc            - Leave (when paused or after game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Examples:
  hopsquare play
  hopsquare play hopsquare_fair
  hopsquare play --level 5 --seed 42
  hopsquare play --config ./my-hopsquare.toml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := hopsquare.IDClassic
	if len(args) == 1 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'hopsquare list' to see the modes)", err)
	}

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

	if _, err := tui.Run(game, store, cfg, logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
