package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hopsquare/internal/config"
	"github.com/vovakirdan/hopsquare/internal/games/hopsquare"
)

var (
	flagTicks     int
	flagJumpEvery int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [mode]",
	Short: "Run a session without a terminal and report the outcome",
	Long: `Run one session at the --fps tick rate for a number of ticks with no
player input, or with a jump every N ticks, then log how it ended. Enemies
still patrol and chase, so an idle player usually ends up caught.

Examples:
  hopsquare simulate --seed 7
  hopsquare simulate --ticks 3600 --jump-every 45 --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 600, "Number of ticks to simulate")
	simulateCmd.Flags().IntVar(&flagJumpEvery, "jump-every", 0, "Press jump every N ticks (0 = never)")
}

func runSimulate(_ *cobra.Command, args []string) error {
	mode := hopsquare.IDClassic
	if len(args) == 1 {
		mode = args[0]
	}

	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	cfg, err := gameConfig(mode)
	if err != nil {
		return err
	}

	s := seed()
	session, err := hopsquare.NewSession(cfg, cfg.Session.StartLevel, s, hopsquare.WithLogger(logger))
	if err != nil {
		return err
	}

	step := config.TickDuration(flagFPS)
	hits := 0
	destroyed := 0
	var st hopsquare.State
	ticks := 0
	for ticks < flagTicks {
		ticks++
		in := hopsquare.Input{Jump: flagJumpEvery > 0 && ticks%flagJumpEvery == 0}
		st = session.Tick(in, time.Duration(ticks)*step)

		if st.Events.PlayerHit {
			hits++
		}
		destroyed += st.Events.EnemiesDestroyed
		if st.Phase == hopsquare.PhaseGameOver {
			break
		}
	}

	if err := session.Err(); err != nil {
		return err
	}

	p := session.Player()
	logger.Info("simulation finished",
		"mode", mode,
		"seed", s,
		"ticks", ticks,
		"phase", st.Phase,
		"level", st.Level,
		"level_reached", st.LevelReached,
		"hits", hits,
		"enemies_destroyed", destroyed,
		"player_x", p.X,
		"player_y", p.Y,
	)
	return nil
}
