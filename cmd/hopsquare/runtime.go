package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hopsquare/internal/config"
	"github.com/vovakirdan/hopsquare/internal/core"
	"github.com/vovakirdan/hopsquare/internal/games/hopsquare"
	"github.com/vovakirdan/hopsquare/internal/prefs"
	"github.com/vovakirdan/hopsquare/internal/registry"
	"github.com/vovakirdan/hopsquare/internal/storage"
)

// runtimeConfig builds the runtime config from the terminal size and the
// global flags. An explicit --fps is remembered; otherwise the remembered
// rate is used.
func runtimeConfig(cmd *cobra.Command, ps *prefs.Store, logger *log.Logger) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	cfg.TickRate = flagFPS

	if cmd.Flags().Changed("fps") {
		if err := ps.Update(func(s *prefs.Settings) { s.TickRate = flagFPS }); err != nil {
			logger.Warn("could not remember tick rate", "err", err)
		}
	} else if settings, err := ps.Load(); err == nil && settings.TickRate > 0 {
		cfg.TickRate = settings.TickRate
	}
	return cfg
}

// openPrefs opens the preferences store. Without one the game still runs.
func openPrefs(logger *log.Logger) *prefs.Store {
	ps, err := prefs.Open()
	if err != nil {
		logger.Warn("preferences unavailable", "err", err)
		return nil
	}
	return ps
}

// openStore opens the run history. Without one the game still runs.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// gameConfig loads the game config for a mode and applies --level.
func gameConfig(mode string) (config.HopSquareConfig, error) {
	if !registry.Exists(mode) {
		return config.HopSquareConfig{}, fmt.Errorf("%w %q", registry.ErrUnknownGame, mode)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.HopSquareConfig{}, err
	}
	if mode == hopsquare.IDFair {
		cfg.Platforms.Reachable = true
	}
	if flagLevel > 0 {
		cfg.Session.StartLevel = flagLevel
	}
	return cfg, nil
}

// seed returns --seed, or a time-based seed when it is unset.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
