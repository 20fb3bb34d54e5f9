// hopsquare is a terminal platformer: climb generated platforms to the exit
// while enemies close in.
//
// Usage:
//
//	hopsquare play [mode]      - Play Hop Square
//	hopsquare menu             - Start the interactive menu
//	hopsquare list             - List game modes
//	hopsquare scores <mode>    - Show the best runs of a mode
//	hopsquare serve            - Start SSH server for remote play
//	hopsquare platforms        - Print a generated level layout
//	hopsquare simulate         - Run a session without a terminal
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.hopsquare/runs.db)
//	--config <path>     - Load a custom game config (YAML or TOML)
//	--level <n>         - Start at level n
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hopsquare/internal/games/hopsquare"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLevel    int
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hopsquare",
	Short: "Hop Square - a platformer in your terminal",
	Long: `Hop Square is a single-screen platformer. Jump across generated
platforms to the exit while enemies patrol and chase you. Grab the yellow
pill to destroy them for a few seconds. Three hits and the run is over.

Available commands:
  play       - Play a mode directly
  menu       - Interactive menu with rules and scores
  list       - Show the game modes
  scores     - View the best runs
  serve      - Start SSH server for remote play
  platforms  - Print the platforms generated for a seed
  simulate   - Run a session headless and report the outcome

Examples:
  hopsquare play
  hopsquare play hopsquare_fair --level 5
  hopsquare menu
  hopsquare serve --ssh :2222
  hopsquare platforms --seed 42`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		hopsquare.SetConfigPath(flagConfig)
		hopsquare.SetStartLevel(flagLevel)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hopsquare/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	rootCmd.PersistentFlags().IntVar(&flagLevel, "level", 0, "Start level (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for interactive commands (default: ~/.hopsquare/hopsquare.log)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(platformsCmd)
	rootCmd.AddCommand(simulateCmd)
}
