package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hopsquare/internal/games/hopsquare"
	"github.com/vovakirdan/hopsquare/internal/registry"
	"github.com/vovakirdan/hopsquare/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show the best runs of a mode",
	Long: `Display the ten deepest runs of a mode. A run's score is the highest
level reached before the game ended.

Examples:
  hopsquare scores
  hopsquare scores hopsquare_fair
  hopsquare scores hopsquare --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run history of the mode")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := hopsquare.IDClassic
	if len(args) == 1 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'hopsquare list' to see the modes)", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening run history: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared the run history of %s.\n", game.Title())
		return nil
	}

	runs, err := store.TopRuns(gameID, 10)
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}

	fmt.Printf("Best runs - %s\n", game.Title())
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'hopsquare play %s' to set the first one!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-5s  %-20s  %s\n", "Rank", "Level", "Seed", "Date")
	fmt.Printf("  %-4s  %-5s  %-20s  %s\n", "----", "-----", "----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-5d  %-20d  %s\n", i+1, r.LevelReached, r.Seed, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GameStats(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: level %d  Average: %.1f\n", stats.Runs, stats.BestLevel, stats.AvgLevel)
	}
	return nil
}
