package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/hopsquare/internal/games/hopsquare"
)

var flagPlatformsYAML bool

var platformsCmd = &cobra.Command{
	Use:   "platforms [mode]",
	Short: "Print the platforms generated for a seed",
	Long: `Generate one level layout and print it, bottom platform first.
The last platform is the exit. Useful for checking a config or a seed.

Examples:
  hopsquare platforms --seed 42
  hopsquare platforms hopsquare_fair --seed 42
  hopsquare platforms --config ./tall.yaml --yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlatforms,
}

func init() {
	platformsCmd.Flags().BoolVar(&flagPlatformsYAML, "yaml", false, "Print the layout as YAML")
}

// layout is the YAML form of a generated level.
type layout struct {
	Mode      string               `yaml:"mode"`
	Seed      int64                `yaml:"seed"`
	Platforms []hopsquare.Platform `yaml:"platforms"`
}

func runPlatforms(_ *cobra.Command, args []string) error {
	mode := hopsquare.IDClassic
	if len(args) == 1 {
		mode = args[0]
	}

	cfg, err := gameConfig(mode)
	if err != nil {
		return err
	}

	s := seed()
	platforms, err := hopsquare.NewGenerator(cfg).Generate(rand.New(rand.NewSource(s)))
	if err != nil {
		return err
	}

	if flagPlatformsYAML {
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		return enc.Encode(layout{Mode: mode, Seed: s, Platforms: platforms})
	}

	fmt.Printf("Mode %s, seed %d, %d platforms\n\n", mode, s, len(platforms))
	fmt.Printf("  %-3s  %6s  %6s  %6s\n", "#", "X", "Y", "Rise")
	for i, p := range platforms {
		rise := ""
		if i > 0 {
			rise = fmt.Sprintf("%.0f", platforms[i-1].Y-p.Y)
		}
		note := ""
		if i == len(platforms)-1 {
			note = "  exit"
		}
		fmt.Printf("  %-3d  %6.0f  %6.0f  %6s%s\n", i, p.X, p.Y, rise, note)
	}
	return nil
}
