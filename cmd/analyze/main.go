// Command analyze estimates how often a board profile produces a solvable
// game. For each profile it generates a batch of boards, runs the winning-path
// check from the starting position with the full budget, and prints the
// solvable fraction alongside average hazard counts.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/tecz/grid-game/game/config"
	"github.com/tecz/grid-game/game/engine"
	"github.com/urfave/cli/v3"
)

// ProfileReport captures the outcome of sampling one board profile.
type ProfileReport struct {
	ConfigID string
	Samples  int
	Solvable int
	Errors   int
	AvgTiles map[engine.TileKind]float64
}

// SolvableFraction returns the fraction of successfully generated boards
// that had a winning path.
func (r *ProfileReport) SolvableFraction() float64 {
	generated := r.Samples - r.Errors
	if generated == 0 {
		return 0
	}
	return float64(r.Solvable) / float64(generated)
}

func main() {
	cmd := &cli.Command{
		Name:  "analyze",
		Usage: "estimate board profile solvability by sampling generated boards",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config-dir",
				Value: "configs",
				Usage: "directory containing board profiles",
			},
			&cli.IntFlag{
				Name:  "samples",
				Value: 100,
				Usage: "boards to generate per profile",
			},
			&cli.StringSliceFlag{
				Name:  "profile",
				Usage: "profile to analyze (repeatable; default: all profiles)",
			},
			&cli.FloatFlag{
				Name:  "threshold",
				Value: 0.9,
				Usage: "solvable fraction below which a profile is flagged",
			},
		},
		Action: runAnalyze,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func runAnalyze(ctx context.Context, cmd *cli.Command) error {
	manager, err := config.NewManager(cmd.String("config-dir"))
	if err != nil {
		return fmt.Errorf("failed to load profiles: %w", err)
	}

	samples := int(cmd.Int("samples"))
	if samples <= 0 {
		return fmt.Errorf("samples must be positive, got %d", samples)
	}
	threshold := cmd.Float("threshold")

	profiles := cmd.StringSlice("profile")
	if len(profiles) == 0 {
		infos, err := manager.ListConfigs()
		if err != nil {
			return fmt.Errorf("failed to list profiles: %w", err)
		}
		for _, info := range infos {
			profiles = append(profiles, info.ConfigID)
		}
	}

	if len(profiles) == 0 {
		return fmt.Errorf("no profiles found in %s", cmd.String("config-dir"))
	}

	for _, name := range profiles {
		boardConfig, err := manager.LoadConfig(name)
		if err != nil {
			fmt.Printf("\n=== %s ===\n", name)
			fmt.Printf("Error loading profile: %v\n", err)
			continue
		}

		report := sampleProfile(name, boardConfig, samples)
		printReport(report, boardConfig, threshold)
	}

	return nil
}

// sampleProfile generates count boards from the profile and checks each for a
// winning path from the starting position with the full budget.
func sampleProfile(configID string, boardConfig *engine.BoardConfig, count int) *ProfileReport {
	report := &ProfileReport{
		ConfigID: configID,
		Samples:  count,
		AvgTiles: make(map[engine.TileKind]float64),
	}

	hazardKinds := []engine.TileKind{engine.Speeder, engine.Lava, engine.Mud}

	for i := 0; i < count; i++ {
		game, err := engine.NewGame(boardConfig)
		if err != nil {
			report.Errors++
			continue
		}

		if engine.IsReachable(game.Board, game.PlayerPos, game.EndPos, game.Health, game.Moves) {
			report.Solvable++
		}

		for _, kind := range hazardKinds {
			report.AvgTiles[kind] += float64(engine.CountTiles(game.Board, kind))
		}
	}

	generated := count - report.Errors
	if generated > 0 {
		for kind := range report.AvgTiles {
			report.AvgTiles[kind] /= float64(generated)
		}
	}

	return report
}

func printReport(report *ProfileReport, boardConfig *engine.BoardConfig, threshold float64) {
	fmt.Printf("\n=== %s ===\n", report.ConfigID)
	fmt.Printf("Name: %s\n", boardConfig.Name)
	fmt.Printf("Board: %d x %d\n", boardConfig.Rows, boardConfig.Cols)
	fmt.Printf("Starting Budget: %d health, %d moves\n", boardConfig.StartingHealth, boardConfig.StartingMoves)
	fmt.Printf("Boards Sampled: %d (generation failures: %d)\n", report.Samples, report.Errors)
	fmt.Printf("Average Hazards: %.1f Speeder, %.1f Lava, %.1f Mud\n",
		report.AvgTiles[engine.Speeder], report.AvgTiles[engine.Lava], report.AvgTiles[engine.Mud])

	fraction := report.SolvableFraction()
	fmt.Printf("Solvable: %.1f%%\n", fraction*100)

	if report.Errors == report.Samples {
		fmt.Printf("⚠️  CRITICAL: no boards could be generated from this profile\n")
		return
	}

	if fraction < threshold {
		fmt.Printf("⚠️  WARNING: solvable fraction below %.0f%%; consider widening hazard ranges or raising the budget\n", threshold*100)
	} else {
		fmt.Printf("✅ Profile meets the %.0f%% solvability target\n", threshold*100)
	}
}
