// Command validate provides a small CLI that validates board profile JSON
// files in the ../configs directory. It checks:
//   - JSON structure and required fields
//   - Board dimensions within the allowed bounds
//   - Starting budget constraints (health and moves both positive)
//   - Hazard ranges: known hazard kinds, non-negative min, min <= max
//   - Capacity: even the maximum hazard draw leaves at least one blank cell,
//     so placement can always terminate (endpoints overwrite cells regardless)
//   - Solvability: a sampled board from the profile has a winning path
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tecz/grid-game/game/engine"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validateConfig loads and validates a single board profile JSON file.
// It performs structural checks, hazard range validation, and a sampled
// solvability check.
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var config engine.BoardConfig
	if err := json.Unmarshal(data, &config); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}

	if err := engine.ValidateBoardConfig(&config); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	// Solvability check: generate one board and look for a winning path.
	// Generation is random, so a failure here is a warning sign rather than
	// proof, but profiles tuned for play should pass almost every draw.
	if result.Valid {
		solvability := validateSolvability(&config)
		if !solvability.Valid {
			result.Valid = false
		}
		result.Errors = append(result.Errors, solvability.Errors...)
	}

	// Add informational data
	if result.Valid {
		maxHazards := 0
		for _, r := range config.Hazards {
			maxHazards += r.Max
		}

		result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", config.Name))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Board: %dx%d", config.Rows, config.Cols))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Budget: %d health, %d moves", config.StartingHealth, config.StartingMoves))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Max hazard tiles: %d of %d cells", maxHazards, config.Rows*config.Cols))
	}

	return result
}

// validateSolvability generates one board from the profile and checks that a
// winning path exists from the starting position with the full budget.
func validateSolvability(config *engine.BoardConfig) ValidationResult {
	result := ValidationResult{
		Valid:  true,
		Errors: []string{},
	}

	game, err := engine.NewGame(config)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Board generation failed: %v", err))
		return result
	}

	if engine.IsReachable(game.Board, game.PlayerPos, game.EndPos, game.Health, game.Moves) {
		result.Errors = append(result.Errors, "✓ Solvability: sampled board has a winning path")
	} else {
		result.Valid = false
		result.Errors = append(result.Errors, "Sampled board has no winning path; hazard ranges may be too aggressive for the budget")
	}

	return result
}

// main scans ../configs for *.json files and validates each one, printing a
// concise report and exiting with non-zero status if any are invalid.
func main() {
	configDir := "../configs"
	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateConfig(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All configurations are valid!")
	} else {
		fmt.Println("❌ Some configurations have errors")
		os.Exit(1)
	}
}
