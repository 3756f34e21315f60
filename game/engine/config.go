package engine

import "fmt"

// ValidateBoardConfig validates a board profile for correctness and for
// generation safety: the hazard capacity pre-check guarantees the rejection
// sampling in GenerateBoard can always find a blank cell.
func ValidateBoardConfig(config *BoardConfig) error {
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if config.Description == "" {
		return fmt.Errorf("config validation: description is required")
	}

	if config.Rows < MinBoardSize || config.Rows > MaxBoardSize {
		return fmt.Errorf("config validation: rows must be between %d and %d, got %d", MinBoardSize, MaxBoardSize, config.Rows)
	}
	if config.Cols < MinBoardSize || config.Cols > MaxBoardSize {
		return fmt.Errorf("config validation: cols must be between %d and %d, got %d", MinBoardSize, MaxBoardSize, config.Cols)
	}

	if config.StartingHealth < MinBudget {
		return fmt.Errorf("config validation: starting_health must be at least %d, got %d", MinBudget, config.StartingHealth)
	}
	if config.StartingMoves < MinBudget {
		return fmt.Errorf("config validation: starting_moves must be at least %d, got %d", MinBudget, config.StartingMoves)
	}

	// Unknown tile kinds are rejected here, at construction time, never
	// silently defaulted.
	maxTotal := 0
	for kind, r := range config.Hazards {
		if !kind.Valid() || !kind.IsHazard() {
			return fmt.Errorf("config validation: %q is not a placeable hazard kind", kind)
		}
		if r.Min < 0 {
			return fmt.Errorf("config validation: hazard %s min count must be non-negative, got %d", kind, r.Min)
		}
		if r.Max < r.Min {
			return fmt.Errorf("config validation: hazard %s max count %d is below min count %d", kind, r.Max, r.Min)
		}
		maxTotal += r.Max
	}

	// Capacity pre-check: worst-case hazard total must leave blank cells to
	// place into, otherwise generation cannot terminate.
	cells := config.Rows * config.Cols
	if maxTotal >= cells {
		return fmt.Errorf("config validation: worst-case hazard total %d saturates the %d-cell board", maxTotal, cells)
	}

	return nil
}

// DefaultBoardConfig returns the classic profile: a 50x50 board with 200-400
// of each hazard kind and a 200 health / 450 moves starting budget.
func DefaultBoardConfig() *BoardConfig {
	return &BoardConfig{
		Name:           "classic",
		Description:    "Classic 50x50 hazard maze",
		Rows:           DefaultRows,
		Cols:           DefaultCols,
		StartingHealth: DefaultStartingHealth,
		StartingMoves:  DefaultStartingMoves,
		Hazards: map[TileKind]CountRange{
			Speeder: {Min: 200, Max: 400},
			Lava:    {Min: 200, Max: 400},
			Mud:     {Min: 200, Max: 400},
		},
	}
}

// NewGame generates a fresh board from the profile, places the start and end
// endpoints, and returns a game positioned on the start cell with the
// profile's full budget.
func NewGame(config *BoardConfig) (*Game, error) {
	if err := ValidateBoardConfig(config); err != nil {
		return nil, err
	}

	board, err := GenerateBoard(config.Rows, config.Cols, config.Hazards)
	if err != nil {
		return nil, err
	}
	start, end := board.PlaceEndpoints()

	return &Game{
		PlayerPos: start,
		Board:     board,
		Health:    config.StartingHealth,
		Moves:     config.StartingMoves,
		EndPos:    end,
	}, nil
}
