package engine

import (
	"fmt"
	"math/rand"
)

// NewBlankBoard creates a rows×cols board with every tile set to Blank.
func NewBlankBoard(rows, cols int) Board {
	board := make(Board, rows)
	for i := range board {
		board[i] = make([]TileKind, cols)
		for j := range board[i] {
			board[i][j] = Blank
		}
	}
	return board
}

// GenerateBoard creates a rows×cols board populated with random hazards.
//
// For each hazard kind a count is drawn uniformly from its inclusive
// [min,max] range, then that many tiles are placed by rejection sampling:
// pick a uniformly random cell, retry until a still-Blank cell is found.
// Each placement is allowed MaxPlacementAttempts retries; exceeding the cap
// returns an error rather than looping forever on a saturated grid.
func GenerateBoard(rows, cols int, hazards map[TileKind]CountRange) (Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("board generation: invalid dimensions %dx%d", rows, cols)
	}

	board := NewBlankBoard(rows, cols)

	for kind, r := range hazards {
		if !kind.IsHazard() {
			return nil, fmt.Errorf("board generation: %q is not a placeable hazard kind", kind)
		}

		count := r.Min
		if r.Max > r.Min {
			count = r.Min + rand.Intn(r.Max-r.Min+1)
		}

		for count > 0 {
			placed := false
			for attempt := 0; attempt < MaxPlacementAttempts; attempt++ {
				row, col := rand.Intn(rows), rand.Intn(cols)
				if board[row][col] == Blank {
					board[row][col] = kind
					placed = true
					break
				}
			}
			if !placed {
				return nil, fmt.Errorf("board generation: no blank cell found for %s after %d attempts", kind, MaxPlacementAttempts)
			}
			count--
		}
	}

	return board, nil
}

// PlaceEndpoints overwrites a random cell in column 0 with Start and a random
// cell in the last column with End, returning both positions. Any hazard
// previously generated on those cells is clobbered, so the start and end
// always have neutral effect.
func (b Board) PlaceEndpoints() (start, end Position) {
	start = Position{Row: rand.Intn(b.Rows()), Col: 0}
	end = Position{Row: rand.Intn(b.Rows()), Col: b.Cols() - 1}
	b[start.Row][start.Col] = Start
	b[end.Row][end.Col] = End
	return start, end
}

// FindStart scans column 0 for the Start tile. Generation guarantees exactly
// one, so the lookup only walks the first column.
func (b Board) FindStart() (Position, bool) {
	for i := 0; i < b.Rows(); i++ {
		if b[i][0] == Start {
			return Position{Row: i, Col: 0}, true
		}
	}
	return Position{}, false
}

// FindEnd scans the last column for the End tile.
func (b Board) FindEnd() (Position, bool) {
	last := b.Cols() - 1
	for i := 0; i < b.Rows(); i++ {
		if b[i][last] == End {
			return Position{Row: i, Col: last}, true
		}
	}
	return Position{}, false
}

// CountTiles counts the tiles of the given kind on the board.
func CountTiles(board Board, kind TileKind) int {
	count := 0
	for _, row := range board {
		for _, tile := range row {
			if tile == kind {
				count++
			}
		}
	}
	return count
}
