package service

import (
	"time"

	"github.com/tecz/grid-game/game/engine"
)

// GameEntry is one registry record: a running game plus its metadata.
type GameEntry struct {
	ID             string
	ConfigName     string
	Game           *engine.Game
	CreatedAt      time.Time
	LastAccessedAt time.Time
}

// CreatedGame is the response to a game creation request
type CreatedGame struct {
	GameID string `json:"game_id"`
}

// GameSnapshot is the full state view of one game. Start and end positions
// are recomputed from the board on every read: generation guarantees Start
// in column 0 and End in the last column, and the scan relies on that.
type GameSnapshot struct {
	PlayerPosition engine.Position  `json:"player_position"`
	Board          engine.Board     `json:"board"`
	Health         int              `json:"health"`
	Moves          int              `json:"moves"`
	StartPosition  *engine.Position `json:"start_position"`
	EndPosition    *engine.Position `json:"end_position"`
}

// GameSummary is the list view of one game
type GameSummary struct {
	GameID         string    `json:"game_id"`
	ConfigName     string    `json:"config_name"`
	CreatedAt      time.Time `json:"created_at"`
	LastAccessedAt time.Time `json:"last_accessed_at"`
	Health         int       `json:"health"`
	Moves          int       `json:"moves"`
}

// MoveResult is a tagged union of the three move outcomes. Exactly one of
// the variant fields is non-nil; each variant defines its own wire shape.
type MoveResult struct {
	Lost       *LostResult
	Won        *WonResult
	Continuing *ContinuingResult
}

// Body returns the populated variant for serialization.
func (r *MoveResult) Body() interface{} {
	switch {
	case r.Lost != nil:
		return r.Lost
	case r.Won != nil:
		return r.Won
	default:
		return r.Continuing
	}
}

// LostResult reports a move that exhausted health or moves. Remaining
// resources are deliberately absent from the wire shape.
type LostResult struct {
	TileType    engine.TileKind `json:"tile_type"`
	NewPosition engine.Position `json:"new_position"`
	HealthLost  int             `json:"health_lost"`
	MovesLost   int             `json:"moves_lost"`
	EndPosition engine.Position `json:"end_position"`
	Message     string          `json:"message"`
}

// WonResult reports a move that reached the end cell. It carries neither
// losses nor remaining resources.
type WonResult struct {
	TileType    engine.TileKind `json:"tile_type"`
	NewPosition engine.Position `json:"new_position"`
	EndPosition engine.Position `json:"end_position"`
	Message     string          `json:"message"`
}

// ContinuingResult reports an ordinary move with the game still running.
type ContinuingResult struct {
	TileType        engine.TileKind `json:"tile_type"`
	NewPosition     engine.Position `json:"new_position"`
	RemainingMoves  int             `json:"remaining_moves"`
	RemainingHealth int             `json:"remaining_health"`
	HealthLost      int             `json:"health_lost"`
	MovesLost       int             `json:"moves_lost"`
	EndPosition     engine.Position `json:"end_position"`
	Message         string          `json:"message"`
}

// WinningPathResult reports whether the end is still reachable from the
// current state.
type WinningPathResult struct {
	WinningPathExists bool `json:"winning_path_exists"`
}

// ConfigInfo provides information about a board profile
type ConfigInfo struct {
	ConfigID       string `json:"config_id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Rows           int    `json:"rows"`
	Cols           int    `json:"cols"`
	StartingHealth int    `json:"starting_health"`
	StartingMoves  int    `json:"starting_moves"`
}
