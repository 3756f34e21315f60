package engine

// TileKind represents different types of board tiles
type TileKind string

const (
	Blank   TileKind = "Blank"
	Start   TileKind = "Start"
	End     TileKind = "End"
	Speeder TileKind = "Speeder"
	Lava    TileKind = "Lava"
	Mud     TileKind = "Mud"
)

const (
	// Validation constants
	MinBoardSize = 3
	MaxBoardSize = 100
	MinBudget    = 1

	// Classic board parameters
	DefaultRows           = 50
	DefaultCols           = 50
	DefaultStartingHealth = 200
	DefaultStartingMoves  = 450

	// Placement retries allowed per hazard tile before generation fails.
	// Rejection sampling near saturation can retry often; this cap turns a
	// misconfigured profile into an error instead of a hang.
	MaxPlacementAttempts = 10000
)

// Effect is the (health, moves) delta applied when the player lands on a tile
type Effect struct {
	Health int `json:"health"`
	Moves  int `json:"moves"`
}

// landingEffects maps each tile kind to its fixed landing effect. Start and
// End are structural markers: they only ever act as the player's initial or
// target cell and cost nothing when entered.
var landingEffects = map[TileKind]Effect{
	Blank:   {Health: 0, Moves: -1},
	Start:   {Health: 0, Moves: 0},
	End:     {Health: 0, Moves: 0},
	Speeder: {Health: -5, Moves: 0},
	Lava:    {Health: -50, Moves: -10},
	Mud:     {Health: -10, Moves: -5},
}

// Effect returns the landing effect for the tile kind.
// The kind must be one of the closed enumeration; board construction and
// config validation reject anything else, so lookups never miss.
func (k TileKind) Effect() Effect {
	return landingEffects[k]
}

// Valid reports whether k is a member of the closed tile enumeration.
func (k TileKind) Valid() bool {
	_, ok := landingEffects[k]
	return ok
}

// IsHazard reports whether k is one of the placeable hazard kinds.
func (k TileKind) IsHazard() bool {
	return k == Speeder || k == Lava || k == Mud
}

// Position represents row,col coordinates on the board
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Board is a rectangular grid of tiles. It marshals as nested arrays of
// tile kind strings, matching the wire format clients already parse.
type Board [][]TileKind

// Rows returns the number of rows on the board.
func (b Board) Rows() int {
	return len(b)
}

// Cols returns the number of columns on the board.
func (b Board) Cols() int {
	if len(b) == 0 {
		return 0
	}
	return len(b[0])
}

// InBounds reports whether (row, col) is a valid board coordinate.
func (b Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.Rows() && col >= 0 && col < b.Cols()
}

// CountRange is an inclusive [Min, Max] range for a uniform hazard count draw
type CountRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// BoardConfig describes the parameters a board and its starting budget are
// generated from. Profiles are loaded from JSON files in the configs
// directory.
type BoardConfig struct {
	Name           string                  `json:"name"`
	Description    string                  `json:"description"`
	Rows           int                     `json:"rows"`
	Cols           int                     `json:"cols"`
	StartingHealth int                     `json:"starting_health"`
	StartingMoves  int                     `json:"starting_moves"`
	Hazards        map[TileKind]CountRange `json:"hazards"`
}

// Game holds the complete state of one running game: the board, the player's
// position, and the remaining health/moves budget. Health and moves may go
// negative; the loss check happens at move classification, not here.
type Game struct {
	PlayerPos Position `json:"player_position"`
	Board     Board    `json:"board"`
	Health    int      `json:"health"`
	Moves     int      `json:"moves"`
	EndPos    Position `json:"end_position"`
}
