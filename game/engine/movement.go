package engine

import "errors"

// ErrInvalidDirection is returned for a direction outside up/down/left/right.
var ErrInvalidDirection = errors.New("invalid direction")

// Direction is one of the four axis moves
type Direction string

const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"
)

// OutcomeKind classifies the result of a move
type OutcomeKind string

const (
	OutcomeLost       OutcomeKind = "lost"
	OutcomeWon        OutcomeKind = "won"
	OutcomeContinuing OutcomeKind = "continuing"
)

// MoveOutcome describes a resolved move: the tile landed on, the new
// position, the resources spent, and the classification. Which fields end up
// on the wire depends on the outcome kind; that shaping happens in the
// service layer.
type MoveOutcome struct {
	Kind            OutcomeKind
	Tile            TileKind
	NewPosition     Position
	HealthLost      int
	MovesLost       int
	RemainingHealth int
	RemainingMoves  int
	EndPosition     Position
}

// ApplyMove moves the player one step in the given direction and resolves
// the landing.
//
// The candidate cell is clamped to board bounds, so moving off an edge is a
// no-op step on that axis, not an error. An unrecognized direction returns
// ErrInvalidDirection without touching the game state.
//
// Classification priority: a move that drives health or moves to zero or
// below is Lost even when it also reaches the end cell; only then is the end
// cell checked for Won.
func (g *Game) ApplyMove(dir Direction) (*MoveOutcome, error) {
	row, col := g.PlayerPos.Row, g.PlayerPos.Col

	switch dir {
	case Up:
		row = max(0, row-1)
	case Down:
		row = min(g.Board.Rows()-1, row+1)
	case Left:
		col = max(0, col-1)
	case Right:
		col = min(g.Board.Cols()-1, col+1)
	default:
		return nil, ErrInvalidDirection
	}

	tile := g.Board[row][col]
	healthBefore := g.Health
	movesBefore := g.Moves

	g.LandOn(row, col)

	outcome := &MoveOutcome{
		Tile:            tile,
		NewPosition:     g.PlayerPos,
		HealthLost:      healthBefore - g.Health,
		MovesLost:       movesBefore - g.Moves,
		RemainingHealth: g.Health,
		RemainingMoves:  g.Moves,
		EndPosition:     g.EndPos,
	}

	switch {
	case g.Health <= 0 || g.Moves <= 0:
		outcome.Kind = OutcomeLost
	case g.PlayerPos == g.EndPos:
		outcome.Kind = OutcomeWon
	default:
		outcome.Kind = OutcomeContinuing
	}

	return outcome, nil
}

// ParseDirection converts a request string into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case Up, Down, Left, Right:
		return Direction(s), nil
	default:
		return "", ErrInvalidDirection
	}
}
