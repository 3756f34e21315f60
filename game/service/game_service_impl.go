package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/tecz/grid-game/game/engine"
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	games   GameRegistry
	configs ConfigManager
	mu      sync.RWMutex
}

// NewGameService creates a new game service instance
func NewGameService(games GameRegistry, configs ConfigManager) GameService {
	return &gameServiceImpl{
		games:   games,
		configs: configs,
	}
}

// CreateGame generates a fresh board from the named profile (or the default
// when the name is empty) and registers a new game with the profile's
// starting budget.
func (s *gameServiceImpl) CreateGame(ctx context.Context, configName string) (*CreatedGame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var config *engine.BoardConfig
	if configName != "" {
		loaded, err := s.configs.LoadConfig(configName)
		if err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", configName, err)
		}
		config = loaded
	} else {
		config = s.configs.GetDefault()
	}

	game, err := engine.NewGame(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	entry, err := s.games.Create(game, config.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to register game: %w", err)
	}

	return &CreatedGame{GameID: entry.ID}, nil
}

// GetGame returns the full state snapshot of a game
func (s *gameServiceImpl) GetGame(ctx context.Context, gameID string) (*GameSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, err := s.games.Get(gameID)
	if err != nil {
		return nil, fmt.Errorf("game not found: %w", err)
	}

	s.games.UpdateLastAccessed(gameID)

	return snapshotOf(entry.Game), nil
}

// ListGames returns summaries of all registered games
func (s *gameServiceImpl) ListGames(ctx context.Context) ([]*GameSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.games.List()
	result := make([]*GameSummary, 0, len(entries))

	for _, entry := range entries {
		result = append(result, &GameSummary{
			GameID:         entry.ID,
			ConfigName:     entry.ConfigName,
			CreatedAt:      entry.CreatedAt,
			LastAccessedAt: entry.LastAccessedAt,
			Health:         entry.Game.Health,
			Moves:          entry.Game.Moves,
		})
	}

	return result, nil
}

// Move executes a single move for a game and shapes the outcome into its
// response variant. An invalid direction leaves the game untouched.
func (s *gameServiceImpl) Move(ctx context.Context, gameID, direction string) (*MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.games.Get(gameID)
	if err != nil {
		return nil, fmt.Errorf("game not found: %w", err)
	}

	s.games.UpdateLastAccessed(gameID)

	dir, err := engine.ParseDirection(direction)
	if err != nil {
		return nil, err
	}

	outcome, err := entry.Game.ApplyMove(dir)
	if err != nil {
		return nil, err
	}

	switch outcome.Kind {
	case engine.OutcomeLost:
		return &MoveResult{Lost: &LostResult{
			TileType:    outcome.Tile,
			NewPosition: outcome.NewPosition,
			HealthLost:  outcome.HealthLost,
			MovesLost:   outcome.MovesLost,
			EndPosition: outcome.EndPosition,
			Message:     "Game over, you lost!",
		}}, nil

	case engine.OutcomeWon:
		return &MoveResult{Won: &WonResult{
			TileType:    outcome.Tile,
			NewPosition: outcome.NewPosition,
			EndPosition: outcome.EndPosition,
			Message:     "You won!",
		}}, nil

	default:
		return &MoveResult{Continuing: &ContinuingResult{
			TileType:        outcome.Tile,
			NewPosition:     outcome.NewPosition,
			RemainingMoves:  outcome.RemainingMoves,
			RemainingHealth: outcome.RemainingHealth,
			HealthLost:      outcome.HealthLost,
			MovesLost:       outcome.MovesLost,
			EndPosition:     outcome.EndPosition,
			Message: fmt.Sprintf("Move successful. You landed in %s and lost %d health and %d moves.",
				outcome.Tile, outcome.HealthLost, outcome.MovesLost),
		}}, nil
	}
}

// WinningPath runs the feasibility check from the game's current position
// and budget.
func (s *gameServiceImpl) WinningPath(ctx context.Context, gameID string) (*WinningPathResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, err := s.games.Get(gameID)
	if err != nil {
		return nil, fmt.Errorf("game not found: %w", err)
	}

	s.games.UpdateLastAccessed(gameID)

	game := entry.Game
	exists := engine.IsReachable(game.Board, game.PlayerPos, game.EndPos, game.Health, game.Moves)

	return &WinningPathResult{WinningPathExists: exists}, nil
}

// ListConfigs returns available board profiles
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// snapshotOf builds the state view, rescanning the board for the start and
// end markers the way clients observe them.
func snapshotOf(game *engine.Game) *GameSnapshot {
	snapshot := &GameSnapshot{
		PlayerPosition: game.PlayerPos,
		Board:          game.Board,
		Health:         game.Health,
		Moves:          game.Moves,
	}

	if start, ok := game.Board.FindStart(); ok {
		snapshot.StartPosition = &start
	}
	if end, ok := game.Board.FindEnd(); ok {
		snapshot.EndPosition = &end
	}

	return snapshot
}
