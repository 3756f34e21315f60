package service

import (
	"context"

	"github.com/tecz/grid-game/game/engine"
)

// GameService defines all game-related operations
type GameService interface {
	// Game lifecycle
	CreateGame(ctx context.Context, configName string) (*CreatedGame, error)
	GetGame(ctx context.Context, gameID string) (*GameSnapshot, error)
	ListGames(ctx context.Context) ([]*GameSummary, error)

	// Game operations
	Move(ctx context.Context, gameID, direction string) (*MoveResult, error)
	WinningPath(ctx context.Context, gameID string) (*WinningPathResult, error)

	// Configuration
	ListConfigs(ctx context.Context) ([]*ConfigInfo, error)
}

// GameRegistry defines game storage operations. Implementations assign
// sequential string IDs and keep games for the life of the process.
type GameRegistry interface {
	Create(game *engine.Game, configName string) (*GameEntry, error)
	Get(id string) (*GameEntry, error)
	List() []*GameEntry
	Count() int
	UpdateLastAccessed(id string) error
}

// ConfigManager handles board profile loading
type ConfigManager interface {
	LoadConfig(name string) (*engine.BoardConfig, error)
	ListConfigs() ([]*ConfigInfo, error)
	GetDefault() *engine.BoardConfig
}
