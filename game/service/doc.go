// Package service provides the business logic layer for the grid-maze game.
//
// The service package implements:
//   - Game creation from board profiles
//   - Move processing and outcome shaping
//   - State snapshots and game listings
//   - The winning-path feasibility query
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game
// operations. GameRegistry stores running games keyed by sequential string
// IDs. ConfigManager loads board profiles.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP)
// and the game engine. Handlers never touch engine state directly: all
// reads and mutations go through the service, which serializes them with a
// single readers-writer lock. The registry is an explicit dependency, not
// ambient global state.
//
// Usage:
//
//	registry := registry.NewManager()
//	configMgr, _ := config.NewManager("configs")
//	gameService := service.NewGameService(registry, configMgr)
//
//	created, err := gameService.CreateGame(ctx, "")
//	result, err := gameService.Move(ctx, created.GameID, "right")
//
// Move results are tagged unions: exactly one of Lost, Won, or Continuing
// is populated, and each variant controls which fields appear on the wire.
package service
