// Package engine provides the core game logic for the grid-maze puzzle game.
//
// The engine package implements the game mechanics including:
//   - Tile kinds and their fixed (health, moves) landing effects
//   - Random board generation with rejection-sampled hazard placement
//   - Per-game state and the single landing mutation
//   - Move resolution with bounds clamping and win/loss classification
//   - The budget-constrained reachability check over a board
//
// Core Types:
//
// Game represents one running game's complete state. BoardConfig defines
// the generation parameters (dimensions, hazard count ranges, starting
// budget) loaded from JSON profiles.
//
// Usage:
//
//	game, err := engine.NewGame(engine.DefaultBoardConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	outcome, err := game.ApplyMove(engine.Right)
//	ok := engine.IsReachable(game.Board, game.PlayerPos, game.EndPos, game.Health, game.Moves)
//
// Game Rules:
//
// The player starts on the Start tile in column 0 and tries to reach the End
// tile in the last column. Every tile landed on depletes the health and/or
// moves budget: Blank costs one move, Speeder 5 health, Mud 10 health and 5
// moves, Lava 50 health and 10 moves. The game is lost the moment either
// budget reaches zero, won when the player stands on the End tile, and lost
// takes priority when both happen on the same move.
package engine
