// Package websocket provides WebSocket transport for the grid-maze game.
//
// The websocket package implements:
//   - Real-time state broadcasting after each move
//   - Game-aware connections: clients subscribe to a single game ID
//   - Connection lifecycle management with ping/pong keepalive
//
// Architecture:
//
// The package uses a hub-and-spoke model where a central Hub manages all
// connections. Each client connection runs a dedicated read and write
// goroutine; the hub's event loop serializes register, unregister, and
// broadcast operations.
//
// Message Protocol:
//
// Outgoing messages are JSON: {game_id, event: "state_update", snapshot}
// where snapshot is the same full-state view the REST API returns. The
// transport is one-way; client messages are read only to keep the
// connection alive.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//	hub.BroadcastToGame(gameID, snapshot)
package websocket
