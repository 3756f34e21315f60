// Package mcp provides an MCP (Model Context Protocol) transport for the
// grid-maze game.
//
// The Client is a thin proxy: every tool call is translated into a REST API
// request against the game server, and responses are rendered as text for
// the calling agent, including a character map of the board.
//
// Tools:
//   - create_game, list_games, game_state
//   - move, winning_path
//   - list_configs, game_instructions
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
package mcp
