// Package api provides HTTP REST API handlers for the grid-maze game.
//
// The api package implements:
//   - RESTful endpoints for game creation, state, moves, and the
//     winning-path feasibility check
//   - Board profile listing
//   - WebSocket upgrade handling
//
// Endpoints:
//
// Game Lifecycle:
//   - POST /games - Create a new game, optional {"config_id": "..."} body
//   - GET /games - List all games
//   - GET /games/{id} - Full state snapshot
//
// Game Operations:
//   - POST /games/{id}/move - Body {"direction": "up|down|left|right"}
//   - GET /games/{id}/winning_path - {"winning_path_exists": bool}
//
// Configuration:
//   - GET /configs - List available board profiles
//
// Other:
//   - GET /health - Health check
//   - GET /ws?game=<id> - WebSocket state updates for one game
//
// Error Handling:
//
// The two domain errors are soft errors: they come back with HTTP 200 and a
// body of {"error": "Game not found"} or {"error": "Invalid move"}, which is
// the wire contract existing clients match on. Transport-level problems
// (malformed JSON, internal failures) use conventional status codes.
//
// The move response shape depends on the outcome: a win omits the loss and
// remaining-resource fields, a loss omits the remaining-resource fields, and
// a continuing move carries all of them plus a summary message.
package api
