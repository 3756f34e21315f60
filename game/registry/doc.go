// Package registry provides in-memory storage for running games.
//
// The registry package implements:
//   - Thread-safe game storage and retrieval
//   - Sequential ID assignment ("0", "1", ...), never reused
//   - Last-access tracking per game
//
// Concurrency:
//
// The manager is thread-safe; a readers-writer lock guards the map.
// Mutation of an individual game's state is serialized one level up by the
// service layer, so two requests against the same game ID cannot interleave
// mid-move.
//
// Lifecycle:
//
// Games live for the life of the process. There is no deletion and no
// expiry, so the registry grows without bound under sustained game
// creation; restarts start the ID sequence over from "0".
package registry
