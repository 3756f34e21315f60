// Package config provides board profile management for the grid-maze game.
//
// Profiles are JSON files in a configs directory describing how boards are
// generated: dimensions, per-hazard count ranges, and the starting
// health/moves budget. The Manager loads and caches profiles and always has
// a built-in classic default (50x50, 200-400 of each hazard, 200 health,
// 450 moves), so the server runs with no profile files at all.
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	profile, err := manager.LoadConfig("classic")
package config
