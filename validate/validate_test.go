package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()

	tmpfile, err := os.CreateTemp(t.TempDir(), "test_config_*.json")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	tmpfile.Close()

	return tmpfile.Name()
}

func TestValidateConfig_ValidConfig(t *testing.T) {
	// Small board with a light hazard load and a generous budget
	validConfig := `{
		"name": "Test Profile",
		"description": "Test board profile",
		"rows": 8,
		"cols": 8,
		"starting_health": 200,
		"starting_moves": 450,
		"hazards": {
			"Speeder": {"min": 1, "max": 2},
			"Lava": {"min": 0, "max": 1},
			"Mud": {"min": 1, "max": 2}
		}
	}`

	path := writeTempConfig(t, validConfig)

	result := validateConfig(path)
	if !result.Valid {
		t.Errorf("Expected valid config, but got errors: %v", result.Errors)
	}

	if result.File != filepath.Base(path) {
		t.Errorf("Expected file name %s, got %s", filepath.Base(path), result.File)
	}
}

func TestValidateConfig_InvalidJSON(t *testing.T) {
	path := writeTempConfig(t, `{"name": "test", invalid json}`)

	result := validateConfig(path)
	if result.Valid {
		t.Error("Expected invalid config due to bad JSON")
	}

	found := false
	for _, err := range result.Errors {
		if strings.Contains(err, "Invalid JSON") {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected 'Invalid JSON' error")
	}
}

func TestValidateConfig_MissingFile(t *testing.T) {
	result := validateConfig("/non/existent/file.json")
	if result.Valid {
		t.Error("Expected invalid result for missing file")
	}
}

func TestValidateConfig_BadDimensions(t *testing.T) {
	config := `{
		"name": "Tiny",
		"description": "Board below the minimum size",
		"rows": 2,
		"cols": 2,
		"starting_health": 10,
		"starting_moves": 10,
		"hazards": {}
	}`

	path := writeTempConfig(t, config)

	result := validateConfig(path)
	if result.Valid {
		t.Errorf("Expected invalid config for 2x2 board, got: %v", result.Errors)
	}
}

func TestValidateConfig_UnknownHazardKind(t *testing.T) {
	config := `{
		"name": "Bad Hazard",
		"description": "Profile with an unknown hazard kind",
		"rows": 5,
		"cols": 5,
		"starting_health": 50,
		"starting_moves": 50,
		"hazards": {
			"Quicksand": {"min": 1, "max": 2}
		}
	}`

	path := writeTempConfig(t, config)

	result := validateConfig(path)
	if result.Valid {
		t.Error("Expected invalid config for unknown hazard kind")
	}
}

func TestValidateConfig_SaturatedBoard(t *testing.T) {
	// Max hazard draw fills every cell, leaving no room for Start and End
	config := `{
		"name": "Saturated",
		"description": "More hazards than the board can hold",
		"rows": 3,
		"cols": 3,
		"starting_health": 50,
		"starting_moves": 50,
		"hazards": {
			"Lava": {"min": 9, "max": 9}
		}
	}`

	path := writeTempConfig(t, config)

	result := validateConfig(path)
	if result.Valid {
		t.Error("Expected invalid config for saturated board")
	}
}

func TestValidateSolvability_GenerousBudget(t *testing.T) {
	config := `{
		"name": "Open Field",
		"description": "Nearly hazard-free board",
		"rows": 5,
		"cols": 5,
		"starting_health": 100,
		"starting_moves": 100,
		"hazards": {
			"Mud": {"min": 0, "max": 1}
		}
	}`

	path := writeTempConfig(t, config)

	result := validateConfig(path)
	if !result.Valid {
		t.Errorf("Expected a hazard-free board with a generous budget to validate, got: %v", result.Errors)
	}

	found := false
	for _, info := range result.Errors {
		if strings.Contains(info, "Solvability") {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected solvability info in validation output")
	}
}
