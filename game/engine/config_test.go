package engine

import "testing"

func validTestConfig() *BoardConfig {
	return &BoardConfig{
		Name:           "test",
		Description:    "Config for validation tests",
		Rows:           10,
		Cols:           10,
		StartingHealth: 50,
		StartingMoves:  80,
		Hazards: map[TileKind]CountRange{
			Speeder: {Min: 2, Max: 4},
			Lava:    {Min: 1, Max: 2},
			Mud:     {Min: 0, Max: 3},
		},
	}
}

func TestValidateBoardConfig(t *testing.T) {
	if err := ValidateBoardConfig(validTestConfig()); err != nil {
		t.Fatalf("Expected valid config, got %v", err)
	}
	if err := ValidateBoardConfig(DefaultBoardConfig()); err != nil {
		t.Fatalf("Expected default config to validate, got %v", err)
	}
}

func TestValidateBoardConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BoardConfig)
	}{
		{"missing name", func(c *BoardConfig) { c.Name = "" }},
		{"missing description", func(c *BoardConfig) { c.Description = "" }},
		{"rows too small", func(c *BoardConfig) { c.Rows = 2 }},
		{"rows too large", func(c *BoardConfig) { c.Rows = 500 }},
		{"cols too small", func(c *BoardConfig) { c.Cols = 0 }},
		{"zero health", func(c *BoardConfig) { c.StartingHealth = 0 }},
		{"negative moves", func(c *BoardConfig) { c.StartingMoves = -1 }},
		{"unknown hazard kind", func(c *BoardConfig) {
			c.Hazards[TileKind("Quicksand")] = CountRange{Min: 1, Max: 1}
		}},
		{"non-hazard kind", func(c *BoardConfig) {
			c.Hazards[Start] = CountRange{Min: 1, Max: 1}
		}},
		{"negative min count", func(c *BoardConfig) {
			c.Hazards[Speeder] = CountRange{Min: -1, Max: 1}
		}},
		{"max below min", func(c *BoardConfig) {
			c.Hazards[Speeder] = CountRange{Min: 5, Max: 2}
		}},
		{"saturating hazard total", func(c *BoardConfig) {
			c.Hazards[Speeder] = CountRange{Min: 0, Max: 100}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validTestConfig()
			tt.mutate(config)
			if err := ValidateBoardConfig(config); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestNewGameRejectsInvalidConfig(t *testing.T) {
	config := validTestConfig()
	config.Name = ""

	if _, err := NewGame(config); err == nil {
		t.Error("Expected error for invalid config")
	}
}
