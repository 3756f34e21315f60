package main

import (
	"testing"

	"github.com/tecz/grid-game/game/engine"
)

func smallTestConfig() *engine.BoardConfig {
	return &engine.BoardConfig{
		Name:           "Small Test",
		Description:    "Small board for analyzer tests",
		Rows:           5,
		Cols:           5,
		StartingHealth: 50,
		StartingMoves:  50,
		Hazards: map[engine.TileKind]engine.CountRange{
			engine.Mud: {Min: 1, Max: 3},
		},
	}
}

func TestSolvableFraction(t *testing.T) {
	tests := []struct {
		name     string
		report   ProfileReport
		expected float64
	}{
		{"all solvable", ProfileReport{Samples: 10, Solvable: 10}, 1.0},
		{"half solvable", ProfileReport{Samples: 10, Solvable: 5}, 0.5},
		{"none solvable", ProfileReport{Samples: 10, Solvable: 0}, 0.0},
		{"excludes generation failures", ProfileReport{Samples: 10, Solvable: 4, Errors: 2}, 0.5},
		{"all failures", ProfileReport{Samples: 10, Errors: 10}, 0.0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.report.SolvableFraction(); got != test.expected {
				t.Errorf("SolvableFraction() = %v, expected %v", got, test.expected)
			}
		})
	}
}

func TestSampleProfile(t *testing.T) {
	report := sampleProfile("small", smallTestConfig(), 20)

	if report.Samples != 20 {
		t.Errorf("Expected 20 samples, got %d", report.Samples)
	}

	if report.Errors != 0 {
		t.Errorf("Expected no generation failures, got %d", report.Errors)
	}

	if report.Solvable < 0 || report.Solvable > 20 {
		t.Errorf("Solvable count out of range: %d", report.Solvable)
	}

	// With a generous budget and a tiny mud count, most boards should be
	// solvable.
	if report.Solvable == 0 {
		t.Error("Expected at least one solvable board with a generous budget")
	}

	avgMud := report.AvgTiles[engine.Mud]
	if avgMud < 1 || avgMud > 3 {
		t.Errorf("Average mud count %v outside configured range [1, 3]", avgMud)
	}
}

func TestSampleProfileSaturatedConfig(t *testing.T) {
	// More hazards than cells: every generation attempt fails, and the
	// report records the failures instead of panicking.
	config := smallTestConfig()
	config.Hazards = map[engine.TileKind]engine.CountRange{
		engine.Lava: {Min: 30, Max: 30},
	}

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("sampleProfile panicked: %v", r)
		}
	}()

	report := sampleProfile("saturated", config, 5)

	if report.Errors != 5 {
		t.Errorf("Expected 5 generation failures, got %d", report.Errors)
	}

	if report.SolvableFraction() != 0 {
		t.Errorf("Expected zero solvable fraction, got %v", report.SolvableFraction())
	}
}

func TestPrintReportDoesNotPanic(t *testing.T) {
	config := smallTestConfig()
	report := sampleProfile("small", config, 5)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("printReport panicked: %v", r)
		}
	}()

	printReport(report, config, 0.9)
}
