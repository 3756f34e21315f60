package engine

import "testing"

func TestIsReachableBlankBoard(t *testing.T) {
	// 3x3 all-Blank board, Manhattan distance 4, one move per step.
	board := NewBlankBoard(3, 3)
	start := Position{Row: 0, Col: 0}
	end := Position{Row: 2, Col: 2}

	if !IsReachable(board, start, end, 10, 10) {
		t.Error("Expected end to be reachable with 10 moves")
	}
	if IsReachable(board, start, end, 10, 1) {
		t.Error("Expected distance-4 target to be unreachable with 1 move")
	}
	if !IsReachable(board, start, end, 10, 4) {
		t.Error("Expected distance-4 target to be reachable with exactly 4 moves")
	}
}

func TestIsReachableStartEqualsEnd(t *testing.T) {
	board := NewBlankBoard(3, 3)
	pos := Position{Row: 1, Col: 1}

	// The end check runs before the budget check, so a dead budget still
	// reports reachable when already standing on the end.
	if !IsReachable(board, pos, pos, 0, 0) {
		t.Error("Expected start == end to be reachable regardless of budget")
	}
	if !IsReachable(board, pos, pos, -5, -5) {
		t.Error("Expected start == end to be reachable with negative budget")
	}
}

func TestIsReachableDeadBudgetAtStart(t *testing.T) {
	board := NewBlankBoard(3, 3)
	start := Position{Row: 0, Col: 0}
	end := Position{Row: 2, Col: 2}

	if IsReachable(board, start, end, 0, 0) {
		t.Error("Expected dead budget at start to be unreachable")
	}
	if IsReachable(board, start, end, 0, 10) {
		t.Error("Expected zero health at start to be unreachable")
	}
	if IsReachable(board, start, end, 10, 0) {
		t.Error("Expected zero moves at start to be unreachable")
	}
}

func TestIsReachableLavaWall(t *testing.T) {
	// A full column of Lava between start and end: every crossing costs 50
	// health, so health 40 dies on the wall and health 60 survives it.
	board := boardFromStrings([]string{
		"ALE",
		".L.",
		".L.",
	})
	start := Position{Row: 0, Col: 0}
	end := Position{Row: 0, Col: 2}

	if IsReachable(board, start, end, 40, 100) {
		t.Error("Expected lava wall to be impassable with 40 health")
	}
	if !IsReachable(board, start, end, 60, 100) {
		t.Error("Expected lava wall to be passable with 60 health")
	}
}

func TestIsReachableEndChargedAsBlank(t *testing.T) {
	// Stepping onto End during the search costs one move like Blank; with a
	// single move left the adjacent end is still reached because the end
	// check fires before the budget check.
	board := boardFromStrings([]string{"AE"})
	start := Position{Row: 0, Col: 0}
	end := Position{Row: 0, Col: 1}

	if !IsReachable(board, start, end, 10, 1) {
		t.Error("Expected adjacent end to be reachable with 1 move")
	}
}

func TestIsReachableVisitedSetIsPositionOnly(t *testing.T) {
	// The cheap detour (down and around) reaches the middle cell later than
	// the expensive straight path through Mud, but dedup is by position
	// only: whichever budget gets there first wins. This pins the
	// conservative approximation in place.
	board := boardFromStrings([]string{
		"AM.E",
		"....",
	})
	start := Position{Row: 0, Col: 0}
	end := Position{Row: 0, Col: 3}

	// Enough budget either way; just verify the search terminates and finds
	// the end despite revisits being dropped.
	if !IsReachable(board, start, end, 100, 100) {
		t.Error("Expected end to be reachable")
	}

	// Health 10: the Mud path costs exactly 10 health and dies (health hits
	// 0 on the Mud cell, discarded on pop), but the Blank detour survives.
	if !IsReachable(board, start, end, 10, 100) {
		t.Error("Expected detour around the mud to be found")
	}
}
