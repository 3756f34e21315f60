package engine

// searchState is a queued BFS entry: a position plus the budget it was
// discovered with.
type searchState struct {
	pos    Position
	health int
	moves  int
}

// travelCost is the budget deduction the feasibility search charges for
// stepping onto a tile. It differs from the landing effect only for Start
// and End, which the search charges like Blank.
func travelCost(kind TileKind) Effect {
	switch kind {
	case Speeder, Lava, Mud:
		return kind.Effect()
	default:
		return Effect{Health: 0, Moves: -1}
	}
}

// IsReachable reports whether any sequence of moves can reach end from start
// before the health or moves budget is exhausted. The board is read-only.
//
// This is a breadth-first search whose visited set is keyed by position
// only, not by remaining budget: the first budget to discover a cell is the
// only one explored from there. Because step costs vary by destination tile,
// that makes the answer a conservative approximation of true reachability (a
// cell dead-ended under the first-discovered budget might still be viable
// via a later, cheaper path). Callers depend on this exact behavior; do not
// replace it with a cost-aware search.
//
// The end check happens before the budget check, so start == end is
// reachable regardless of budget. Each cell is visited at most once, so the
// search always terminates in O(rows*cols).
func IsReachable(board Board, start, end Position, health, moves int) bool {
	visited := make(map[Position]bool)
	queue := []searchState{{pos: start, health: health, moves: moves}}

	// Neighbor exploration order is fixed: right, left, down, up.
	steps := []struct{ dr, dc int }{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur.pos == end {
			return true
		}
		if cur.health <= 0 || cur.moves <= 0 {
			continue
		}
		if visited[cur.pos] {
			continue
		}
		visited[cur.pos] = true

		for _, step := range steps {
			row, col := cur.pos.Row+step.dr, cur.pos.Col+step.dc
			if !board.InBounds(row, col) {
				continue
			}
			cost := travelCost(board[row][col])
			queue = append(queue, searchState{
				pos:    Position{Row: row, Col: col},
				health: cur.health + cost.Health,
				moves:  cur.moves + cost.Moves,
			})
		}
	}

	return false
}
