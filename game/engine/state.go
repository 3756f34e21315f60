package engine

// LandOn applies the landing effect of the tile at (row, col) to the game's
// health and moves, then sets the player position there. Callers guarantee
// the coordinates are in range; there is no bounds check here. Blank costs
// exactly one move and no health; Start and End cost nothing.
func (g *Game) LandOn(row, col int) {
	effect := g.Board[row][col].Effect()
	g.Health += effect.Health
	g.Moves += effect.Moves
	g.PlayerPos = Position{Row: row, Col: col}
}
