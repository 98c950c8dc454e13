package game

// updateOpponent tracks the ball with the computer paddle. It only moves
// while the ball heads its way, one difficulty step per tick, with no
// prediction.
func (gs *GameState) updateOpponent() {
	if gs.Ball.VX <= 0 {
		return
	}
	gs.Opponent.MoveToward(gs.Ball.Y, gs.Difficulty.ComputerSpeed)
}
