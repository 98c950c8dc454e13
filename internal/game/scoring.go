package game

// CheckScore awards a point once the ball's edge leaves the table on the
// left or right, serves a new ball and ends the match when the winning
// score is reached.
func (gs *GameState) CheckScore() []Event {
	b := gs.Ball

	var scorer Side
	switch {
	case b.X-b.Radius < 0:
		gs.OpponentScore++
		scorer = SideOpponent
	case b.X+b.Radius > gs.Width:
		gs.PlayerScore++
		scorer = SidePlayer
	default:
		return nil
	}

	ev := Event{Kind: EventPoint, Pos: b.Pos(), Side: scorer}
	gs.LastScorer = scorer
	gs.ResetBall()

	if gs.IsGameOver() {
		gs.Phase = PhaseMatchOver
	}
	return []Event{ev}
}

// IsGameOver returns true if either side has won
func (gs *GameState) IsGameOver() bool {
	return gs.PlayerScore >= gs.PointsToWin || gs.OpponentScore >= gs.PointsToWin
}

// GetWinner returns the winning side. Only meaningful once IsGameOver.
func (gs *GameState) GetWinner() Side {
	if gs.PlayerScore >= gs.PointsToWin {
		return SidePlayer
	}
	return SideOpponent
}
