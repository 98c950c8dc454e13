package game

import "github.com/diegok/flagpong/internal/effects"

// QuoteView is what the display needs from the popup
type QuoteView struct {
	Active      bool
	Text        string
	Attribution string
	Alpha       float64
}

// Snapshot is a copy of everything the display draws. Holding one does not
// pin or race the live state.
type Snapshot struct {
	Width, Height float64
	Tick          int
	Phase         Phase
	Difficulty    string

	Ball      Ball
	Spin      float64
	Player    Paddle
	Opponent  Paddle
	Obstacles []Obstacle
	Particles []effects.Particle
	Quote     QuoteView

	PlayerScore   int
	OpponentScore int
	PointsToWin   int
	GameOver      bool
	Winner        Side
}

// ToSnapshot copies the current state for rendering
func (gs *GameState) ToSnapshot() Snapshot {
	obstacles := make([]Obstacle, len(gs.Obstacles))
	for i, o := range gs.Obstacles {
		obstacles[i] = *o
	}

	particles := make([]effects.Particle, len(gs.Explosions.Particles))
	copy(particles, gs.Explosions.Particles)

	return Snapshot{
		Width:      gs.Width,
		Height:     gs.Height,
		Tick:       gs.Tick,
		Phase:      gs.Phase,
		Difficulty: gs.Difficulty.Name,
		Ball:       *gs.Ball,
		Spin:       gs.Spin,
		Player:     *gs.Player,
		Opponent:   *gs.Opponent,
		Obstacles:  obstacles,
		Particles:  particles,
		Quote: QuoteView{
			Active:      gs.Quote.Active,
			Text:        gs.Quote.Text,
			Attribution: effects.Attribution,
			Alpha:       gs.Quote.Alpha,
		},
		PlayerScore:   gs.PlayerScore,
		OpponentScore: gs.OpponentScore,
		PointsToWin:   gs.PointsToWin,
		GameOver:      gs.IsGameOver(),
		Winner:        gs.GetWinner(),
	}
}
