package game

import (
	"math"
	"math/rand"
	"time"

	"github.com/diegok/flagpong/internal/effects"
)

// Constants for game state management
const (
	TableWidth    = 800.0
	TableHeight   = 600.0
	TickRate      = 60 // Ticks per second
	DefaultPoints = 10
)

// Phase is where the match stands
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseMatchOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseMatchOver:
		return "match-over"
	}
	return "unknown"
}

// Options configures a new game
type Options struct {
	Width        float64
	Height       float64
	PointsToWin  int
	Difficulty   Difficulty
	TickDuration time.Duration
	Rand         *rand.Rand
}

// DefaultOptions returns the standard table at medium difficulty
func DefaultOptions() Options {
	return Options{
		Width:        TableWidth,
		Height:       TableHeight,
		PointsToWin:  DefaultPoints,
		Difficulty:   Medium,
		TickDuration: time.Second / TickRate,
	}
}

// GameState is the whole simulation: every entity, the score and the phase.
// It is only touched from the loop that drives it.
type GameState struct {
	Width       float64
	Height      float64
	Ball        *Ball
	Player      *Paddle
	Opponent    *Paddle
	Obstacles   []*Obstacle
	Explosions  *effects.Explosions
	Quote       *effects.Popup
	Difficulty  Difficulty
	Phase       Phase
	PointsToWin int

	PlayerScore   int
	OpponentScore int
	LastScorer    Side

	// Spin is the ball's cosmetic rotation; nothing in the physics reads it
	Spin float64
	Tick int

	// ForcedSeparations counts obstacle hits that needed the exact fallback
	ForcedSeparations int

	tickDuration time.Duration
	rng          *rand.Rand
}

// NewGameState creates an idle game laid out for a fresh match
func NewGameState(opts Options) *GameState {
	def := DefaultOptions()
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = def.Width, def.Height
	}
	if opts.PointsToWin < 1 {
		opts.PointsToWin = def.PointsToWin
	}
	if opts.Difficulty.Name == "" {
		opts.Difficulty = def.Difficulty
	}
	if opts.TickDuration <= 0 {
		opts.TickDuration = def.TickDuration
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	gs := &GameState{
		Width:        opts.Width,
		Height:       opts.Height,
		Ball:         NewBall(opts.Width/2, opts.Height/2, opts.Difficulty.BallSpeed),
		Player:       NewPaddle(SidePlayer, PlayerPaddleX, opts.Height),
		Opponent:     NewPaddle(SideOpponent, opts.Width-OpponentPaddleInset, opts.Height),
		Obstacles:    DefaultObstacles(opts.Width, opts.Height),
		Explosions:   effects.NewExplosions(opts.Rand),
		Quote:        effects.NewPopup(opts.Rand),
		Difficulty:   opts.Difficulty,
		PointsToWin:  opts.PointsToWin,
		tickDuration: opts.TickDuration,
		rng:          opts.Rand,
	}
	return gs
}

// Start puts the game in motion. From idle it serves a fresh ball; from
// paused it carries on with the ball as it was; after a finished match it
// starts a new one from scratch.
func (gs *GameState) Start() {
	switch gs.Phase {
	case PhaseIdle:
		gs.ResetBall()
	case PhaseMatchOver:
		gs.Reset()
	case PhaseRunning:
		return
	}
	gs.Phase = PhaseRunning
}

// Pause freezes a running game
func (gs *GameState) Pause() {
	if gs.Phase == PhaseRunning {
		gs.Phase = PhasePaused
	}
}

// Reset restores the initial layout and clears the score
func (gs *GameState) Reset() {
	gs.Phase = PhaseIdle
	gs.PlayerScore = 0
	gs.OpponentScore = 0

	gs.ResetBall()
	gs.Player.Center()
	gs.Opponent.Center()
	for _, o := range gs.Obstacles {
		o.Active = true
	}

	gs.Explosions.Clear()
	gs.Quote.Dismiss()
}

// ResetBall serves a new ball from the center at the base speed
func (gs *GameState) ResetBall() {
	gs.Ball.Reset(gs.Width/2, gs.Height/2, gs.Difficulty.BallSpeed, gs.rng)
}

// SetDifficulty switches profile. The ball's scalar speed follows at once,
// even mid-rally.
func (gs *GameState) SetDifficulty(d Difficulty) {
	gs.Difficulty = d
	gs.Ball.Speed = d.BallSpeed
}

// SetPlayerY centers the player paddle on y, kept inside the table
func (gs *GameState) SetPlayerY(y float64) {
	gs.Player.SetY(y - gs.Player.Height/2)
}

// Update runs one game tick and returns what happened during it.
// Ticks outside the running phase do nothing.
func (gs *GameState) Update() []Event {
	if gs.Phase != PhaseRunning {
		return nil
	}
	gs.Tick++

	events := gs.moveBall()
	gs.updateOpponent()
	gs.Explosions.Update()
	gs.Quote.Update(gs.tickDuration)
	events = append(events, gs.CheckScore()...)

	gs.applyEffects(events)
	gs.spin()

	return events
}

// applyEffects turns the tick's events into explosions and quotes
func (gs *GameState) applyEffects(events []Event) {
	for _, ev := range events {
		switch ev.Kind {
		case EventPaddleHit, EventObstacleHit:
			gs.Explosions.Spawn(ev.Pos, PaletteFor(ev.Side))
		case EventPoint:
			gs.Quote.Trigger()
		}
	}
}

// spin advances the ball's cosmetic rotation with its velocity
func (gs *GameState) spin() {
	gs.Spin += SpinRate * (math.Abs(gs.Ball.VX) + math.Abs(gs.Ball.VY)) / 10
	gs.Spin = math.Mod(gs.Spin, 2*math.Pi)
}

// PaletteFor returns the explosion colors credited to side
func PaletteFor(side Side) effects.Palette {
	if side == SidePlayer {
		return effects.PlayerPalette
	}
	return effects.OpponentPalette
}
