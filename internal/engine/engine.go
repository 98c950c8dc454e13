// Package engine drives a game: it owns the tick schedule, turns commands
// into state transitions and fans each tick's events out to the sound sink
// before handing a snapshot to the renderer.
package engine

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/diegok/flagpong/internal/game"
)

// Scheduler calls tick at the display cadence until stopped
type Scheduler interface {
	Start(tick func())
	Stop()
}

// Renderer draws one snapshot
type Renderer interface {
	Render(snap game.Snapshot)
}

// SoundSink plays named sound effects
type SoundSink interface {
	Play(s game.Sound)
}

// State is the loop state as seen from outside
type State int

const (
	StateStopped State = iota
	StateRunning
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	}
	return "unknown"
}

// Engine is the game loop orchestrator. All of its methods must be called
// from the same goroutine as the ticks.
type Engine struct {
	game      *game.GameState
	scheduler Scheduler
	renderer  Renderer
	sound     SoundSink
	logger    *log.Logger

	scheduled bool
}

// New creates an engine for gs. A nil logger discards everything.
func New(gs *game.GameState, scheduler Scheduler, renderer Renderer, sound SoundSink, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Engine{
		game:      gs,
		scheduler: scheduler,
		renderer:  renderer,
		sound:     sound,
		logger:    logger,
	}
}

// Game returns the simulation the engine drives
func (e *Engine) Game() *game.GameState {
	return e.game
}

// State maps the game phase onto the loop states
func (e *Engine) State() State {
	switch e.game.Phase {
	case game.PhaseRunning:
		return StateRunning
	case game.PhasePaused:
		return StatePaused
	}
	return StateStopped
}

// Toggle is the single start/pause control. Stopped starts a match with a
// fresh serve, running pauses, paused resumes the ball where it was. After
// a finished match it starts a new one.
func (e *Engine) Toggle() {
	prev := e.game.Phase

	if prev == game.PhaseRunning {
		e.game.Pause()
		e.stop()
	} else {
		e.game.Start()
		e.start()
	}

	e.logger.Info("toggle", "from", prev, "to", e.game.Phase, "quote_left", e.game.Quote.Remaining())
	e.Render()
}

// Reset stops the loop and restores the initial layout with a zero score
func (e *Engine) Reset() {
	e.stop()
	e.game.Reset()
	e.logger.Info("reset")
	e.Render()
}

// SetDifficulty switches to the named profile. The ball speed changes at
// once; outside a running game the change is drawn right away.
func (e *Engine) SetDifficulty(name string) error {
	d, err := game.ParseDifficulty(name)
	if err != nil {
		return fmt.Errorf("set difficulty: %w", err)
	}

	e.game.SetDifficulty(d)
	e.logger.Info("difficulty changed", "difficulty", d.Name, "speed", d.BallSpeed)

	if e.State() != StateRunning {
		e.Render()
	}
	return nil
}

// MovePlayer centers the player paddle on y
func (e *Engine) MovePlayer(y float64) {
	e.game.SetPlayerY(y)
	if e.State() != StateRunning {
		e.Render()
	}
}

// Tick runs one simulation step and draws the result. Ticks that arrive
// while the game is not running are dropped.
func (e *Engine) Tick() {
	if e.game.Phase != game.PhaseRunning {
		return
	}

	forced := e.game.ForcedSeparations
	events := e.game.Update()

	for _, ev := range events {
		for _, s := range ev.Sounds() {
			e.sound.Play(s)
		}
		if ev.Kind == game.EventPoint {
			e.logger.Info("point", "scorer", ev.Side,
				"player", e.game.PlayerScore, "opponent", e.game.OpponentScore)
		}
	}

	if e.game.ForcedSeparations > forced {
		e.logger.Warn("ball forced out of obstacle", "tick", e.game.Tick,
			"total", e.game.ForcedSeparations, "velocity", e.game.Ball.Velocity())
	}

	if e.game.Phase == game.PhaseMatchOver {
		e.stop()
		e.logger.Info("match over", "winner", e.game.GetWinner(),
			"player", e.game.PlayerScore, "opponent", e.game.OpponentScore)
	}

	e.Render()
}

// Render draws the current state
func (e *Engine) Render() {
	e.renderer.Render(e.game.ToSnapshot())
}

func (e *Engine) start() {
	if e.scheduled {
		return
	}
	e.scheduled = true
	e.scheduler.Start(e.Tick)
}

func (e *Engine) stop() {
	if !e.scheduled {
		return
	}
	e.scheduled = false
	e.scheduler.Stop()
}
