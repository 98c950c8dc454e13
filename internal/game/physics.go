package game

import (
	"math"

	"github.com/diegok/flagpong/internal/geom"
)

// moveBall advances the ball and resolves, in order, walls, obstacles and
// the paddle on the ball's half of the table. Each check sees the result of
// the previous one; a ball can bounce off a wall and a paddle in one tick.
func (gs *GameState) moveBall() []Event {
	gs.Ball.Move()

	var events []Event
	events = append(events, gs.checkWallCollision()...)
	events = append(events, gs.checkObstacleCollisions()...)
	events = append(events, gs.checkPaddleCollision()...)
	return events
}

// checkWallCollision bounces the ball off the top and bottom edges. Only a
// ball heading into the wall bounces, so a crossing reports once.
func (gs *GameState) checkWallCollision() []Event {
	b := gs.Ball
	top := b.Y-b.Radius < 0 && b.VY < 0
	bottom := b.Y+b.Radius > gs.Height && b.VY > 0
	if !top && !bottom {
		return nil
	}

	b.BounceVertical()
	return []Event{{Kind: EventWallHit, Pos: b.Pos()}}
}

// checkObstacleCollisions bounces the ball off every active obstacle it
// overlaps and pushes it back out
func (gs *GameState) checkObstacleCollisions() []Event {
	var events []Event
	b := gs.Ball

	for _, o := range gs.Obstacles {
		if !o.Active {
			continue
		}
		rect := o.Rect()
		if !b.Circle().OverlapsRect(rect) {
			continue
		}

		// Obstacle bursts use the opponent colors
		events = append(events, Event{Kind: EventObstacleHit, Pos: b.Pos(), Side: SideOpponent})

		// Mostly-horizontal approach reflects vx, otherwise vy
		c := rect.Center()
		angle := math.Atan2(b.Y-c.Y, b.X-c.X)
		if math.Abs(math.Cos(angle)) > math.Abs(math.Sin(angle)) {
			b.BounceHorizontal()
		} else {
			b.BounceVertical()
		}

		b.Amplify(ObstacleBoost)
		b.VY += (gs.rng.Float64() - 0.5) * ObstacleJitter

		gs.separate(rect)
	}

	return events
}

// separate walks the ball out of rect one unit per axis along its velocity.
// If that does not clear it within MaxSeparationSteps it is placed just
// outside along the shortest axis.
func (gs *GameState) separate(rect geom.Rect) {
	b := gs.Ball
	stepX, stepY := geom.Sign(b.VX), geom.Sign(b.VY)

	for i := 0; i < MaxSeparationSteps && b.Circle().OverlapsRect(rect); i++ {
		b.X += stepX
		b.Y += stepY
	}

	if !b.Circle().OverlapsRect(rect) {
		return
	}

	move := geom.Separate(b.Circle(), rect, geom.Vec{X: b.VX, Y: b.VY})
	b.X += move.X
	b.Y += move.Y
	gs.ForcedSeparations++
}

// checkPaddleCollision returns the ball off the paddle guarding the half it
// is in. The return angle depends on where it struck; the scalar speed then
// grows by the difficulty increment.
func (gs *GameState) checkPaddleCollision() []Event {
	b := gs.Ball

	paddle := gs.Player
	if b.X >= gs.Width/2 {
		paddle = gs.Opponent
	}

	if !paddle.Hits(b.Circle()) {
		return nil
	}

	// Only collide if ball is moving toward paddle
	dir := 1.0
	if paddle.Side == SideOpponent {
		dir = -1.0
	}
	if geom.Sign(b.VX) == dir {
		return nil
	}

	ev := Event{Kind: EventPaddleHit, Pos: b.Pos(), Side: paddle.Side}

	b.BounceOffPaddle(paddle.CenterY(), paddle.Height, dir)
	b.SpeedUp(gs.Difficulty.BallSpeedIncrement)

	return []Event{ev}
}
