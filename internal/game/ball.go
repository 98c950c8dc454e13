package game

import (
	"math"
	"math/rand"

	"github.com/diegok/flagpong/internal/geom"
)

const (
	BallRadius     = 10.0
	MaxBounceAngle = math.Pi / 4 // 45 degrees max off a paddle edge
	SpinRate       = 0.05
)

// Ball is the ball in play. Speed is the scalar used to rebuild the velocity
// on paddle returns; it can drift from the actual velocity length after
// obstacle hits.
type Ball struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Speed  float64
}

func NewBall(x, y, speed float64) *Ball {
	return &Ball{X: x, Y: y, Radius: BallRadius, Speed: speed}
}

// Move advances the ball by its velocity
func (b *Ball) Move() {
	b.X += b.VX
	b.Y += b.VY
}

// BounceVertical reverses vertical direction (wall bounce)
func (b *Ball) BounceVertical() {
	b.VY = -b.VY
}

// BounceHorizontal reverses horizontal direction
func (b *Ball) BounceHorizontal() {
	b.VX = -b.VX
}

// BounceOffPaddle sends the ball back at an angle that depends on where it
// struck the paddle: center returns flat, edges return at MaxBounceAngle.
// dir is +1 to send it right, -1 to send it left.
func (b *Ball) BounceOffPaddle(paddleCenterY, paddleHeight, dir float64) {
	relativeHit := geom.Clamp((b.Y-paddleCenterY)/(paddleHeight/2), -1, 1)
	angle := relativeHit * MaxBounceAngle

	b.VX = dir * b.Speed * math.Cos(angle)
	b.VY = b.Speed * math.Sin(angle)
}

// SpeedUp raises the scalar speed. Negative increments are ignored.
func (b *Ball) SpeedUp(increment float64) {
	if increment > 0 {
		b.Speed += increment
	}
}

// Amplify scales the velocity vector without touching the scalar speed
func (b *Ball) Amplify(factor float64) {
	b.VX *= factor
	b.VY *= factor
}

// Velocity returns the current velocity length
func (b *Ball) Velocity() float64 {
	return geom.Vec{X: b.VX, Y: b.VY}.Len()
}

// Pos returns the ball center
func (b *Ball) Pos() geom.Vec {
	return geom.Vec{X: b.X, Y: b.Y}
}

// Circle returns the ball's collision shape
func (b *Ball) Circle() geom.Circle {
	return geom.Circle{Center: b.Pos(), R: b.Radius}
}

// Reset places the ball at the given center with a fresh random serve:
// full speed horizontally either way, and a random vertical component
// between half and full speed either way.
func (b *Ball) Reset(centerX, centerY, speed float64, rng *rand.Rand) {
	b.X = centerX
	b.Y = centerY
	b.Speed = speed

	b.VX = speed * randomSign(rng)
	b.VY = speed * randomSign(rng) * (rng.Float64()*0.5 + 0.5)
}

func randomSign(rng *rand.Rand) float64 {
	if rng.Float64() > 0.5 {
		return 1
	}
	return -1
}
