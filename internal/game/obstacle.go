package game

import "github.com/diegok/flagpong/internal/geom"

const (
	ObstacleWidth  = 160.0
	ObstacleHeight = 40.0
	ObstacleBoost  = 1.1 // velocity scale applied on every obstacle hit
	ObstacleJitter = 2.0 // width of the random vy nudge after a hit
	// MaxSeparationSteps bounds the unit-step push out of an obstacle before
	// falling back to an exact separation.
	MaxSeparationSteps = 256
)

// Obstacle is a static block in the middle of the table. Inactive blocks are
// skipped by collisions and drawing.
type Obstacle struct {
	X, Y   float64
	Width  float64
	Height float64
	Active bool
}

func (o *Obstacle) Rect() geom.Rect {
	return geom.Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
}

// DefaultObstacles returns the three centered blocks of a fresh table
func DefaultObstacles(width, height float64) []*Obstacle {
	x := width/2 - ObstacleWidth/2
	ys := []float64{
		height / 4,
		height/2 - ObstacleHeight/2,
		height*3/4 - ObstacleHeight/2,
	}

	obstacles := make([]*Obstacle, 0, len(ys))
	for _, y := range ys {
		obstacles = append(obstacles, &Obstacle{
			X:      x,
			Y:      y,
			Width:  ObstacleWidth,
			Height: ObstacleHeight,
			Active: true,
		})
	}
	return obstacles
}
