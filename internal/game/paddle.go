package game

import "github.com/diegok/flagpong/internal/geom"

const (
	PaddleWidth         = 30.0
	PaddleHeight        = 60.0
	HandleLength        = 20.0
	HandleWidth         = 6.0
	PlayerPaddleX       = 30.0
	OpponentPaddleInset = 60.0 // distance from the right table edge to the opponent paddle
)

// Side identifies one end of the table
type Side int

const (
	SidePlayer Side = iota
	SideOpponent
)

func (s Side) String() string {
	if s == SidePlayer {
		return "player"
	}
	return "opponent"
}

// Paddle is a flag-faced paddle with a short handle on its table-facing
// side. X is fixed, Y is the top edge.
type Paddle struct {
	Side         Side
	X, Y         float64
	Width        float64
	Height       float64
	HandleLength float64
	HandleWidth  float64
	TableHeight  float64
}

// NewPaddle creates a paddle at column x, vertically centered on the table
func NewPaddle(side Side, x, tableHeight float64) *Paddle {
	p := &Paddle{
		Side:         side,
		X:            x,
		Width:        PaddleWidth,
		Height:       PaddleHeight,
		HandleLength: HandleLength,
		HandleWidth:  HandleWidth,
		TableHeight:  tableHeight,
	}
	p.Center()
	return p
}

// SetY moves the paddle top edge to y, kept inside the table
func (p *Paddle) SetY(y float64) {
	p.Y = geom.Clamp(y, 0, p.MaxY())
}

// MaxY returns the lowest allowed top edge
func (p *Paddle) MaxY() float64 {
	if p.TableHeight < p.Height {
		return 0
	}
	return p.TableHeight - p.Height
}

// Center puts the paddle in the middle of the table
func (p *Paddle) Center() {
	p.SetY(p.TableHeight/2 - p.Height/2)
}

// CenterY returns the paddle's vertical center
func (p *Paddle) CenterY() float64 {
	return p.Y + p.Height/2
}

// MoveToward steps the paddle center one step toward y
func (p *Paddle) MoveToward(y, step float64) {
	if p.CenterY() < y {
		p.SetY(p.Y + step)
	} else {
		p.SetY(p.Y - step)
	}
}

func (p *Paddle) TopY() float64 {
	return p.Y
}

func (p *Paddle) BottomY() float64 {
	return p.Y + p.Height
}

// Rect returns the visible paddle face
func (p *Paddle) Rect() geom.Rect {
	return geom.Rect{X: p.X, Y: p.TopY(), W: p.Width, H: p.BottomY() - p.TopY()}
}

// HandleRect returns the handle, which sits on the side facing the net
func (p *Paddle) HandleRect() geom.Rect {
	x := p.X + p.Width
	if p.Side == SideOpponent {
		x = p.X - p.HandleWidth
	}
	return geom.Rect{
		X: x,
		Y: p.CenterY() - p.HandleLength/2,
		W: p.HandleWidth,
		H: p.HandleLength,
	}
}

// HitBox returns the face widened by the handle width
func (p *Paddle) HitBox() geom.Rect {
	box := geom.Rect{X: p.X, Y: p.Y, W: p.Width + p.HandleWidth, H: p.Height}
	if p.Side == SideOpponent {
		box.X = p.X - p.HandleWidth
	}
	return box
}

// Hits reports whether the ball touches the paddle face or its handle
func (p *Paddle) Hits(c geom.Circle) bool {
	b := c.Bounds()
	if !b.Intersects(p.HitBox()) {
		return false
	}

	// Overlapping the face itself
	if p.Side == SidePlayer && b.X < p.X+p.Width {
		return true
	}
	if p.Side == SideOpponent && b.Right() > p.X {
		return true
	}

	// Only the handle strip is left
	h := p.HandleRect()
	return b.Bottom() > h.Y && b.Y < h.Bottom()
}
