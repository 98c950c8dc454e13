package geom

import (
	"math"
	"testing"
)

func TestRect_Edges(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}

	if r.Right() != 40 {
		t.Errorf("expected Right=40, got %f", r.Right())
	}
	if r.Bottom() != 60 {
		t.Errorf("expected Bottom=60, got %f", r.Bottom())
	}
	c := r.Center()
	if c.X != 25 || c.Y != 40 {
		t.Errorf("expected Center=(25,40), got (%f,%f)", c.X, c.Y)
	}
}

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name string
		p    Vec
		want bool
	}{
		{"inside", Vec{5, 5}, true},
		{"corner", Vec{0, 0}, true},
		{"far edge", Vec{10, 10}, true},
		{"left of", Vec{-1, 5}, false},
		{"below", Vec{5, 11}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRect_Intersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlapping", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"contained", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"touching right edge", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"touching bottom edge", Rect{X: 0, Y: 10, W: 5, H: 5}, false},
		{"apart", Rect{X: 20, Y: 20, W: 5, H: 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects(%v) = %v, want %v", tt.b, got, tt.want)
			}
			if got := tt.b.Intersects(a); got != tt.want {
				t.Errorf("Intersects is not symmetric for %v", tt.b)
			}
		})
	}
}

func TestCircle_OverlapsRect(t *testing.T) {
	r := Rect{X: 100, Y: 100, W: 50, H: 20}

	if !(Circle{Center: Vec{95, 110}, R: 10}).OverlapsRect(r) {
		t.Error("circle reaching into left edge should overlap")
	}
	if (Circle{Center: Vec{90, 110}, R: 10}).OverlapsRect(r) {
		t.Error("circle touching left edge should not overlap")
	}
	if (Circle{Center: Vec{125, 50}, R: 10}).OverlapsRect(r) {
		t.Error("circle above should not overlap")
	}
}

func TestSeparate(t *testing.T) {
	r := Rect{X: 100, Y: 100, W: 160, H: 40}

	tests := []struct {
		name string
		c    Circle
		dir  Vec
	}{
		{"near left edge", Circle{Center: Vec{95, 120}, R: 10}, Vec{1, 0}},
		{"near top edge", Circle{Center: Vec{180, 95}, R: 10}, Vec{0, 1}},
		{"near bottom edge", Circle{Center: Vec{180, 145}, R: 10}, Vec{0, -1}},
		{"dead center", Circle{Center: Vec{180, 120}, R: 10}, Vec{0, 0}},
		{"deep right", Circle{Center: Vec{255, 130}, R: 10}, Vec{-3, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			move := Separate(tt.c, r, tt.dir)
			moved := Circle{Center: tt.c.Center.Add(move), R: tt.c.R}
			if moved.OverlapsRect(r) {
				t.Errorf("circle still overlaps after moving by %v", move)
			}
			if move.X != 0 && move.Y != 0 {
				t.Errorf("expected single-axis translation, got %v", move)
			}
		})
	}

	if got := Separate(Circle{Center: Vec{0, 0}, R: 5}, r, Vec{1, 1}); got != (Vec{}) {
		t.Errorf("expected zero translation without overlap, got %v", got)
	}
}

func TestSeparate_PicksShortestAxis(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 100, H: 100}
	c := Circle{Center: Vec{50, 8}, R: 10}

	move := Separate(c, r, Vec{})
	if move.X != 0 {
		t.Errorf("expected vertical push, got %v", move)
	}
	if math.Abs(move.Y+18) > 1e-3 {
		t.Errorf("expected push of about -18, got %f", move.Y)
	}
}

func TestClampAndSign(t *testing.T) {
	if Clamp(-5, 0, 10) != 0 {
		t.Error("expected clamp to lower bound")
	}
	if Clamp(15, 0, 10) != 10 {
		t.Error("expected clamp to upper bound")
	}
	if Clamp(7, 0, 10) != 7 {
		t.Error("expected value unchanged")
	}
	if Sign(-3) != -1 || Sign(0) != 0 || Sign(2) != 1 {
		t.Error("unexpected Sign result")
	}
}

func TestVec(t *testing.T) {
	v := Vec{3, 4}
	if v.Len() != 5 {
		t.Errorf("expected Len=5, got %f", v.Len())
	}
	if got := v.Add(Vec{1, 1}).Scale(2); got != (Vec{8, 10}) {
		t.Errorf("expected (8,10), got %v", got)
	}
}
