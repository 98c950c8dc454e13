package game

import (
	"math"
	"math/rand"
	"testing"
)

func TestBall_Move(t *testing.T) {
	ball := NewBall(10.0, 20.0, 5)
	ball.VX = 1.0
	ball.VY = -0.5

	ball.Move()

	if ball.X != 11.0 {
		t.Errorf("expected X=11.0, got %f", ball.X)
	}
	if ball.Y != 19.5 {
		t.Errorf("expected Y=19.5, got %f", ball.Y)
	}
}

func TestBall_BounceVertical(t *testing.T) {
	ball := NewBall(10.0, 20.0, 5)
	ball.VX = 0.5
	ball.VY = 0.3

	ball.BounceVertical()

	if ball.VX != 0.5 {
		t.Errorf("expected VX=0.5 (unchanged), got %f", ball.VX)
	}
	if ball.VY != -0.3 {
		t.Errorf("expected VY=-0.3, got %f", ball.VY)
	}
}

func TestBall_BounceHorizontal(t *testing.T) {
	ball := NewBall(10.0, 20.0, 5)
	ball.VX = 0.5
	ball.VY = 0.3

	ball.BounceHorizontal()

	if ball.VX != -0.5 || ball.VY != 0.3 {
		t.Errorf("expected (-0.5, 0.3), got (%f, %f)", ball.VX, ball.VY)
	}
}

func TestBall_BounceOffPaddle(t *testing.T) {
	// Ball hitting center of paddle should bounce straight back
	ball := NewBall(60.0, 300.0, 7)
	ball.VX = -7
	ball.VY = 2

	ball.BounceOffPaddle(300, 60, 1)

	if math.Abs(ball.VX-7) > 1e-9 {
		t.Errorf("expected VX=7 after center hit, got %f", ball.VX)
	}
	if math.Abs(ball.VY) > 1e-9 {
		t.Errorf("expected VY near 0 for center hit, got %f", ball.VY)
	}
}

func TestBall_BounceOffPaddle_Edge(t *testing.T) {
	// Ball hitting the lower edge leaves at the maximum angle
	ball := NewBall(740.0, 330.0, 7)
	ball.VX = 7
	ball.VY = 0

	ball.BounceOffPaddle(300, 60, -1)

	if ball.VX >= 0 {
		t.Errorf("expected VX < 0 after bouncing off right paddle, got %f", ball.VX)
	}
	if ball.VY <= 0 {
		t.Errorf("expected VY > 0 for lower edge hit, got %f", ball.VY)
	}

	want := 7 * math.Sin(MaxBounceAngle)
	if math.Abs(ball.VY-want) > 1e-9 {
		t.Errorf("expected VY=%f, got %f", want, ball.VY)
	}

	// Velocity is rebuilt from the scalar speed
	if math.Abs(ball.Velocity()-7) > 1e-9 {
		t.Errorf("expected velocity 7, got %f", ball.Velocity())
	}
}

func TestBall_BounceOffPaddle_ClampsOffset(t *testing.T) {
	ball := NewBall(60.0, 400.0, 7)
	ball.BounceOffPaddle(300, 60, 1)

	want := 7 * math.Sin(MaxBounceAngle)
	if math.Abs(ball.VY-want) > 1e-9 {
		t.Errorf("expected clamped VY=%f, got %f", want, ball.VY)
	}
}

func TestBall_SpeedUp(t *testing.T) {
	ball := NewBall(0, 0, 7)

	ball.SpeedUp(0.3)
	if math.Abs(ball.Speed-7.3) > 1e-9 {
		t.Errorf("expected speed 7.3, got %f", ball.Speed)
	}

	ball.SpeedUp(-1)
	if math.Abs(ball.Speed-7.3) > 1e-9 {
		t.Errorf("speed should never drop, got %f", ball.Speed)
	}
}

func TestBall_Amplify(t *testing.T) {
	ball := NewBall(0, 0, 7)
	ball.VX = 2
	ball.VY = -4

	ball.Amplify(1.5)

	if ball.VX != 3 || ball.VY != -6 {
		t.Errorf("expected (3,-6), got (%f,%f)", ball.VX, ball.VY)
	}
	if ball.Speed != 7 {
		t.Errorf("expected scalar speed untouched, got %f", ball.Speed)
	}
}

func TestBall_Reset(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	ball := NewBall(100.0, 100.0, 9)
	ball.VX = 10.0
	ball.VY = 10.0

	for i := 0; i < 50; i++ {
		ball.Reset(400, 300, 5, rng)

		if ball.X != 400 || ball.Y != 300 {
			t.Fatalf("expected ball at (400,300), got (%f,%f)", ball.X, ball.Y)
		}
		if ball.Speed != 5 {
			t.Fatalf("expected speed 5, got %f", ball.Speed)
		}
		if math.Abs(ball.VX) != 5 {
			t.Fatalf("expected |VX|=5, got %f", ball.VX)
		}
		if math.Abs(ball.VY) < 2.5 || math.Abs(ball.VY) >= 5 {
			t.Fatalf("expected |VY| in [2.5,5), got %f", ball.VY)
		}
	}
}

func TestBall_Velocity(t *testing.T) {
	ball := NewBall(0, 0, 1)
	ball.VX = 3.0
	ball.VY = 4.0

	// 3-4-5 triangle
	if ball.Velocity() != 5.0 {
		t.Errorf("expected velocity=5.0, got %f", ball.Velocity())
	}
}
