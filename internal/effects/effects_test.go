package effects

import (
	"math/rand"
	"testing"
	"time"

	"github.com/diegok/flagpong/internal/geom"
)

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestExplosions_SpawnBurst(t *testing.T) {
	e := NewExplosions(newRand())
	origin := geom.Vec{X: 100, Y: 200}

	e.Spawn(origin, PlayerPalette)

	if e.Len() != BurstSize {
		t.Fatalf("expected %d particles, got %d", BurstSize, e.Len())
	}

	flash := e.Particles[0]
	if !flash.Flash {
		t.Fatal("expected first particle to be the flash")
	}
	if flash.Radius != FlashRadius || flash.Alpha != FlashAlpha || flash.Decay != FlashDecay {
		t.Errorf("unexpected flash %+v", flash)
	}
	if flash.Vel != (geom.Vec{}) {
		t.Errorf("expected flash to be still, got %v", flash.Vel)
	}

	for i, p := range e.Particles[1 : 1+SparkCount] {
		if p.Flash {
			t.Errorf("spark %d marked as flash", i)
		}
		if p.Pos != origin {
			t.Errorf("spark %d should start at origin, got %v", i, p.Pos)
		}
		speed := p.Vel.Len()
		if speed < 2-1e-9 || speed >= 6 {
			t.Errorf("spark %d speed %f outside [2,6)", i, speed)
		}
		if p.Radius < 2 || p.Radius >= 8 {
			t.Errorf("spark %d radius %f outside [2,8)", i, p.Radius)
		}
		if p.Decay < 0.01 || p.Decay >= 0.03 {
			t.Errorf("spark %d decay %f outside [0.01,0.03)", i, p.Decay)
		}
		if !inPalette(p, PlayerPalette) {
			t.Errorf("spark %d color not from player palette", i)
		}
	}

	for i, p := range e.Particles[1+SparkCount:] {
		speed := p.Vel.Len()
		if speed < 1-1e-9 || speed >= 3 {
			t.Errorf("ember %d speed %f outside [1,3)", i, speed)
		}
		if p.Radius < 6 || p.Radius >= 14 {
			t.Errorf("ember %d radius %f outside [6,14)", i, p.Radius)
		}
		if p.Decay < 0.005 || p.Decay >= 0.015 {
			t.Errorf("ember %d decay %f outside [0.005,0.015)", i, p.Decay)
		}
		if p.Alpha != EmberAlpha {
			t.Errorf("ember %d expected alpha %f, got %f", i, EmberAlpha, p.Alpha)
		}
	}
}

func TestExplosions_OpponentPalette(t *testing.T) {
	e := NewExplosions(newRand())
	e.Spawn(geom.Vec{}, OpponentPalette)

	for i, p := range e.Particles[1:] {
		if !inPalette(p, OpponentPalette) {
			t.Errorf("particle %d color not from opponent palette", i)
		}
	}
}

func TestExplosions_UpdateMovesAndFades(t *testing.T) {
	e := NewExplosions(newRand())
	e.Particles = append(e.Particles, Particle{
		Pos:   geom.Vec{X: 10, Y: 10},
		Vel:   geom.Vec{X: 2, Y: -1},
		Alpha: 0.5,
		Decay: 0.1,
	})

	e.Update()

	p := e.Particles[0]
	if p.Pos != (geom.Vec{X: 12, Y: 9}) {
		t.Errorf("expected position (12,9), got %v", p.Pos)
	}
	if p.Alpha < 0.399 || p.Alpha > 0.401 {
		t.Errorf("expected alpha 0.4, got %f", p.Alpha)
	}
}

func TestExplosions_FlashIsShortLived(t *testing.T) {
	e := NewExplosions(newRand())
	e.Spawn(geom.Vec{}, PlayerPalette)

	for i := 0; i < 5; i++ {
		e.Update()
	}

	for _, p := range e.Particles {
		if p.Flash {
			t.Fatalf("flash should be gone after 5 ticks, alpha=%f", p.Alpha)
		}
	}
}

func TestExplosions_DrainToZero(t *testing.T) {
	e := NewExplosions(newRand())
	e.Spawn(geom.Vec{X: 400, Y: 300}, PlayerPalette)
	e.Spawn(geom.Vec{X: 100, Y: 100}, OpponentPalette)

	prev := e.Len()
	ticks := 0
	for e.Len() > 0 {
		e.Update()
		ticks++
		if e.Len() > prev {
			t.Fatalf("particle count grew from %d to %d without new bursts", prev, e.Len())
		}
		prev = e.Len()
		if ticks > 1000 {
			t.Fatalf("particles still alive after %d ticks", ticks)
		}
	}

	// Slowest possible ember: alpha 0.9 at decay 0.005 lasts about 180 ticks
	if ticks > 182 {
		t.Errorf("expected all particles gone within 182 ticks, took %d", ticks)
	}
}

func TestExplosions_Clear(t *testing.T) {
	e := NewExplosions(newRand())
	e.Spawn(geom.Vec{}, PlayerPalette)
	e.Clear()
	if e.Len() != 0 {
		t.Errorf("expected no particles after Clear, got %d", e.Len())
	}
}

func TestPopup_Trigger(t *testing.T) {
	p := NewPopup(newRand())
	if p.Active {
		t.Fatal("new popup should be inactive")
	}

	p.Trigger()

	if !p.Active {
		t.Error("expected popup active after Trigger")
	}
	if p.Alpha != 1 {
		t.Errorf("expected alpha 1, got %f", p.Alpha)
	}
	if p.Remaining() != PopupDuration {
		t.Errorf("expected remaining %v, got %v", PopupDuration, p.Remaining())
	}
	found := false
	for _, q := range Quotes {
		if q == p.Text {
			found = true
		}
	}
	if !found {
		t.Errorf("popup text %q is not one of the quotes", p.Text)
	}
}

func TestPopup_ExpiresAfterDuration(t *testing.T) {
	p := NewPopup(newRand())
	p.Trigger()

	tick := 20 * time.Millisecond
	ticks := 0
	for p.Active {
		p.Update(tick)
		ticks++
		if ticks > 1000 {
			t.Fatal("popup never expired")
		}
	}

	if ticks != 100 {
		t.Errorf("expected popup to expire after 100 ticks, took %d", ticks)
	}
	if p.Alpha >= 1 {
		t.Errorf("expected popup to have faded a little, alpha=%f", p.Alpha)
	}
}

func TestPopup_RetriggerRestartsDuration(t *testing.T) {
	p := NewPopup(newRand())
	p.Trigger()
	p.Update(1500 * time.Millisecond)

	p.Trigger()

	if p.Remaining() != PopupDuration {
		t.Errorf("expected restarted duration %v, got %v", PopupDuration, p.Remaining())
	}

	p.Update(1500 * time.Millisecond)
	if !p.Active {
		t.Error("popup should still be active 1.5s after re-trigger")
	}
}

func TestPopup_FadeDismisses(t *testing.T) {
	p := NewPopup(newRand())
	p.Trigger()
	p.Alpha = PopupFadeSpeed / 2

	p.Update(0)

	if p.Active {
		t.Error("expected popup dismissed once alpha reaches zero")
	}
}

func TestPopup_NoUpdateNoExpiry(t *testing.T) {
	p := NewPopup(newRand())
	p.Trigger()

	time.Sleep(10 * time.Millisecond)

	if !p.Active || p.Remaining() != PopupDuration {
		t.Error("popup should only age through Update")
	}
}

func TestQuotes(t *testing.T) {
	if len(Quotes) != 15 {
		t.Errorf("expected 15 quotes, got %d", len(Quotes))
	}
}

func inPalette(p Particle, palette Palette) bool {
	for _, c := range palette {
		if c == p.Color {
			return true
		}
	}
	return false
}

func TestPalettes(t *testing.T) {
	tests := []struct {
		name    string
		palette Palette
		first   string
	}{
		{"player", PlayerPalette, "#3498db"},
		{"opponent", OpponentPalette, "#e74c3c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.palette) != 6 {
				t.Fatalf("expected 6 colors, got %d", len(tt.palette))
			}
			if got := tt.palette[0].Hex(); got != tt.first {
				t.Errorf("expected %s, got %s", tt.first, got)
			}
			if got := tt.palette[3].Hex(); got != "#ffffff" {
				t.Errorf("expected white, got %s", got)
			}
		})
	}
}

func TestMustHex_PanicsOnBadInput(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for a malformed color")
		}
	}()
	mustHex("blue")
}
