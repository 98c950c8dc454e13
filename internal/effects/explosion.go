// Package effects holds the short-lived visuals driven by simulation
// events: explosion particles and the quote popup.
package effects

import (
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/diegok/flagpong/internal/geom"
)

// Explosion burst shape
const (
	FlashRadius = 30.0
	FlashAlpha  = 0.8
	FlashDecay  = 0.2

	SparkCount      = 20
	SparkAlpha      = 1.0
	EmberCount      = 5
	EmberAlpha      = 0.9
	BurstSize       = 1 + SparkCount + EmberCount
	minSparkSpeed   = 2.0
	sparkSpeedRange = 4.0
	minSparkRadius  = 2.0
	sparkRadiusSpan = 6.0
	minSparkDecay   = 0.01
	sparkDecaySpan  = 0.02
	minEmberSpeed   = 1.0
	emberSpeedRange = 2.0
	minEmberRadius  = 6.0
	emberRadiusSpan = 8.0
	minEmberDecay   = 0.005
	emberDecaySpan  = 0.01
)

// mustHex parses a #rrggbb color literal
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Palette is the set of colors a burst picks its particles from
type Palette []colorful.Color

// Palettes for bursts credited to each side of the table
var (
	PlayerPalette = Palette{
		mustHex("#3498DB"),
		mustHex("#2980B9"),
		mustHex("#1ABC9C"),
		mustHex("#FFFFFF"),
		mustHex("#85C1E9"),
		mustHex("#5DADE2"),
	}
	OpponentPalette = Palette{
		mustHex("#E74C3C"),
		mustHex("#C0392B"),
		mustHex("#F39C12"),
		mustHex("#FFFFFF"),
		mustHex("#F5B041"),
		mustHex("#EC7063"),
	}
	White = colorful.Color{R: 1, G: 1, B: 1}
)

// Particle is one piece of an explosion. Alpha doubles as its remaining life.
type Particle struct {
	Pos    geom.Vec
	Vel    geom.Vec
	Radius float64
	Color  colorful.Color
	Alpha  float64
	Decay  float64
	Flash  bool
}

// Explosions is the live particle list. It grows with every burst and
// shrinks as particles fade out.
type Explosions struct {
	Particles []Particle
	rng       *rand.Rand
}

// NewExplosions creates an empty particle list drawing randomness from rng
func NewExplosions(rng *rand.Rand) *Explosions {
	return &Explosions{rng: rng}
}

// Spawn adds a burst at pos: one flash, a spray of small fast sparks and a
// few large slow embers, colored from palette.
func (e *Explosions) Spawn(pos geom.Vec, palette Palette) {
	e.Particles = append(e.Particles, Particle{
		Pos:    pos,
		Radius: FlashRadius,
		Color:  White,
		Alpha:  FlashAlpha,
		Decay:  FlashDecay,
		Flash:  true,
	})

	for i := 0; i < SparkCount; i++ {
		e.Particles = append(e.Particles, e.particle(pos, palette,
			minSparkSpeed+e.rng.Float64()*sparkSpeedRange,
			minSparkRadius+e.rng.Float64()*sparkRadiusSpan,
			minSparkDecay+e.rng.Float64()*sparkDecaySpan,
			SparkAlpha))
	}

	for i := 0; i < EmberCount; i++ {
		e.Particles = append(e.Particles, e.particle(pos, palette,
			minEmberSpeed+e.rng.Float64()*emberSpeedRange,
			minEmberRadius+e.rng.Float64()*emberRadiusSpan,
			minEmberDecay+e.rng.Float64()*emberDecaySpan,
			EmberAlpha))
	}
}

func (e *Explosions) particle(pos geom.Vec, palette Palette, speed, radius, decay, alpha float64) Particle {
	angle := e.rng.Float64() * 2 * math.Pi
	color := White
	if len(palette) > 0 {
		color = palette[e.rng.Intn(len(palette))]
	}
	return Particle{
		Pos:    pos,
		Vel:    geom.Vec{X: math.Cos(angle), Y: math.Sin(angle)}.Scale(speed),
		Radius: radius,
		Color:  color,
		Alpha:  alpha,
		Decay:  decay,
	}
}

// Update ages every particle by one tick and drops the ones that faded out
func (e *Explosions) Update() {
	live := e.Particles[:0]
	for _, p := range e.Particles {
		p.Pos = p.Pos.Add(p.Vel)
		p.Alpha -= p.Decay
		if p.Alpha <= 0 {
			continue
		}
		live = append(live, p)
	}
	// Clear the tail so dropped particles don't linger in the backing array
	for i := len(live); i < len(e.Particles); i++ {
		e.Particles[i] = Particle{}
	}
	e.Particles = live
}

// Len returns the number of live particles
func (e *Explosions) Len() int {
	return len(e.Particles)
}

// Clear removes every particle
func (e *Explosions) Clear() {
	e.Particles = e.Particles[:0]
}
