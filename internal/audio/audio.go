package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/diegok/flagpong/internal/game"
)

const (
	sampleRate = beep.SampleRate(44100)
)

var (
	initialized bool
)

// Init initializes the audio system
func Init() error {
	if initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Second/30))
	if err != nil {
		return err
	}

	initialized = true
	return nil
}

// Close shuts down the audio system
func Close() {
	if initialized {
		speaker.Close()
		initialized = false
	}
}

// Play plays the effect for s. Without an initialized speaker it does nothing.
func Play(s game.Sound) {
	if !initialized {
		return
	}
	if st := Effect(s); st != nil {
		speaker.Play(st)
	}
}

// Sink plays game sounds on the speaker
type Sink struct{}

func (Sink) Play(s game.Sound) {
	Play(s)
}

// Effect builds a fresh streamer for s
func Effect(s game.Sound) beep.Streamer {
	switch s {
	case game.SoundPaddleHit:
		return paddleHit.streamer()
	case game.SoundWallHit:
		return wallHit.streamer()
	case game.SoundScore:
		return score.streamer()
	case game.SoundExplosion:
		// Low rumble with a crack layered 50ms in
		return beep.Take(sampleRate.N(rumble.duration), beep.Mix(
			rumble.streamer(),
			beep.Seq(beep.Silence(sampleRate.N(50*time.Millisecond)), crack.streamer()),
		))
	}
	return nil
}

// Oscillator shapes over one period, phase in [0,1)
func sine(p float64) float64 { return math.Sin(2 * math.Pi * p) }

func square(p float64) float64 {
	if p < 0.5 {
		return 1
	}
	return -1
}

func triangle(p float64) float64 {
	return 1 - 4*math.Abs(p-0.5)
}

func sawtooth(p float64) float64 {
	return 2*p - 1
}

// voice is one oscillator with exponential frequency and gain ramps
type voice struct {
	wave      func(float64) float64
	freqStart float64
	freqEnd   float64
	gainStart float64
	gainEnd   float64
	duration  time.Duration
}

var (
	paddleHit = voice{wave: square, freqStart: 500, freqEnd: 500, gainStart: 0.1, gainEnd: 0.1, duration: 100 * time.Millisecond}
	wallHit   = voice{wave: sine, freqStart: 300, freqEnd: 300, gainStart: 0.05, gainEnd: 0.05, duration: 50 * time.Millisecond}
	score     = voice{wave: triangle, freqStart: 800, freqEnd: 200, gainStart: 0.1, gainEnd: 0.1, duration: 300 * time.Millisecond}
	rumble    = voice{wave: sawtooth, freqStart: 100, freqEnd: 20, gainStart: 0.2, gainEnd: 0.01, duration: 200 * time.Millisecond}
	crack     = voice{wave: square, freqStart: 300, freqEnd: 50, gainStart: 0.1, gainEnd: 0.01, duration: 100 * time.Millisecond}
)

func (v voice) streamer() beep.Streamer {
	numSamples := sampleRate.N(v.duration)
	i := 0
	phase := 0.0

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for j := range samples {
			if i >= numSamples {
				return j, j > 0
			}
			t := float64(i) / float64(numSamples)
			val := v.wave(phase) * ramp(v.gainStart, v.gainEnd, t)
			samples[j][0] = val
			samples[j][1] = val

			phase += ramp(v.freqStart, v.freqEnd, t) / float64(sampleRate)
			phase -= math.Floor(phase)
			i++
		}
		return len(samples), true
	})
}

// ramp moves exponentially from a to b as t goes from 0 to 1
func ramp(a, b, t float64) float64 {
	if a == b || a <= 0 || b <= 0 {
		return a + (b-a)*t
	}
	return a * math.Pow(b/a, t)
}
