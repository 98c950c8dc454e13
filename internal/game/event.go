package game

import "github.com/diegok/flagpong/internal/geom"

// EventKind identifies what happened during a tick
type EventKind int

const (
	EventWallHit EventKind = iota
	EventObstacleHit
	EventPaddleHit
	EventPoint
)

func (k EventKind) String() string {
	switch k {
	case EventWallHit:
		return "wall-hit"
	case EventObstacleHit:
		return "obstacle-hit"
	case EventPaddleHit:
		return "paddle-hit"
	case EventPoint:
		return "point"
	}
	return "unknown"
}

// Event is one thing the simulation reports back from a tick. Side is the
// paddle that was hit, or the side that won the point.
type Event struct {
	Kind EventKind
	Pos  geom.Vec
	Side Side
}

// Sound is a named sound effect with no payload
type Sound int

const (
	SoundPaddleHit Sound = iota
	SoundWallHit
	SoundScore
	SoundExplosion
)

func (s Sound) String() string {
	switch s {
	case SoundPaddleHit:
		return "paddle-hit"
	case SoundWallHit:
		return "wall-hit"
	case SoundScore:
		return "score"
	case SoundExplosion:
		return "explosion"
	}
	return "unknown"
}

// Sounds returns the effects to play for the event, in order
func (e Event) Sounds() []Sound {
	switch e.Kind {
	case EventWallHit:
		return []Sound{SoundWallHit}
	case EventObstacleHit:
		return []Sound{SoundExplosion}
	case EventPaddleHit:
		return []Sound{SoundPaddleHit, SoundExplosion}
	case EventPoint:
		return []Sound{SoundScore}
	}
	return nil
}
