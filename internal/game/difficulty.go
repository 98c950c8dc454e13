package game

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDifficulty is returned for names outside the fixed profile set
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Difficulty tunes the opponent and the ball
type Difficulty struct {
	Name               string
	ComputerSpeed      float64 // opponent paddle step per tick
	BallSpeed          float64 // scalar speed at every serve
	BallSpeedIncrement float64 // added on every paddle hit
}

var (
	Easy   = Difficulty{Name: "easy", ComputerSpeed: 3, BallSpeed: 5, BallSpeedIncrement: 0.2}
	Medium = Difficulty{Name: "medium", ComputerSpeed: 5, BallSpeed: 7, BallSpeedIncrement: 0.3}
	Hard   = Difficulty{Name: "hard", ComputerSpeed: 7, BallSpeed: 9, BallSpeedIncrement: 0.4}

	// Difficulties lists every profile in menu order
	Difficulties = []Difficulty{Easy, Medium, Hard}
)

// ParseDifficulty looks up a profile by name
func ParseDifficulty(name string) (Difficulty, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, d := range Difficulties {
		if d.Name == key {
			return d, nil
		}
	}
	return Difficulty{}, fmt.Errorf("%w %q (want one of %s)", ErrUnknownDifficulty, name, DifficultyNames())
}

// DifficultyNames returns the valid names joined for help text
func DifficultyNames() string {
	names := make([]string, len(Difficulties))
	for i, d := range Difficulties {
		names[i] = d.Name
	}
	return strings.Join(names, "|")
}
