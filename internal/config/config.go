package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/diegok/flagpong/internal/game"
)

// Default values for configuration
const (
	DefaultDifficulty = "medium"
	DefaultPoints     = game.DefaultPoints
	DefaultFPS        = game.TickRate
	MaxFPS            = 240
)

// Config holds the application configuration
type Config struct {
	Difficulty  game.Difficulty
	PointsToWin int
	FPS         int
	Mute        bool
	LogFile     string
	Seed        int64
	AssetDir    string
}

// envConfig is the environment layer; flags override it
type envConfig struct {
	Difficulty string `env:"FLAGPONG_DIFFICULTY" envDefault:"medium"`
	Points     int    `env:"FLAGPONG_POINTS"     envDefault:"10"`
	FPS        int    `env:"FLAGPONG_FPS"        envDefault:"60"`
	Mute       bool   `env:"FLAGPONG_MUTE"`
	LogFile    string `env:"FLAGPONG_LOG"`
	Seed       int64  `env:"FLAGPONG_SEED"`
	AssetDir   string `env:"FLAGPONG_ASSETS"`
}

// ParseArgs reads the FLAGPONG_* environment, then parses command line
// arguments on top of it and returns a validated Config
func ParseArgs(args []string) (*Config, error) {
	var defaults envConfig
	if err := env.Parse(&defaults); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("flagpong", flag.ContinueOnError)

	difficulty := fs.String("difficulty", defaults.Difficulty, "difficulty ("+game.DifficultyNames()+")")
	points := fs.Int("points", defaults.Points, "points to win (>=1)")
	fps := fs.Int("fps", defaults.FPS, fmt.Sprintf("frames per second (1-%d)", MaxFPS))
	mute := fs.Bool("mute", defaults.Mute, "disable sound")
	logFile := fs.String("log", defaults.LogFile, "write logs to this file")
	seed := fs.Int64("seed", defaults.Seed, "random seed (0 = time based)")
	assetDir := fs.String("assets", defaults.AssetDir, "directory with obstacle.png, player.png and opponent.png")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Validate difficulty; an unknown name is never replaced by a default
	d, err := game.ParseDifficulty(*difficulty)
	if err != nil {
		return nil, err
	}

	// Validate points
	if *points < 1 {
		return nil, fmt.Errorf("points must be at least 1, got %d", *points)
	}

	// Validate frame rate
	if *fps < 1 || *fps > MaxFPS {
		return nil, fmt.Errorf("fps must be between 1 and %d, got %d", MaxFPS, *fps)
	}

	cfg := &Config{
		Difficulty:  d,
		PointsToWin: *points,
		FPS:         *fps,
		Mute:        *mute,
		LogFile:     *logFile,
		Seed:        *seed,
		AssetDir:    *assetDir,
	}

	return cfg, nil
}
