package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/diegok/flagpong/internal/game"
)

func TestParseArgs_Defaults(t *testing.T) {
	cfg, err := ParseArgs(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Difficulty != game.Medium {
		t.Errorf("expected medium, got %s", cfg.Difficulty.Name)
	}
	if cfg.PointsToWin != DefaultPoints {
		t.Errorf("expected points %d, got %d", DefaultPoints, cfg.PointsToWin)
	}
	if cfg.FPS != DefaultFPS {
		t.Errorf("expected fps %d, got %d", DefaultFPS, cfg.FPS)
	}
	if cfg.Mute {
		t.Error("expected sound on")
	}
	if cfg.LogFile != "" || cfg.AssetDir != "" || cfg.Seed != 0 {
		t.Errorf("expected empty optional settings, got %+v", cfg)
	}
}

func TestParseArgs_CustomOptions(t *testing.T) {
	args := []string{"--difficulty", "hard", "--points", "21", "--fps", "30", "--mute",
		"--log", "/tmp/flagpong.log", "--seed", "42", "--assets", "/tmp/art"}
	cfg, err := ParseArgs(args)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Difficulty != game.Hard {
		t.Errorf("expected hard, got %s", cfg.Difficulty.Name)
	}
	if cfg.PointsToWin != 21 {
		t.Errorf("expected points 21, got %d", cfg.PointsToWin)
	}
	if cfg.FPS != 30 {
		t.Errorf("expected fps 30, got %d", cfg.FPS)
	}
	if !cfg.Mute {
		t.Error("expected mute")
	}
	if cfg.LogFile != "/tmp/flagpong.log" {
		t.Errorf("expected log file '/tmp/flagpong.log', got '%s'", cfg.LogFile)
	}
	if cfg.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Seed)
	}
	if cfg.AssetDir != "/tmp/art" {
		t.Errorf("expected asset dir '/tmp/art', got '%s'", cfg.AssetDir)
	}
}

func TestParseArgs_Environment(t *testing.T) {
	t.Setenv("FLAGPONG_DIFFICULTY", "easy")
	t.Setenv("FLAGPONG_POINTS", "5")
	t.Setenv("FLAGPONG_MUTE", "true")

	cfg, err := ParseArgs(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Difficulty != game.Easy {
		t.Errorf("expected easy, got %s", cfg.Difficulty.Name)
	}
	if cfg.PointsToWin != 5 {
		t.Errorf("expected points 5, got %d", cfg.PointsToWin)
	}
	if !cfg.Mute {
		t.Error("expected mute from the environment")
	}
}

func TestParseArgs_FlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("FLAGPONG_DIFFICULTY", "easy")
	t.Setenv("FLAGPONG_POINTS", "5")

	cfg, err := ParseArgs([]string{"--difficulty", "hard"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Difficulty != game.Hard {
		t.Errorf("expected the flag to win, got %s", cfg.Difficulty.Name)
	}
	if cfg.PointsToWin != 5 {
		t.Errorf("expected points 5 from the environment, got %d", cfg.PointsToWin)
	}
}

func TestParseArgs_BadEnvironment(t *testing.T) {
	t.Setenv("FLAGPONG_POINTS", "lots")

	_, err := ParseArgs(nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Errorf("expected parse env prefix, got %v", err)
	}
}

func TestParseArgs_UnknownDifficulty(t *testing.T) {
	_, err := ParseArgs([]string{"--difficulty", "insane"})
	if !errors.Is(err, game.ErrUnknownDifficulty) {
		t.Errorf("expected ErrUnknownDifficulty, got %v", err)
	}

	t.Setenv("FLAGPONG_DIFFICULTY", "impossible")
	if _, err := ParseArgs(nil); !errors.Is(err, game.ErrUnknownDifficulty) {
		t.Errorf("expected ErrUnknownDifficulty from the environment, got %v", err)
	}
}

func TestParseArgs_InvalidPointsZero(t *testing.T) {
	args := []string{"--points", "0"}
	_, err := ParseArgs(args)
	if err == nil {
		t.Error("expected error for points 0")
	}
}

func TestParseArgs_InvalidPointsNegative(t *testing.T) {
	args := []string{"--points", "-5"}
	_, err := ParseArgs(args)
	if err == nil {
		t.Error("expected error for negative points")
	}
}

func TestParseArgs_FPSBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		fps     string
		wantErr bool
	}{
		{"zero", "0", true},
		{"minimum", "1", false},
		{"maximum", "240", false},
		{"too high", "241", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseArgs([]string{"--fps", tt.fps})
			if (err != nil) != tt.wantErr {
				t.Errorf("fps %s: expected error=%v, got %v", tt.fps, tt.wantErr, err)
			}
		})
	}
}

func TestParseArgs_UnknownFlag(t *testing.T) {
	if _, err := ParseArgs([]string{"--server"}); err == nil {
		t.Error("expected error for an unknown flag")
	}
}

func TestDefaultConstants(t *testing.T) {
	if DefaultPoints != 10 {
		t.Errorf("expected DefaultPoints 10, got %d", DefaultPoints)
	}
	if DefaultFPS != 60 {
		t.Errorf("expected DefaultFPS 60, got %d", DefaultFPS)
	}
}
