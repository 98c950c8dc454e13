package main

import (
	"fmt"
	"os"

	"github.com/diegok/flagpong/internal/app"
	"github.com/diegok/flagpong/internal/config"
	"github.com/diegok/flagpong/internal/game"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	application := app.NewApp(cfg)
	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  flagpong [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintf(os.Stderr, "  --difficulty <name>  %s (default: %s)\n", game.DifficultyNames(), config.DefaultDifficulty)
	fmt.Fprintf(os.Stderr, "  --points <n>         Points to win (default: %d)\n", config.DefaultPoints)
	fmt.Fprintf(os.Stderr, "  --fps <n>            Frames per second, 1-%d (default: %d)\n", config.MaxFPS, config.DefaultFPS)
	fmt.Fprintln(os.Stderr, "  --mute               Disable sound")
	fmt.Fprintln(os.Stderr, "  --log <file>         Write logs to a file")
	fmt.Fprintln(os.Stderr, "  --seed <n>           Random seed (default: time based)")
	fmt.Fprintln(os.Stderr, "  --assets <dir>       Load obstacle.png, player.png and opponent.png from dir")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Every option can also be set with FLAGPONG_<NAME>, e.g. FLAGPONG_DIFFICULTY=hard.")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Controls:")
	fmt.Fprintln(os.Stderr, "  SPACE/ENTER  start, pause, resume")
	fmt.Fprintln(os.Stderr, "  UP/DOWN W/S  move paddle (or use the mouse)")
	fmt.Fprintln(os.Stderr, "  1 2 3        easy, medium, hard")
	fmt.Fprintln(os.Stderr, "  R            reset match")
	fmt.Fprintln(os.Stderr, "  Q/ESC        quit")
}
