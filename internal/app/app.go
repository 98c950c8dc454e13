package app

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/diegok/flagpong/internal/assets"
	"github.com/diegok/flagpong/internal/audio"
	"github.com/diegok/flagpong/internal/config"
	"github.com/diegok/flagpong/internal/engine"
	"github.com/diegok/flagpong/internal/game"
	"github.com/diegok/flagpong/internal/ui"
)

// KeyStep is how far one arrow key press moves the paddle, in table units
const KeyStep = 25.0

// App is the main application controller that manages the game lifecycle.
type App struct {
	cfg      *config.Config
	screen   *ui.Screen
	renderer *ui.Renderer
	textures *assets.Set
	engine   *engine.Engine
	frames   *frameScheduler
	logger   *log.Logger
	logFile  *os.File

	// ready is set once every texture has loaded; input waits for it
	ready   bool
	loadErr chan error

	quit    chan struct{}
	sigChan chan os.Signal

	// done closes when the main loop returns
	done     chan struct{}
	doneOnce sync.Once
	// polled closes when the event poller exits
	polled chan struct{}
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config) *App {
	return &App{
		cfg:     cfg,
		loadErr: make(chan error, 1),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
		polled:  make(chan struct{}),
	}
}

// Run is the main entry point for the application.
// It initializes logging, audio and the screen, then runs the game.
func (a *App) Run() error {
	logger, err := a.openLog()
	if err != nil {
		return err
	}
	a.logger = logger

	// Game works without sound
	if !a.cfg.Mute {
		if err := audio.Init(); err != nil {
			a.logger.Warn("audio unavailable", "err", err)
		}
	}

	// Initialize screen
	screen, err := ui.InitScreen()
	if err != nil {
		a.cleanup()
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	a.setup(screen)

	// Setup signal handling
	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-a.sigChan:
			close(a.quit)
		case <-a.done:
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		if err := a.textures.Load(ctx, a.cfg.AssetDir); err != nil {
			a.loadErr <- err
		}
	}()

	a.logger.Info("starting", "difficulty", a.cfg.Difficulty.Name,
		"points", a.cfg.PointsToWin, "fps", a.cfg.FPS, "mute", a.cfg.Mute)

	runErr := a.mainLoop()

	// Cleanup
	a.cleanup()

	return runErr
}

// openLog returns a logger writing to the configured file, or discarding
// everything. The terminal belongs to the game.
func (a *App) openLog() (*log.Logger, error) {
	if a.cfg.LogFile == "" {
		return log.New(io.Discard), nil
	}

	f, err := os.OpenFile(a.cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	a.logFile = f

	return log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "flagpong",
		Level:           log.DebugLevel,
	}), nil
}

// setup wires the game, the engine and its collaborators onto screen
func (a *App) setup(screen *ui.Screen) {
	if a.logger == nil {
		a.logger = log.New(io.Discard)
	}

	a.screen = screen
	a.textures = assets.NewSet()
	a.renderer = ui.NewRenderer(screen, a.textures)
	a.frames = newFrameScheduler(time.Second / time.Duration(a.cfg.FPS))

	seed := a.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	gs := game.NewGameState(game.Options{
		Width:        game.TableWidth,
		Height:       game.TableHeight,
		PointsToWin:  a.cfg.PointsToWin,
		Difficulty:   a.cfg.Difficulty,
		TickDuration: time.Second / time.Duration(a.cfg.FPS),
		Rand:         rand.New(rand.NewSource(seed)),
	})

	a.engine = engine.New(gs, a.frames, a.renderer, audio.Sink{}, a.logger.With("component", "engine"))
}

// mainLoop is the main event loop that handles input, texture loading and
// the frame ticks.
func (a *App) mainLoop() error {
	defer a.doneOnce.Do(func() { close(a.done) })

	// Create event channel for screen events
	events := make(chan tcell.Event)
	go func() {
		defer close(a.polled)
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			case <-a.done:
				return
			}
		}
	}()

	a.renderer.RenderLoading()
	loaded := a.textures.Loaded()

	for {
		select {
		case <-a.quit:
			return nil

		case ev := <-events:
			if a.handleEvent(ev) {
				return nil
			}

		case <-loaded:
			// Initial draw waits for every texture
			loaded = nil
			a.ready = a.textures.AllReady()
			if !a.ready {
				return fmt.Errorf("textures reported loaded before all were ready")
			}
			a.logger.Info("textures ready")
			a.engine.Render()

		case err := <-a.loadErr:
			return fmt.Errorf("failed to load textures: %w", err)

		case <-a.frames.C():
			a.frames.fire()
		}
	}
}

// handleEvent processes keyboard, mouse and resize events.
// Returns true if the application should quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		// Quit keys always work
		if ui.IsQuitKey(ev.Key(), ev.Rune()) {
			return true
		}
		if a.ready {
			a.handleGameKey(ev)
		}

	case *tcell.EventMouse:
		if a.ready {
			gs := a.engine.Game()
			a.engine.MovePlayer(ui.PointerY(ev, a.renderer.Viewport(gs.Width, gs.Height)))
		}

	case *tcell.EventResize:
		// Handle resize by updating screen
		a.screen.Clear()
		if a.ready {
			a.engine.Render()
		} else {
			a.renderer.RenderLoading()
		}
	}

	return false
}

// handleGameKey maps keys onto engine commands
func (a *App) handleGameKey(ev *tcell.EventKey) {
	key, r := ev.Key(), ev.Rune()

	switch {
	case ui.IsToggleKey(key, r):
		a.engine.Toggle()
	case ui.IsResetKey(key, r):
		a.engine.Reset()
	default:
		if name, ok := ui.KeyToDifficulty(key, r); ok {
			if err := a.engine.SetDifficulty(name); err != nil {
				a.logger.Error("difficulty", "err", err)
			}
			return
		}

		center := a.engine.Game().Player.CenterY()
		switch ui.KeyToDirection(key, r) {
		case ui.DirUp:
			a.engine.MovePlayer(center - KeyStep)
		case ui.DirDown:
			a.engine.MovePlayer(center + KeyStep)
		}
	}
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	// Stop ticking
	if a.frames != nil {
		a.frames.Stop()
	}

	// Close audio
	audio.Close()

	// Finalize screen
	if a.screen != nil {
		a.screen.Fini()
	}

	// Stop signal handling
	if a.sigChan != nil {
		signal.Stop(a.sigChan)
	}

	if a.logFile != nil {
		a.logger.Info("stopped")
		a.logFile.Close()
	}
}
