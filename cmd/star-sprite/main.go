package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/lixenwraith/star-sprite/audio"
	"github.com/lixenwraith/star-sprite/config"
	"github.com/lixenwraith/star-sprite/engine"
	"github.com/lixenwraith/star-sprite/input"
	"github.com/lixenwraith/star-sprite/logger"
	"github.com/lixenwraith/star-sprite/render"
	"github.com/lixenwraith/star-sprite/status"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.MustLoad()
	log := openLogger(cfg.Log)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	crash := newCrashHandler(screen, log)
	defer func() {
		if r := recover(); r != nil {
			crash(r)
		}
	}()

	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(render.RGBToTcell(render.RGBBlack)))

	reg := status.NewRegistry()

	// Audio is optional: the game runs silent when no device is available
	sound := audio.NewSoundManager()
	if err := sound.Initialize(cfg.Audio); err != nil {
		log.Warn("audio unavailable, continuing without sound", zap.Error(err))
	}
	reg.Bools.Get("audio.enabled").Store(sound.Initialized())

	tracker := input.NewTracker(cfg.Input.InitialHold(), cfg.Input.RepeatHold())
	source := input.Listen(screen, tracker, crash)

	game := engine.NewGame(cfg, log, sound, nil, reg)
	canvas := render.NewTerminalCanvas(screen, cfg.Display.Width, cfg.Display.Height)
	driver := engine.NewDriver(game, canvas, source, engine.NewTimeProvider(), nil)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cols, rows := canvas.Grid()
	log.Info("starting",
		zap.String("title", cfg.Display.Title),
		zap.Int("fps", cfg.Display.FPS),
		zap.Int("cols", cols),
		zap.Int("rows", rows),
	)

	if err := driver.Run(ctx, cfg.Display.FPS); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("frame loop ended", zap.Error(err))
	}

	// Normal exit terminal cleanup
	screen.Fini()

	log.Info("exiting", reg.Fields()...)
	if err := multierr.Combine(sound.Close(), log.Sync()); err != nil {
		fmt.Fprintf(os.Stderr, "shutdown: %v\n", err)
	}
	return 0
}

// openLogger falls back to a no-op logger so logging can never stop the game
func openLogger(cfg config.Log) *zap.Logger {
	log, err := logger.New(cfg.Path, logger.ParseLevel(cfg.Level))
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging disabled: %v\n", err)
		return logger.Nop()
	}
	return log
}
