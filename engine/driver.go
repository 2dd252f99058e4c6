package engine

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/star-sprite/input"
	"github.com/lixenwraith/star-sprite/render"
)

// KeySource supplies the raw key state once per frame
type KeySource interface {
	Capture(now time.Time) input.KeyState
	Closed() bool
}

// Driver runs one frame at a time: measure dt, snapshot input, update, render, present
// Step serves hosts with their own frame callback; Run is the native blocking loop
type Driver struct {
	game   *Game
	canvas render.Canvas
	source KeySource
	clock  Clock
	log    *zap.Logger

	snap    input.Snapshot
	last    time.Time
	started bool
	stopped bool
}

// NewDriver wires a game to its collaborators; nil bindings selects the defaults
func NewDriver(game *Game, canvas render.Canvas, source KeySource, clock Clock, bindings *input.Bindings) *Driver {
	return &Driver{
		game:   game,
		canvas: canvas,
		source: source,
		clock:  clock,
		log:    game.log,
		snap:   input.NewSnapshot(bindings),
	}
}

// Step runs a single frame and reports whether the game should keep running
// dt is the measured wall time since the previous frame, unclamped; the first frame has dt 0
func (d *Driver) Step() bool {
	if d.stopped {
		return false
	}

	now := d.clock.Now()
	dt := 0.0
	if d.started {
		dt = now.Sub(d.last).Seconds()
	}
	d.last = now
	d.started = true

	d.snap = d.snap.Next(d.source.Capture(now))

	if d.source.Closed() {
		d.stop("input closed")
		return false
	}
	if d.snap.Down(input.ActionQuit) {
		d.stop("quit")
		return false
	}

	d.game.Update(&d.snap, dt)
	d.game.Render(d.canvas)
	d.canvas.Present()
	d.game.metrics.frame(dt)
	return true
}

func (d *Driver) stop(reason string) {
	d.stopped = true
	d.log.Info("stopping", zap.String("reason", reason), zap.Stringer("state", d.game.State()))
}

// Run steps at fps until quit or ctx is cancelled
func (d *Driver) Run(ctx context.Context, fps int) error {
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		if !d.Step() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
