package engine

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/star-sprite/audio"
	"github.com/lixenwraith/star-sprite/config"
	"github.com/lixenwraith/star-sprite/input"
	"github.com/lixenwraith/star-sprite/render"
	"github.com/lixenwraith/star-sprite/status"
	"github.com/lixenwraith/star-sprite/system"
)

// Game is the menu, play, pause and win flow around one Session
// Not safe for concurrent use; the driver owns it
type Game struct {
	cfg     *config.Config
	log     *zap.Logger
	sound   SoundPlayer
	rng     *rand.Rand
	scene   *render.Scene
	metrics *metrics

	bounds system.Bounds
	patrol system.Patrol

	state   State
	session *Session
}

// NewGame creates a game at the menu
// nil log, sound, rng or reg are replaced by no-op, no-op, time-seeded and private instances
func NewGame(cfg *config.Config, log *zap.Logger, sound SoundPlayer, rng *rand.Rand, reg *status.Registry) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	if sound == nil {
		sound = nopSound{}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g := &Game{
		cfg:     cfg,
		log:     log,
		sound:   sound,
		rng:     rng,
		scene:   render.NewScene(cfg),
		metrics: newMetrics(reg),
		bounds: system.Bounds{
			FloorY: cfg.Level.FloorY,
			MinX:   cfg.Level.WallMargin,
			MaxX:   cfg.Level.Length - cfg.Level.WallMargin,
		},
		patrol: system.Patrol{
			Speed: cfg.Drifter.Speed,
			MinX:  cfg.Drifter.PatrolMargin,
			MaxX:  cfg.Level.Length - cfg.Drifter.PatrolMargin,
		},
		state: StateMenu,
	}
	g.session = NewSession(cfg, rng)
	g.metrics.state.Store(g.state.String())
	return g
}

// State returns the current flow state
func (g *Game) State() State {
	return g.state
}

// Session returns the current playthrough
func (g *Game) Session() *Session {
	return g.session
}

// Update advances the flow by one frame of dt seconds
func (g *Game) Update(snap *input.Snapshot, dt float64) {
	switch g.state {
	case StateMenu:
		if snap.JustPressed(input.ActionStart) {
			g.startSession()
			g.transition(StatePlaying)
		}

	case StatePlaying:
		if snap.JustPressed(input.ActionPause) {
			g.transition(StatePaused)
			return
		}
		g.stepPlaying(snap, dt)

	case StatePaused:
		// Unpausing resumes simulation in the same frame
		if snap.JustPressed(input.ActionPause) {
			g.transition(StatePlaying)
			g.stepPlaying(snap, dt)
		}

	case StateWin:
		if snap.JustPressed(input.ActionStart) {
			g.transition(StateMenu)
		}
	}
}

// Render draws the current state
func (g *Game) Render(c render.Canvas) {
	switch g.state {
	case StateMenu:
		g.scene.Menu(c)
	case StatePlaying:
		g.scene.Playing(c, g.session.World())
	case StatePaused:
		g.scene.Paused(c, g.session.World())
	case StateWin:
		g.scene.Win(c)
	}
}

func (g *Game) startSession() {
	g.session = NewSession(g.cfg, g.rng)
	g.metrics.sessions.Add(1)
	g.log.Info("session started",
		zap.Stringer("session", g.session.ID),
		zap.Int("drifters", len(g.session.Drifters)),
		zap.Int("titan_hp", g.session.Titan.HP),
	)
}

// stepPlaying runs player, drifters, titan and camera in that order
func (g *Game) stepPlaying(snap *input.Snapshot, dt float64) {
	s := g.session
	s.Elapsed += dt

	intent := system.PlayerIntent{
		Dir:          system.ResolveDir(snap.Down(input.ActionLeft), snap.Down(input.ActionRight)),
		BoostPressed: snap.JustPressed(input.ActionBoost),
		BoostHeld:    snap.Down(input.ActionBoost),
	}
	if system.StepPlayer(&s.Player, intent, g.bounds, dt) {
		g.sound.Play(audio.SoundBoost)
		g.metrics.boosts.Add(1)
	}

	playerRect := s.Player.Rect()
	for i := range s.Drifters {
		d := &s.Drifters[i]
		system.StepDrifter(d, g.patrol, dt)
		if system.TouchDrifter(d, playerRect) {
			s.Score++
			g.sound.Play(audio.SoundZap)
			g.metrics.drifters.Add(1)
			g.log.Debug("drifter defeated", zap.Int("slot", i), zap.Int("score", s.Score))
		}
	}

	system.StepTitan(&s.Titan, dt)
	if hit, defeated := system.TouchTitan(&s.Titan, playerRect); hit {
		g.sound.Play(audio.SoundZap)
		g.metrics.hits.Add(1)
		if defeated {
			g.metrics.wins.Add(1)
			g.log.Info("titan defeated",
				zap.Stringer("session", s.ID),
				zap.Int("score", s.Score),
				zap.Float64("elapsed", s.Elapsed),
			)
			g.transition(StateWin)
		}
	}

	s.Camera.X = system.FollowCamera(s.Player.X, float64(g.cfg.Display.Width), g.cfg.Level.Length)
}

func (g *Game) transition(to State) bool {
	from := g.state
	if !CanTransition(from, to) {
		g.log.Error("invalid state transition", zap.Stringer("from", from), zap.Stringer("to", to))
		return false
	}
	g.state = to
	g.metrics.state.Store(to.String())
	g.log.Info("state transition",
		zap.Stringer("from", from),
		zap.Stringer("to", to),
		zap.Stringer("session", g.session.ID),
	)
	return true
}
