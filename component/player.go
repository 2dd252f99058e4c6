package component

import (
	"github.com/lixenwraith/star-sprite/config"
	"github.com/lixenwraith/star-sprite/vmath"
)

// PlayerTuning holds the movement constants carried by a player
type PlayerTuning struct {
	MaxSpeed       float64 // px/s
	Accel          float64 // px/s^2 while a direction is held
	Friction       float64 // proportional decay per second without input
	Gravity        float64
	BoostVelocity  float64 // Negative, upward
	FallMultiplier float64
	LowMultiplier  float64
	CoyoteMax      float64 // Seconds after leaving ground a boost still works
	BufferMax      float64 // Seconds a boost press is remembered before landing
}

// TuningFromConfig converts decoded tuning into seconds-based constants
func TuningFromConfig(p config.Player) PlayerTuning {
	return PlayerTuning{
		MaxSpeed:       p.MaxSpeed,
		Accel:          p.Accel,
		Friction:       p.Friction,
		Gravity:        p.Gravity,
		BoostVelocity:  p.BoostVelocity,
		FallMultiplier: p.FallMultiplier,
		LowMultiplier:  p.LowMultiplier,
		CoyoteMax:      p.CoyoteMax(),
		BufferMax:      p.BufferMax(),
	}
}

// Player is the StarSprite physics body
type Player struct {
	X, Y     float64
	VX, VY   float64
	Radius   int
	OnGround bool

	// Timers may go negative; only positivity matters
	CoyoteT float64
	BufferT float64

	Tuning PlayerTuning
}

// NewPlayer creates a grounded player at the spawn point
func NewPlayer(cfg *config.Config) Player {
	return Player{
		X:        cfg.Player.SpawnX,
		Y:        cfg.Level.FloorY,
		Radius:   cfg.Player.Radius,
		OnGround: true,
		Tuning:   TuningFromConfig(cfg.Player),
	}
}

// Rect returns the collision square
func (p *Player) Rect() vmath.Rect {
	return vmath.RectAround(p.X, p.Y, p.Radius, p.Radius)
}
