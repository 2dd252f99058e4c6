package system

import (
	"github.com/lixenwraith/star-sprite/component"
)

// Bounds is the playfield the player is confined to
type Bounds struct {
	FloorY float64
	MinX   float64
	MaxX   float64
}

// PlayerIntent is the player's input for one frame
type PlayerIntent struct {
	Dir          int  // -1 left, 0 none, +1 right
	BoostPressed bool // Rising edge this frame
	BoostHeld    bool
}

// ResolveDir collapses left/right holds into a direction; opposing holds cancel
func ResolveDir(left, right bool) int {
	switch {
	case left && !right:
		return -1
	case right && !left:
		return 1
	default:
		return 0
	}
}

// StepPlayer advances the player by dt seconds and reports whether a boost fired
// Order matters: timers before the boost check, gravity from the pre-integration velocity sign
func StepPlayer(p *component.Player, in PlayerIntent, b Bounds, dt float64) (boosted bool) {
	tn := &p.Tuning

	// Horizontal acceleration or friction
	if in.Dir != 0 {
		p.VX += float64(in.Dir) * tn.Accel * dt
	} else {
		decay := 1 - tn.Friction*dt
		if decay < 0 {
			decay = 0
		}
		p.VX *= decay
	}

	if p.VX > tn.MaxSpeed {
		p.VX = tn.MaxSpeed
	} else if p.VX < -tn.MaxSpeed {
		p.VX = -tn.MaxSpeed
	}

	// Coyote window refills while grounded
	if p.OnGround {
		p.CoyoteT = tn.CoyoteMax
	} else {
		p.CoyoteT -= dt
	}

	// Buffer window refills on a fresh press
	if in.BoostPressed {
		p.BufferT = tn.BufferMax
	} else {
		p.BufferT -= dt
	}

	if p.BufferT > 0 && p.CoyoteT > 0 {
		Boost(p)
		boosted = true
	}

	g := tn.Gravity
	if p.VY > 0 {
		g *= tn.FallMultiplier
	} else if p.VY < 0 && !in.BoostHeld {
		g *= tn.LowMultiplier
	}
	p.VY += g * dt

	p.X += p.VX * dt
	p.Y += p.VY * dt

	if p.Y >= b.FloorY {
		p.Y = b.FloorY
		p.VY = 0
		p.OnGround = true
	} else {
		p.OnGround = false
	}

	// Hard stop at walls
	if p.X < b.MinX {
		p.X = b.MinX
		p.VX = 0
	}
	if p.X > b.MaxX {
		p.X = b.MaxX
		p.VX = 0
	}

	return boosted
}

// Boost applies the jump impulse and consumes both grace windows so the press cannot retrigger
func Boost(p *component.Player) {
	p.VY = p.Tuning.BoostVelocity
	p.OnGround = false
	p.CoyoteT = 0
	p.BufferT = 0
}
