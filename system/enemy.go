package system

import (
	"github.com/lixenwraith/star-sprite/component"
	"github.com/lixenwraith/star-sprite/vmath"
)

// Patrol is the x band a drifter turns around at
type Patrol struct {
	Speed float64
	MinX  float64
	MaxX  float64
}

// StepDrifter moves a live drifter and reverses it once outside the patrol band
// Reversal is instant; overshooting the band by up to one frame of movement is expected
func StepDrifter(d *component.Drifter, p Patrol, dt float64) {
	if d.Dead {
		return
	}
	d.X += float64(d.Dir) * p.Speed * dt
	if d.X < p.MinX || d.X > p.MaxX {
		d.Dir = -d.Dir
	}
}

// TouchDrifter kills a live drifter overlapping the player, reporting whether it happened
func TouchDrifter(d *component.Drifter, player vmath.Rect) bool {
	if d.Dead || !d.Rect().Intersects(player) {
		return false
	}
	d.Dead = true
	return true
}

// StepTitan ticks the boss timer
func StepTitan(t *component.Titan, dt float64) {
	t.Timer += dt
}

// TouchTitan drains one hp for every frame the player overlaps a living titan
// Sustained contact drains once per frame, not once per contact
func TouchTitan(t *component.Titan, player vmath.Rect) (hit, defeated bool) {
	if t.HP <= 0 || !t.Rect().Intersects(player) {
		return false, false
	}
	t.HP--
	return true, t.HP <= 0
}
