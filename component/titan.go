package component

import "github.com/lixenwraith/star-sprite/vmath"

// Titan is the stationary CosmoTitan boss
type Titan struct {
	X, Y      float64
	HP        int
	MaxHP     int
	Width     int
	Height    int
	TopOffset int // Body top is Y - TopOffset

	// Timer accumulates play time, reserved for attack patterns
	Timer float64
}

// NewTitan creates a boss at full health
func NewTitan(x, y float64, hp, width, height, topOffset int) Titan {
	return Titan{
		X:         x,
		Y:         y,
		HP:        hp,
		MaxHP:     hp,
		Width:     width,
		Height:    height,
		TopOffset: topOffset,
	}
}

// Rect returns the body box
func (t *Titan) Rect() vmath.Rect {
	return vmath.Rect{
		X: int(t.X - float64(t.Width)/2),
		Y: int(t.Y - float64(t.TopOffset)),
		W: t.Width,
		H: t.Height,
	}
}

// Defeated reports whether hp reached zero
func (t *Titan) Defeated() bool {
	return t.HP <= 0
}
