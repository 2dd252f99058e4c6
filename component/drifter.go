package component

import "github.com/lixenwraith/star-sprite/vmath"

// Drifter is a NebulaDrifter patrol enemy
// Dead drifters stay in their slot, inert and hidden
type Drifter struct {
	X, Y     float64
	Dir      int // -1 or +1
	HalfSize int
	Dead     bool
}

// NewDrifter creates a live drifter on the floor
func NewDrifter(x, floorY float64, dir, halfSize int) Drifter {
	if dir >= 0 {
		dir = 1
	} else {
		dir = -1
	}
	return Drifter{
		X:        x,
		Y:        floorY,
		Dir:      dir,
		HalfSize: halfSize,
	}
}

// Rect returns the collision square
func (d *Drifter) Rect() vmath.Rect {
	return vmath.RectAround(d.X, d.Y, d.HalfSize, d.HalfSize)
}
