package vmath

// Rect is an integer axis-aligned box in canvas pixels
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// RectAround builds a box from a float center and half extents, truncating toward zero
// Matches pixel-snapped hitboxes: position is truncated, size is kept exact
func RectAround(cx, cy float64, halfW, halfH int) Rect {
	return Rect{
		X: int(cx - float64(halfW)),
		Y: int(cy - float64(halfH)),
		W: halfW * 2,
		H: halfH * 2,
	}
}

// Right returns the exclusive right edge
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the exclusive bottom edge
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects reports strict overlap; boxes sharing only an edge do not intersect
func (r Rect) Intersects(o Rect) bool {
	if r.W <= 0 || r.H <= 0 || o.W <= 0 || o.H <= 0 {
		return false
	}
	if r.X >= o.Right() || o.X >= r.Right() {
		return false
	}
	if r.Y >= o.Bottom() || o.Y >= r.Bottom() {
		return false
	}
	return true
}

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
