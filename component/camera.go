package component

// Camera is the horizontal scroll offset of the viewport in world pixels
type Camera struct {
	X float64
}

// ToScreen converts a world x to canvas x
func (c Camera) ToScreen(worldX float64) float64 {
	return worldX - c.X
}
