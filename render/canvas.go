// Package render draws the game onto a fixed-size logical canvas
// All coordinates are logical pixels; the canvas knows nothing of the camera
package render

// Canvas accepts primitive draw calls for one frame
type Canvas interface {
	// Size returns the logical canvas size
	Size() (width, height int)
	Clear(c RGB)
	FillRect(x, y, w, h int, c RGB)
	FillCircle(cx, cy, r int, c RGB)
	// Text draws s with its top-left corner at x, y
	Text(x, y int, s string, c RGB)
	// TextWidth returns the logical width s would occupy
	TextWidth(s string) int
	Present()
}
