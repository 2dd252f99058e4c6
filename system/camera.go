package system

import "github.com/lixenwraith/star-sprite/vmath"

// FollowCamera returns the offset centering the viewport on playerX
// Rigid follow with no smoothing; clamped to [0, levelLen-viewportW]
func FollowCamera(playerX, viewportW, levelLen float64) float64 {
	maxX := levelLen - viewportW
	if maxX < 0 {
		maxX = 0
	}
	return vmath.Clamp(playerX-viewportW*0.5, 0, maxX)
}
