package render

import (
	"fmt"

	"github.com/lixenwraith/star-sprite/component"
	"github.com/lixenwraith/star-sprite/config"
)

const (
	starSpacing  = 140
	starY        = 60
	starRadius   = 10
	starParallax = 0.5

	drifterCull = 40
	titanCull   = 120

	menuHint  = "Press ENTER to start  (WASD/Arrows to move, Z/Space to boost)"
	pauseText = "Paused (P)"
	winText   = "You defeated the boss! Press ENTER for menu"
	sector    = "Sector 1 - Astral Fields"
)

// World is the read-only session state a frame is drawn from
type World struct {
	Player   *component.Player
	Drifters []component.Drifter
	Titan    *component.Titan
	Camera   component.Camera
	Score    int
}

// Scene draws each game screen onto a Canvas
type Scene struct {
	title  string
	width  int
	height int
	floorY int
}

// NewScene creates a scene for the configured canvas and level
func NewScene(cfg *config.Config) *Scene {
	return &Scene{
		title:  cfg.Display.Title,
		width:  cfg.Display.Width,
		height: cfg.Display.Height,
		floorY: int(cfg.Level.FloorY),
	}
}

// Menu draws the title screen
func (s *Scene) Menu(c Canvas) {
	c.Clear(RGBMenuBg)
	s.centered(c, s.title, 150, RGBMenuTitle)
	s.centered(c, menuHint, 200, RGBWhite)
}

// Playing draws the world and the HUD
func (s *Scene) Playing(c Canvas, w World) {
	s.world(c, w, func(col RGB) RGB { return col })

	c.Text(10, 10, fmt.Sprintf("Score: %d", w.Score), RGBWhite)
	c.Text(10, 32, fmt.Sprintf("%s   Boss in: %d px", sector, BossDistance(w)), RGBWhite)
}

// Paused draws the frozen world dimmed under the pause banner
func (s *Scene) Paused(c Canvas, w World) {
	s.world(c, w, func(col RGB) RGB { return Dim(col, PauseDim) })
	s.centered(c, pauseText, 60, RGBWhite)
}

// Win draws the victory screen
func (s *Scene) Win(c Canvas) {
	c.Clear(RGBWinBg)
	s.centered(c, winText, s.height/2, RGBBlack)
}

// BossDistance is the whole pixels left between player and titan, never negative
func BossDistance(w World) int {
	d := int(w.Titan.X - w.Player.X)
	if d < 0 {
		return 0
	}
	return d
}

func (s *Scene) centered(c Canvas, text string, y int, col RGB) {
	c.Text(s.width/2-c.TextWidth(text)/2, y, text, col)
}

func (s *Scene) world(c Canvas, w World, tint func(RGB) RGB) {
	camX := w.Camera.X

	// Background and looping parallax stars
	c.Clear(tint(RGBSpace))
	offset := int(camX*starParallax) % starSpacing
	for i := -2; i < s.width/starSpacing+4; i++ {
		c.FillCircle(i*starSpacing-offset, starY, starRadius, tint(RGBWhite))
	}
	c.FillRect(0, s.floorY, s.width, s.height-s.floorY, tint(RGBAstro))

	// Player with eye spots
	p := w.Player
	px, py := int(w.Camera.ToScreen(p.X)), int(p.Y)
	c.FillCircle(px, py, p.Radius, tint(RGBGlow))
	for _, dx := range []int{-5, 5} {
		c.FillCircle(px+dx, py-4, 3, tint(RGBWhite))
		c.FillCircle(px+dx, py-4, 2, tint(RGBBlack))
	}

	for i := range w.Drifters {
		d := &w.Drifters[i]
		if d.Dead {
			continue
		}
		sx := int(w.Camera.ToScreen(d.X))
		if sx < -drifterCull || sx > s.width+drifterCull {
			continue
		}
		c.FillRect(sx-d.HalfSize, int(d.Y)-d.HalfSize, d.HalfSize*2, d.HalfSize*2, tint(RGBDrifter))
	}

	t := w.Titan
	sx, ty := int(w.Camera.ToScreen(t.X)), int(t.Y)
	if sx >= -titanCull && sx <= s.width+titanCull {
		c.FillRect(sx-15, ty, 30, 80, tint(RGBMeteor))
		c.FillCircle(sx, ty-40, 50, tint(RGBStarBlue))
		c.FillCircle(sx-15, ty-40, 6, tint(RGBBlack))
		c.FillCircle(sx+15, ty-40, 6, tint(RGBBlack))
		c.FillRect(sx-10, ty-15, 20, 10, tint(RGBBlack))
	}
}
