package render

// Scene palette
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}

	RGBSpace    = RGB{20, 30, 80}    // Starfield background
	RGBAstro    = RGB{100, 255, 150} // Ground band
	RGBGlow     = RGB{200, 150, 255} // Player body
	RGBStarBlue = RGB{50, 150, 255}  // Titan energy field
	RGBMeteor   = RGB{150, 100, 50}  // Titan core
	RGBDrifter  = RGB{255, 100, 150}

	RGBMenuBg    = RGB{10, 10, 50}
	RGBMenuTitle = RGB{200, 180, 255}
	RGBWinBg     = RGB{200, 220, 255}
)

// PauseDim is how far the paused world is darkened toward black
const PauseDim = 0.45
