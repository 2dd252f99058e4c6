package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a 24-bit color
type RGB struct {
	R, G, B uint8
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{r, g, b}
}

// Blend mixes src over c by alpha in RGB space
// If alpha is 1.0 or 0.0, we return early to save math
func Blend(c, src RGB, alpha float64) RGB {
	if alpha >= 1.0 {
		return src
	}
	if alpha <= 0.0 {
		return c
	}
	return fromColorful(c.colorful().BlendRgb(src.colorful(), alpha))
}

// Dim darkens c toward black by amount in [0,1]
func Dim(c RGB, amount float64) RGB {
	return Blend(c, RGBBlack, amount)
}

// Hex formats the color as #rrggbb
func (c RGB) Hex() string {
	return c.colorful().Hex()
}

// RGBToTcell converts RGB to tcell.Color
func RGBToTcell(c RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
