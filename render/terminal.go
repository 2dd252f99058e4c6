package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const (
	halfBlock = '▀'

	// MinCols and MinRows are the smallest grid the canvas draws into
	MinCols = 40
	MinRows = 12

	tooSmallMsg = "Terminal too small"
)

// textSpan is text queued in cell coordinates, drawn over the pixels on Present
type textSpan struct {
	col, row int
	s        string
	fg       RGB
}

// TerminalCanvas projects the logical canvas onto a tcell screen
// Each cell holds two vertical pixels: foreground is the top, background the bottom
type TerminalCanvas struct {
	screen tcell.Screen
	width  int
	height int

	cols   int
	rows   int
	pix    []RGB // cols x rows*2
	texts  []textSpan
	resync bool
}

// NewTerminalCanvas creates a canvas of the given logical size on screen
func NewTerminalCanvas(screen tcell.Screen, width, height int) *TerminalCanvas {
	tc := &TerminalCanvas{
		screen: screen,
		width:  width,
		height: height,
	}
	tc.syncSize()
	return tc
}

// syncSize follows terminal resizes, reporting whether the grid changed
func (tc *TerminalCanvas) syncSize() bool {
	cols, rows := tc.screen.Size()
	if cols == tc.cols && rows == tc.rows && tc.pix != nil {
		return false
	}
	tc.cols, tc.rows = cols, rows
	size := cols * rows * 2
	if size < 0 {
		size = 0
	}
	if cap(tc.pix) < size {
		tc.pix = make([]RGB, size)
	} else {
		tc.pix = tc.pix[:size]
	}
	return true
}

// Grid returns the current terminal cell grid
func (tc *TerminalCanvas) Grid() (cols, rows int) {
	return tc.cols, tc.rows
}

func (tc *TerminalCanvas) Size() (int, int) {
	return tc.width, tc.height
}

func (tc *TerminalCanvas) tooSmall() bool {
	return tc.cols < MinCols || tc.rows < MinRows
}

// pixelX maps a logical x to a pixel column, unclipped
func (tc *TerminalCanvas) pixelX(x int) int {
	return floorDiv(x*tc.cols, tc.width)
}

// pixelY maps a logical y to a pixel row, unclipped
func (tc *TerminalCanvas) pixelY(y int) int {
	return floorDiv(y*tc.rows*2, tc.height)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func (tc *TerminalCanvas) set(px, py int, c RGB) {
	if px < 0 || py < 0 || px >= tc.cols || py >= tc.rows*2 {
		return
	}
	tc.pix[py*tc.cols+px] = c
}

func (tc *TerminalCanvas) Clear(c RGB) {
	if tc.syncSize() {
		tc.resync = true
	}
	for i := range tc.pix {
		tc.pix[i] = c
	}
	tc.texts = tc.texts[:0]
}

func (tc *TerminalCanvas) FillRect(x, y, w, h int, c RGB) {
	if w <= 0 || h <= 0 {
		return
	}
	x0, x1 := tc.pixelX(x), tc.pixelX(x+w)
	y0, y1 := tc.pixelY(y), tc.pixelY(y+h)
	// Shapes narrower than a pixel still cover one
	if x1 == x0 {
		x1++
	}
	if y1 == y0 {
		y1++
	}
	for py := max(y0, 0); py < min(y1, tc.rows*2); py++ {
		for px := max(x0, 0); px < min(x1, tc.cols); px++ {
			tc.pix[py*tc.cols+px] = c
		}
	}
}

func (tc *TerminalCanvas) FillCircle(cx, cy, r int, c RGB) {
	if r <= 0 || tc.cols == 0 || tc.rows == 0 {
		return
	}
	sx := float64(tc.width) / float64(tc.cols)
	sy := float64(tc.height) / float64(tc.rows*2)
	r2 := float64(r * r)

	filled := false
	for py := tc.pixelY(cy - r); py <= tc.pixelY(cy+r); py++ {
		ly := (float64(py)+0.5)*sy - float64(cy)
		for px := tc.pixelX(cx - r); px <= tc.pixelX(cx+r); px++ {
			lx := (float64(px)+0.5)*sx - float64(cx)
			if lx*lx+ly*ly <= r2 {
				tc.set(px, py, c)
				filled = true
			}
		}
	}
	if !filled {
		tc.set(tc.pixelX(cx), tc.pixelY(cy), c)
	}
}

func (tc *TerminalCanvas) Text(x, y int, s string, c RGB) {
	if tc.rows == 0 {
		return
	}
	tc.texts = append(tc.texts, textSpan{
		col: tc.pixelX(x),
		row: floorDiv(y*tc.rows, tc.height),
		s:   s,
		fg:  c,
	})
}

func (tc *TerminalCanvas) TextWidth(s string) int {
	if tc.cols == 0 {
		return 0
	}
	return runewidth.StringWidth(s) * tc.width / tc.cols
}

// Present flushes the pixel buffer and queued text to the terminal
func (tc *TerminalCanvas) Present() {
	tc.screen.Clear()

	if tc.tooSmall() {
		style := tcell.StyleDefault.Foreground(RGBToTcell(RGBWhite))
		tc.drawString(0, 0, tooSmallMsg, style)
	} else {
		for row := 0; row < tc.rows; row++ {
			for col := 0; col < tc.cols; col++ {
				top := tc.pix[(2*row)*tc.cols+col]
				bottom := tc.pix[(2*row+1)*tc.cols+col]
				style := tcell.StyleDefault.Foreground(RGBToTcell(top)).Background(RGBToTcell(bottom))
				tc.screen.SetContent(col, row, halfBlock, nil, style)
			}
		}
		for _, span := range tc.texts {
			tc.drawText(span)
		}
	}

	if tc.resync {
		tc.resync = false
		tc.screen.Sync()
		return
	}
	tc.screen.Show()
}

// drawText writes a span with each cell's background taken from the pixels beneath it
func (tc *TerminalCanvas) drawText(span textSpan) {
	if span.row < 0 || span.row >= tc.rows {
		return
	}
	col := span.col
	for _, r := range span.s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col >= 0 && col+w <= tc.cols {
			top := tc.pix[(2*span.row)*tc.cols+col]
			bottom := tc.pix[(2*span.row+1)*tc.cols+col]
			style := tcell.StyleDefault.Foreground(RGBToTcell(span.fg)).Background(RGBToTcell(Blend(top, bottom, 0.5)))
			tc.screen.SetContent(col, span.row, r, nil, style)
		}
		col += w
	}
}

func (tc *TerminalCanvas) drawString(col, row int, s string, style tcell.Style) {
	for _, r := range s {
		if col >= tc.cols {
			return
		}
		tc.screen.SetContent(col, row, r, nil, style)
		col += runewidth.RuneWidth(r)
	}
}
