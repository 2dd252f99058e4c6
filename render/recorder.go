package render

import (
	"github.com/mattn/go-runewidth"
)

// CharWidth is the logical width of one text cell on a Recorder
const CharWidth = 10

// OpKind identifies a recorded draw call
type OpKind int

const (
	OpClear OpKind = iota
	OpRect
	OpCircle
	OpText
)

// Op is one recorded draw call; unused fields are zero
type Op struct {
	Kind  OpKind
	X, Y  int
	W, H  int
	R     int
	Text  string
	Color RGB
}

// Recorder is a headless Canvas keeping the draw calls of the current frame
type Recorder struct {
	width, height int

	ops      []Op
	last     []Op
	Presents int
}

// NewRecorder creates a recorder reporting the given logical size
func NewRecorder(width, height int) *Recorder {
	return &Recorder{width: width, height: height}
}

func (r *Recorder) Size() (int, int) {
	return r.width, r.height
}

func (r *Recorder) Clear(c RGB) {
	r.ops = append(r.ops[:0], Op{Kind: OpClear, Color: c})
}

func (r *Recorder) FillRect(x, y, w, h int, c RGB) {
	r.ops = append(r.ops, Op{Kind: OpRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) FillCircle(cx, cy, radius int, c RGB) {
	r.ops = append(r.ops, Op{Kind: OpCircle, X: cx, Y: cy, R: radius, Color: c})
}

func (r *Recorder) Text(x, y int, s string, c RGB) {
	r.ops = append(r.ops, Op{Kind: OpText, X: x, Y: y, Text: s, Color: c})
}

func (r *Recorder) TextWidth(s string) int {
	return runewidth.StringWidth(s) * CharWidth
}

// Present publishes the pending frame
func (r *Recorder) Present() {
	r.last = append(r.last[:0], r.ops...)
	r.ops = r.ops[:0]
	r.Presents++
}

// Frame returns the draw calls of the last presented frame
func (r *Recorder) Frame() []Op {
	return r.last
}

// Texts returns the strings drawn in the last presented frame
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.last {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

// Find returns the draw calls of kind with color c in the last presented frame
func (r *Recorder) Find(kind OpKind, c RGB) []Op {
	var out []Op
	for _, op := range r.last {
		if op.Kind == kind && op.Color == c {
			out = append(out, op)
		}
	}
	return out
}
