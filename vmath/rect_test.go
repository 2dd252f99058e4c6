package vmath

import "testing"

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlap", Rect{5, 5, 10, 10}, true},
		{"contained", Rect{2, 2, 2, 2}, true},
		{"touching right edge", Rect{10, 0, 5, 5}, false},
		{"touching bottom edge", Rect{0, 10, 5, 5}, false},
		{"apart", Rect{20, 20, 5, 5}, false},
		{"zero width", Rect{5, 5, 0, 5}, false},
	}

	for _, tc := range tests {
		if got := base.Intersects(tc.other); got != tc.want {
			t.Errorf("%s: Intersects = %v, want %v", tc.name, got, tc.want)
		}
		if got := tc.other.Intersects(base); got != tc.want {
			t.Errorf("%s (swapped): Intersects = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestRectAroundTruncates(t *testing.T) {
	r := RectAround(100.9, 330.5, 18, 18)
	if r.X != 82 || r.Y != 312 {
		t.Errorf("Expected origin (82,312), got (%d,%d)", r.X, r.Y)
	}
	if r.W != 36 || r.H != 36 {
		t.Errorf("Expected 36x36, got %dx%d", r.W, r.H)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-1, 0, 10) != 0 {
		t.Error("Expected lower clamp")
	}
	if Clamp(11, 0, 10) != 10 {
		t.Error("Expected upper clamp")
	}
	if Clamp(5, 0, 10) != 5 {
		t.Error("Expected passthrough")
	}
}
