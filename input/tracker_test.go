package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestTracker() *Tracker {
	return NewTracker(500*time.Millisecond, 100*time.Millisecond)
}

// TestTrackerInitialHold verifies a single press is held for the initial window
func TestTrackerInitialHold(t *testing.T) {
	tr := newTestTracker()
	tr.Press(KeySpace, t0)

	if !tr.State(t0.Add(400 * time.Millisecond))[KeySpace] {
		t.Error("Expected key held inside initial window")
	}
	if tr.State(t0.Add(600 * time.Millisecond))[KeySpace] {
		t.Error("Expected key released after initial window")
	}
}

// TestTrackerRepeatKeepsHeld verifies auto-repeat extends the hold with the short window
func TestTrackerRepeatKeepsHeld(t *testing.T) {
	tr := newTestTracker()
	tr.Press(KeyRight, t0)

	// OS auto-repeat starts after 300ms then fires every 40ms
	now := t0.Add(300 * time.Millisecond)
	for i := 0; i < 10; i++ {
		tr.Press(KeyRight, now)
		if !tr.State(now)[KeyRight] {
			t.Fatalf("Repeat %d: expected held", i)
		}
		now = now.Add(40 * time.Millisecond)
	}

	last := now.Add(-40 * time.Millisecond)
	if !tr.State(last.Add(90 * time.Millisecond))[KeyRight] {
		t.Error("Expected held within repeat window after last repeat")
	}
	if tr.State(last.Add(150 * time.Millisecond))[KeyRight] {
		t.Error("Expected release once repeats stop")
	}
}

// TestTrackerNewPressAfterExpiry verifies a press after expiry starts a fresh hold
func TestTrackerNewPressAfterExpiry(t *testing.T) {
	tr := newTestTracker()
	tr.Press(KeyA, t0)
	_ = tr.State(t0.Add(time.Second))

	later := t0.Add(2 * time.Second)
	tr.Press(KeyA, later)
	if !tr.State(later.Add(400 * time.Millisecond))[KeyA] {
		t.Error("Fresh press should use the initial window again")
	}
}

// TestTrackerRelease verifies explicit release
func TestTrackerRelease(t *testing.T) {
	tr := newTestTracker()
	tr.Press(KeyP, t0)
	tr.Release(KeyP)
	if tr.State(t0)[KeyP] {
		t.Error("Expected released key")
	}
}

// TestKeyFromTerminal verifies rune folding and special keys
func TestKeyFromTerminal(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want Key
		ok   bool
	}{
		{tcell.KeyRune, 'a', KeyA, true},
		{tcell.KeyRune, 'A', KeyA, true},
		{tcell.KeyRune, ' ', KeySpace, true},
		{tcell.KeyRune, 'x', 0, false},
		{tcell.KeyLeft, 0, KeyLeft, true},
		{tcell.KeyEnter, 0, KeyEnter, true},
		{tcell.KeyEscape, 0, KeyEscape, true},
		{tcell.KeyF1, 0, 0, false},
	}

	for _, tc := range tests {
		got, ok := keyFromTerminal(tc.key, tc.r)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("keyFromTerminal(%v, %q) = (%v, %v), want (%v, %v)", tc.key, tc.r, got, ok, tc.want, tc.ok)
		}
	}
}
