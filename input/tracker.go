package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// keyHold tracks one key between its press and the expiry of its hold window
type keyHold struct {
	active    bool
	repeating bool
	lastSeen  time.Time
}

// Tracker converts press/auto-repeat key events into held state
// Terminals never report key release: a key stays held until its hold window passes
// without another event. The first window covers the OS auto-repeat delay, later windows
// only the repeat interval
type Tracker struct {
	initialHold time.Duration
	repeatHold  time.Duration
	keys        [keyCount]keyHold
	interrupted bool
}

// NewTracker creates a tracker with the given hold windows
func NewTracker(initialHold, repeatHold time.Duration) *Tracker {
	return &Tracker{
		initialHold: initialHold,
		repeatHold:  repeatHold,
	}
}

// HandleEvent consumes a terminal event received at now
func (t *Tracker) HandleEvent(ev tcell.Event, now time.Time) {
	kev, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}
	if kev.Key() == tcell.KeyCtrlC ||
		(kev.Key() == tcell.KeyRune && kev.Rune() == 'c' && kev.Modifiers()&tcell.ModCtrl != 0) {
		t.interrupted = true
		return
	}
	if k, ok := keyFromTerminal(kev.Key(), kev.Rune()); ok {
		t.Press(k, now)
	}
}

// Press registers a press or auto-repeat of k
func (t *Tracker) Press(k Key, now time.Time) {
	if k >= keyCount {
		return
	}
	h := &t.keys[k]
	if h.active && now.Sub(h.lastSeen) <= t.window(h) {
		// Event inside the hold window continues the same hold
		h.repeating = true
	} else {
		h.active = true
		h.repeating = false
	}
	h.lastSeen = now
}

// Release ends a hold immediately, for hosts that do report key-up
func (t *Tracker) Release(k Key) {
	if k >= keyCount {
		return
	}
	t.keys[k] = keyHold{}
}

// State returns the held keys at now, expiring stale holds
func (t *Tracker) State(now time.Time) KeyState {
	var s KeyState
	for i := range t.keys {
		h := &t.keys[i]
		if !h.active {
			continue
		}
		if now.Sub(h.lastSeen) > t.window(h) {
			*h = keyHold{}
			continue
		}
		s[i] = true
	}
	return s
}

// Interrupted reports whether Ctrl+C was received
func (t *Tracker) Interrupted() bool {
	return t.interrupted
}

func (t *Tracker) window(h *keyHold) time.Duration {
	if h.repeating {
		return t.repeatHold
	}
	return t.initialHold
}
