package engine

import "testing"

func TestCanTransition(t *testing.T) {
	valid := []struct{ from, to State }{
		{StateMenu, StatePlaying},
		{StatePlaying, StatePaused},
		{StatePaused, StatePlaying},
		{StatePlaying, StateWin},
		{StateWin, StateMenu},
	}
	for _, tc := range valid {
		if !CanTransition(tc.from, tc.to) {
			t.Errorf("Expected transition %s -> %s to be valid", tc.from, tc.to)
		} else {
			t.Logf("✓ Valid transition: %s -> %s", tc.from, tc.to)
		}
	}

	invalid := []struct {
		from, to State
		desc     string
	}{
		{StateMenu, StateWin, "Menu -> Win (must play)"},
		{StateMenu, StatePaused, "Menu -> Paused (nothing to pause)"},
		{StatePaused, StateWin, "Paused -> Win (simulation suspended)"},
		{StatePaused, StateMenu, "Paused -> Menu (no abandon path)"},
		{StateWin, StatePlaying, "Win -> Playing (must re-enter through menu)"},
		{StatePlaying, StateMenu, "Playing -> Menu (only via win)"},
	}
	for _, tc := range invalid {
		if CanTransition(tc.from, tc.to) {
			t.Errorf("Expected transition to be rejected: %s", tc.desc)
		} else {
			t.Logf("✓ Correctly rejected invalid transition: %s", tc.desc)
		}
	}
}

func TestStateString(t *testing.T) {
	names := map[State]string{
		StateMenu:    "menu",
		StatePlaying: "playing",
		StatePaused:  "paused",
		StateWin:     "win",
		State(42):    "unknown",
	}
	for s, want := range names {
		if s.String() != want {
			t.Errorf("Expected %q, got %q", want, s.String())
		}
	}
}
