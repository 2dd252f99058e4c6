package input

import "testing"

// TestSnapshotDown verifies any bound key satisfies Down
func TestSnapshotDown(t *testing.T) {
	s := NewSnapshot(nil)

	s = s.Next(KeyState{}.With(KeyLeft))
	if !s.Down(ActionLeft) {
		t.Error("Expected left down via arrow key")
	}
	if s.Down(ActionRight) {
		t.Error("Right should not be down")
	}

	s = s.Next(KeyState{}.With(KeyW))
	if !s.Down(ActionBoost) {
		t.Error("Expected boost down via W")
	}
	if s.Down(ActionLeft) {
		t.Error("Left should be released")
	}
}

// TestSnapshotJustPressedRisingEdge verifies edges fire only on the transition frame
func TestSnapshotJustPressedRisingEdge(t *testing.T) {
	s := NewSnapshot(nil)

	s = s.Next(KeyState{}.With(KeySpace))
	if !s.JustPressed(ActionBoost) {
		t.Fatal("Expected just-pressed on first frame of hold")
	}

	s = s.Next(KeyState{}.With(KeySpace))
	if s.JustPressed(ActionBoost) {
		t.Error("Held key must not retrigger")
	}
	if !s.Down(ActionBoost) {
		t.Error("Held key should still be down")
	}

	s = s.Next(KeyState{})
	if s.JustPressed(ActionBoost) || s.Down(ActionBoost) {
		t.Error("Released key should be neither down nor just pressed")
	}

	s = s.Next(KeyState{}.With(KeySpace))
	if !s.JustPressed(ActionBoost) {
		t.Error("Expected new edge after release")
	}
}

// TestSnapshotMultiKeyEdges verifies edges are evaluated per bound key
func TestSnapshotMultiKeyEdges(t *testing.T) {
	s := NewSnapshot(nil)

	s = s.Next(KeyState{}.With(KeyZ))
	if !s.JustPressed(ActionBoost) {
		t.Fatal("Expected edge from Z")
	}

	// Z still held, Space newly pressed: Space has its own rising edge
	s = s.Next(KeyState{}.With(KeyZ, KeySpace))
	if !s.JustPressed(ActionBoost) {
		t.Error("Expected edge from newly pressed Space while Z held")
	}

	// Both held: no key transitions
	s = s.Next(KeyState{}.With(KeyZ, KeySpace))
	if s.JustPressed(ActionBoost) {
		t.Error("No key transitioned, edge must not fire")
	}

	// Release Z, keep Space: still down, no edge
	s = s.Next(KeyState{}.With(KeySpace))
	if s.JustPressed(ActionBoost) {
		t.Error("Releasing one key must not produce an edge")
	}
	if !s.Down(ActionBoost) {
		t.Error("Space keeps boost down")
	}
}

// TestSnapshotZeroValue verifies an unbound snapshot answers false instead of panicking
func TestSnapshotZeroValue(t *testing.T) {
	var s Snapshot
	s = s.Next(KeyState{}.With(KeyEnter))
	if s.Down(ActionStart) || s.JustPressed(ActionStart) {
		t.Error("Zero snapshot has no bindings and should report nothing")
	}
}

// TestSnapshotCustomBindings verifies bindings are carried across frames
func TestSnapshotCustomBindings(t *testing.T) {
	b := DefaultBindings()
	b[ActionPause] = []Key{KeyEscape}

	s := NewSnapshot(b).Next(KeyState{}).Next(KeyState{}.With(KeyEscape))
	if !s.JustPressed(ActionPause) {
		t.Error("Expected rebound pause on escape")
	}
	if s.Down(ActionStart) {
		t.Error("Start should be unaffected")
	}
}
