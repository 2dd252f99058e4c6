package input

// Snapshot is the per-frame input view shared by every consumer within a frame
// Built exactly once per frame with Next, before any query
type Snapshot struct {
	prev     KeyState
	cur      KeyState
	bindings *Bindings
}

// NewSnapshot creates an empty snapshot; nil bindings selects the defaults
func NewSnapshot(b *Bindings) Snapshot {
	if b == nil {
		b = DefaultBindings()
	}
	return Snapshot{bindings: b}
}

// Next returns the snapshot for a new frame, rolling current state into previous
func (s Snapshot) Next(raw KeyState) Snapshot {
	return Snapshot{
		prev:     s.cur,
		cur:      raw,
		bindings: s.bindings,
	}
}

// Down reports whether any key bound to the action is held this frame
func (s *Snapshot) Down(a Action) bool {
	for _, k := range s.bindings.Keys(a) {
		if s.cur[k] {
			return true
		}
	}
	return false
}

// JustPressed reports whether any bound key went from up to down since the previous frame
// Edges are per key: pressing a second bound key while the first is held is a new press
func (s *Snapshot) JustPressed(a Action) bool {
	for _, k := range s.bindings.Keys(a) {
		if s.cur[k] && !s.prev[k] {
			return true
		}
	}
	return false
}

// Held returns the raw current key state
func (s *Snapshot) Held() KeyState {
	return s.cur
}
