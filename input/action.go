package input

// Action is a logical game input
type Action uint8

const (
	ActionLeft Action = iota
	ActionRight
	ActionBoost
	ActionPause
	ActionStart
	ActionQuit
	actionCount
)

var actionNames = [actionCount]string{
	ActionLeft:  "left",
	ActionRight: "right",
	ActionBoost: "boost",
	ActionPause: "pause",
	ActionStart: "start",
	ActionQuit:  "quit",
}

func (a Action) String() string {
	if a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// Bindings maps each action to the keys that trigger it
type Bindings [actionCount][]Key

// DefaultBindings mirrors WASD and arrows with extra boost keys
func DefaultBindings() *Bindings {
	return &Bindings{
		ActionLeft:  {KeyA, KeyLeft},
		ActionRight: {KeyD, KeyRight},
		ActionBoost: {KeySpace, KeyZ, KeyK, KeyW, KeyUp},
		ActionPause: {KeyP},
		ActionStart: {KeyEnter},
		ActionQuit:  {KeyEscape},
	}
}

// Keys returns the keys bound to an action
func (b *Bindings) Keys(a Action) []Key {
	if b == nil || a >= actionCount {
		return nil
	}
	return b[a]
}
