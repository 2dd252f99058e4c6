package engine

// State is the game flow state
type State uint8

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateWin
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateWin:
		return "win"
	default:
		return "unknown"
	}
}

var validTransitions = map[State][]State{
	StateMenu:    {StatePlaying},
	StatePlaying: {StatePaused, StateWin},
	StatePaused:  {StatePlaying},
	StateWin:     {StateMenu},
}

// CanTransition checks if a state transition is valid
// Quit is not a state; the driver stops from any state
func CanTransition(from, to State) bool {
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
