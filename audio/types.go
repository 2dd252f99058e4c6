package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundBoost SoundType = iota // Player jump
	SoundZap                    // Drifter defeated or titan hit
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundBoost:
		return "boost"
	case SoundZap:
		return "zap"
	default:
		return "unknown"
	}
}

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio not initialized")
	ErrUnknownSound   = errors.New("unknown sound type")
)
