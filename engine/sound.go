package engine

import "github.com/lixenwraith/star-sprite/audio"

// SoundPlayer plays fire-and-forget effects; implementations must never block or panic
type SoundPlayer interface {
	Play(st audio.SoundType)
}

type nopSound struct{}

func (nopSound) Play(audio.SoundType) {}
