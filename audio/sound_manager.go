package audio

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/star-sprite/config"
)

// SoundManager owns the speaker and mixes one-shot effects
// Every method is safe to call before Initialize; playback is then a no-op
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	cfg         config.Audio
	initialized bool

	played  [soundTypeCount]atomic.Uint64
	dropped atomic.Uint64
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker; a disabled config leaves the manager silent without error
func (sm *SoundManager) Initialize(cfg config.Audio) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	sm.cfg = cfg
	if !cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(time.Duration(cfg.BufferMs)*time.Millisecond)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Initialized reports whether sounds reach the speaker
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Play queues a named effect
func (sm *SoundManager) Play(st SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s, err := GetSoundEffect(st, sm.cfg)
	if err != nil {
		sm.dropped.Add(1)
		return
	}
	sm.add(s)
	sm.played[st].Add(1)
}

// PlayTone queues a raw sine beep
func (sm *SoundManager) PlayTone(freq float64, duration time.Duration) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return ErrNotInitialized
	}

	s, err := NewTone(freq, duration, sm.cfg)
	if err != nil {
		sm.dropped.Add(1)
		return err
	}
	sm.add(s)
	return nil
}

// add must be called with sm.mu held
func (sm *SoundManager) add(s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Played returns how many times an effect reached the mixer
func (sm *SoundManager) Played(st SoundType) uint64 {
	if st < 0 || st >= soundTypeCount {
		return 0
	}
	return sm.played[st].Load()
}

// Dropped returns how many effects failed to build
func (sm *SoundManager) Dropped() uint64 {
	return sm.dropped.Load()
}

// Close silences the mixer and releases the speaker
func (sm *SoundManager) Close() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return nil
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
	return nil
}
