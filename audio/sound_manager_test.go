package audio

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/star-sprite/config"
)

func testAudioConfig(t *testing.T) config.Audio {
	t.Helper()
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	return cfg.Audio
}

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.Play(SoundBoost)
	sm.Play(SoundZap)
	if err := sm.PlayTone(440, 50*time.Millisecond); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Expected ErrNotInitialized, got %v", err)
	}
	if sm.Played(SoundBoost) != 0 || sm.Played(SoundZap) != 0 {
		t.Error("Uninitialized manager counted plays")
	}
	if err := sm.Close(); err != nil {
		t.Errorf("Close without init failed: %v", err)
	}
}

// TestSoundManagerDisabled verifies a disabled config stays silent without error
func TestSoundManagerDisabled(t *testing.T) {
	cfg := testAudioConfig(t)
	cfg.Enabled = false

	sm := NewSoundManager()
	if err := sm.Initialize(cfg); err != nil {
		t.Fatalf("Disabled init returned error: %v", err)
	}
	if sm.Initialized() {
		t.Error("Disabled manager reports initialized")
	}
	sm.Play(SoundBoost)
	if sm.Played(SoundBoost) != 0 {
		t.Error("Disabled manager counted a play")
	}
}

// TestSoundManagerInitialization verifies sound manager can be initialized and closed
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager()

	// Speaker initialization may fail in CI/test environments without audio devices
	err := sm.Initialize(testAudioConfig(t))
	if err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	sm.Play(SoundBoost)
	if sm.Played(SoundBoost) != 1 {
		t.Errorf("Expected one boost played, got %d", sm.Played(SoundBoost))
	}

	// Second initialization should be a no-op
	if err := sm.Initialize(testAudioConfig(t)); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}

	if err := sm.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}

	sm.Play(SoundZap)
	if sm.Played(SoundZap) != 0 {
		t.Error("Closed manager counted a play")
	}
}

// TestSoundTypeString verifies effect names
func TestSoundTypeString(t *testing.T) {
	if SoundBoost.String() != "boost" || SoundZap.String() != "zap" {
		t.Errorf("Unexpected names: %s %s", SoundBoost, SoundZap)
	}
	if SoundType(99).String() != "unknown" {
		t.Error("Expected unknown for out of range type")
	}
}
