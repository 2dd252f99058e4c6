package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/star-sprite/config"
)

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain; 0 is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// NewTone builds a shaped sine beep of the given frequency and length
func NewTone(freq float64, duration time.Duration, cfg config.Audio) (beep.Streamer, error) {
	rate := beep.SampleRate(cfg.SampleRate)

	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, fmt.Errorf("tone %.0fHz: %w", freq, err)
	}

	attack := time.Duration(cfg.AttackMs) * time.Millisecond
	release := time.Duration(cfg.ReleaseMs) * time.Millisecond
	shaped := NewEnvelope(beep.Take(rate.N(duration), sine), duration, attack, release, rate)

	return newVolume(shaped, cfg.Volume), nil
}

// GetSoundEffect returns the streamer for a named effect
func GetSoundEffect(st SoundType, cfg config.Audio) (beep.Streamer, error) {
	var tone config.Tone
	switch st {
	case SoundBoost:
		tone = cfg.Boost
	case SoundZap:
		tone = cfg.Zap
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownSound, st)
	}
	return NewTone(tone.Freq, tone.Duration(), cfg)
}
