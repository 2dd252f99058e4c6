package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/star-sprite/asset"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid tuning")

// Config is the decoded tuning document
type Config struct {
	Display Display `toml:"display"`
	Level   Level   `toml:"level"`
	Player  Player  `toml:"player"`
	Drifter Drifter `toml:"drifter"`
	Titan   Titan   `toml:"titan"`
	Audio   Audio   `toml:"audio"`
	Input   Input   `toml:"input"`
	Log     Log     `toml:"log"`
}

// Display describes the fixed logical canvas
type Display struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	FPS    int    `toml:"fps"`
}

// Level describes the scrolling playfield
type Level struct {
	Length     float64 `toml:"length"`
	FloorY     float64 `toml:"floor_y"`
	WallMargin float64 `toml:"wall_margin"`
}

// Player holds StarSprite spawn and movement tunables
type Player struct {
	SpawnX         float64 `toml:"spawn_x"`
	Radius         int     `toml:"radius"`
	MaxSpeed       float64 `toml:"max_speed"`
	Accel          float64 `toml:"accel"`
	Friction       float64 `toml:"friction"`
	Gravity        float64 `toml:"gravity"`
	BoostVelocity  float64 `toml:"boost_velocity"`
	FallMultiplier float64 `toml:"fall_multiplier"`
	LowMultiplier  float64 `toml:"low_multiplier"`
	CoyoteMs       int     `toml:"coyote_ms"`
	BufferMs       int     `toml:"buffer_ms"`
}

// Drifter holds patrol enemy tunables and spawn layout
type Drifter struct {
	Speed        float64   `toml:"speed"`
	PatrolMargin float64   `toml:"patrol_margin"`
	HalfSize     int       `toml:"half_size"`
	SpawnX       []float64 `toml:"spawn_x"`
}

// Titan holds boss tunables
type Titan struct {
	EndOffset float64 `toml:"end_offset"`
	Rise      float64 `toml:"rise"`
	HP        int     `toml:"hp"`
	Width     int     `toml:"width"`
	Height    int     `toml:"height"`
	TopOffset int     `toml:"top_offset"`
}

// Tone is a single synthesized sound effect
type Tone struct {
	Freq float64 `toml:"freq"`
	Ms   int     `toml:"ms"`
}

// Duration returns the tone length
func (t Tone) Duration() time.Duration {
	return time.Duration(t.Ms) * time.Millisecond
}

// Audio holds speaker and effect settings
type Audio struct {
	Enabled    bool    `toml:"enabled"`
	SampleRate int     `toml:"sample_rate"`
	BufferMs   int     `toml:"buffer_ms"`
	Volume     float64 `toml:"volume"`
	AttackMs   int     `toml:"attack_ms"`
	ReleaseMs  int     `toml:"release_ms"`
	Boost      Tone    `toml:"boost"`
	Zap        Tone    `toml:"zap"`
}

// Input holds terminal key hold windows
type Input struct {
	InitialHoldMs int `toml:"initial_hold_ms"`
	RepeatHoldMs  int `toml:"repeat_hold_ms"`
}

// Log selects the log file and minimum level
type Log struct {
	Path  string `toml:"path"`
	Level string `toml:"level"`
}

// InitialHold is how long a first press counts as held without a repeat
func (i Input) InitialHold() time.Duration {
	return time.Duration(i.InitialHoldMs) * time.Millisecond
}

// RepeatHold is how long a key stays held after an auto-repeat
func (i Input) RepeatHold() time.Duration {
	return time.Duration(i.RepeatHoldMs) * time.Millisecond
}

// Load decodes the embedded default tuning
func Load() (*Config, error) {
	return Decode([]byte(asset.DefaultTuning))
}

// MustLoad is Load for callers that cannot recover from a broken embedded document
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// Decode parses a tuning document on top of the embedded defaults and validates the result
// Keys absent from data keep their default value
func Decode(data []byte) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.Decode(asset.DefaultTuning, cfg); err != nil {
		return nil, fmt.Errorf("default tuning: %w", err)
	}

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("tuning parse: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q", ErrInvalid, undecoded[0].String())
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects tunings the simulation cannot run with
func (c *Config) Validate() error {
	switch {
	case c.Display.Width <= 0 || c.Display.Height <= 0:
		return fmt.Errorf("%w: display %dx%d", ErrInvalid, c.Display.Width, c.Display.Height)
	case c.Display.FPS <= 0:
		return fmt.Errorf("%w: fps %d", ErrInvalid, c.Display.FPS)
	case c.Level.Length < float64(c.Display.Width):
		return fmt.Errorf("%w: level length %.0f shorter than viewport %d", ErrInvalid, c.Level.Length, c.Display.Width)
	case c.Level.FloorY <= 0 || c.Level.FloorY > float64(c.Display.Height):
		return fmt.Errorf("%w: floor_y %.0f outside display", ErrInvalid, c.Level.FloorY)
	case c.Level.WallMargin < 0 || 2*c.Level.WallMargin >= c.Level.Length:
		return fmt.Errorf("%w: wall_margin %.0f", ErrInvalid, c.Level.WallMargin)
	case c.Player.Radius <= 0:
		return fmt.Errorf("%w: player radius %d", ErrInvalid, c.Player.Radius)
	case c.Player.MaxSpeed <= 0 || c.Player.Accel <= 0:
		return fmt.Errorf("%w: player max_speed/accel must be positive", ErrInvalid)
	case c.Player.Friction < 0 || c.Player.Gravity < 0:
		return fmt.Errorf("%w: player friction/gravity must not be negative", ErrInvalid)
	case c.Player.BoostVelocity >= 0:
		return fmt.Errorf("%w: boost_velocity %.1f must be negative (upward)", ErrInvalid, c.Player.BoostVelocity)
	case c.Player.CoyoteMs < 0 || c.Player.BufferMs < 0:
		return fmt.Errorf("%w: coyote/buffer windows must not be negative", ErrInvalid)
	case c.Drifter.Speed < 0 || c.Drifter.HalfSize <= 0:
		return fmt.Errorf("%w: drifter speed/half_size", ErrInvalid)
	case c.Titan.HP <= 0:
		return fmt.Errorf("%w: titan hp %d", ErrInvalid, c.Titan.HP)
	case c.Titan.EndOffset <= 0 || c.Titan.EndOffset >= c.Level.Length:
		return fmt.Errorf("%w: titan end_offset %.0f", ErrInvalid, c.Titan.EndOffset)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio volume %.2f outside [0,1]", ErrInvalid, c.Audio.Volume)
	case c.Audio.SampleRate <= 0:
		return fmt.Errorf("%w: sample_rate %d", ErrInvalid, c.Audio.SampleRate)
	case c.Input.InitialHoldMs <= 0 || c.Input.RepeatHoldMs <= 0:
		return fmt.Errorf("%w: input hold windows must be positive", ErrInvalid)
	case c.Log.Path == "":
		return fmt.Errorf("%w: log path empty", ErrInvalid)
	}

	for i, x := range c.Drifter.SpawnX {
		if x < 0 || x > c.Level.Length {
			return fmt.Errorf("%w: drifter %d spawn_x %.0f outside level", ErrInvalid, i, x)
		}
	}
	return nil
}

// TitanX is the boss anchor position
func (c *Config) TitanX() float64 {
	return c.Level.Length - c.Titan.EndOffset
}

// CoyoteMax is the coyote window in seconds
func (p Player) CoyoteMax() float64 {
	return float64(p.CoyoteMs) / 1000
}

// BufferMax is the jump buffer window in seconds
func (p Player) BufferMax() float64 {
	return float64(p.BufferMs) / 1000
}
