package engine

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/lixenwraith/star-sprite/component"
	"github.com/lixenwraith/star-sprite/config"
	"github.com/lixenwraith/star-sprite/render"
)

// Session owns every entity of one playthrough
// Replay constructs a fresh Session instead of resetting fields
type Session struct {
	ID       uuid.UUID
	Player   component.Player
	Drifters []component.Drifter // Dead drifters keep their slot
	Titan    component.Titan
	Camera   component.Camera
	Score    int
	Elapsed  float64 // Seconds of unpaused play
}

// NewSession builds the initial level layout; rng picks each drifter's starting direction
func NewSession(cfg *config.Config, rng *rand.Rand) *Session {
	s := &Session{
		ID:       uuid.New(),
		Player:   component.NewPlayer(cfg),
		Drifters: make([]component.Drifter, 0, len(cfg.Drifter.SpawnX)),
		Titan: component.NewTitan(
			cfg.TitanX(),
			cfg.Level.FloorY-cfg.Titan.Rise,
			cfg.Titan.HP,
			cfg.Titan.Width,
			cfg.Titan.Height,
			cfg.Titan.TopOffset,
		),
	}

	for _, x := range cfg.Drifter.SpawnX {
		dir := 1
		if rng.Intn(2) == 0 {
			dir = -1
		}
		s.Drifters = append(s.Drifters, component.NewDrifter(x, cfg.Level.FloorY, dir, cfg.Drifter.HalfSize))
	}

	return s
}

// Alive returns the number of live drifters
func (s *Session) Alive() int {
	n := 0
	for i := range s.Drifters {
		if !s.Drifters[i].Dead {
			n++
		}
	}
	return n
}

// World exposes the session to the scene renderer
func (s *Session) World() render.World {
	return render.World{
		Player:   &s.Player,
		Drifters: s.Drifters,
		Titan:    &s.Titan,
		Camera:   s.Camera,
		Score:    s.Score,
	}
}
