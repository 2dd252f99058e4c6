package engine

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/star-sprite/config"
)

func TestNewSessionLayout(t *testing.T) {
	cfg := config.MustLoad()
	s := NewSession(cfg, rand.New(rand.NewSource(1)))

	if s.Player.X != cfg.Player.SpawnX || s.Player.Y != cfg.Level.FloorY || !s.Player.OnGround {
		t.Errorf("Unexpected player spawn %+v", s.Player)
	}
	if len(s.Drifters) != len(cfg.Drifter.SpawnX) || s.Alive() != len(cfg.Drifter.SpawnX) {
		t.Fatalf("Expected %d live drifters, got %d/%d", len(cfg.Drifter.SpawnX), s.Alive(), len(s.Drifters))
	}
	for i, d := range s.Drifters {
		if d.X != cfg.Drifter.SpawnX[i] || (d.Dir != 1 && d.Dir != -1) {
			t.Errorf("Drifter %d: unexpected %+v", i, d)
		}
	}
	if s.Titan.X != 2020 || s.Titan.Y != 270 || s.Titan.HP != 6 || s.Titan.MaxHP != 6 {
		t.Errorf("Unexpected titan %+v", s.Titan)
	}
	if s.Score != 0 || s.Camera.X != 0 {
		t.Errorf("Expected zero score and camera, got %d %f", s.Score, s.Camera.X)
	}
}

func TestNewSessionSeededDirections(t *testing.T) {
	cfg := config.MustLoad()
	a := NewSession(cfg, rand.New(rand.NewSource(42)))
	b := NewSession(cfg, rand.New(rand.NewSource(42)))

	if a.ID == b.ID {
		t.Error("Sessions should have distinct IDs")
	}
	for i := range a.Drifters {
		if a.Drifters[i] != b.Drifters[i] {
			t.Errorf("Drifter %d differs under the same seed", i)
		}
	}

	// Over many seeds both directions appear
	seen := map[int]bool{}
	for seed := int64(0); seed < 20; seed++ {
		for _, d := range NewSession(cfg, rand.New(rand.NewSource(seed))).Drifters {
			seen[d.Dir] = true
		}
	}
	if !seen[1] || !seen[-1] {
		t.Errorf("Expected both directions across seeds, got %v", seen)
	}
}

func TestSessionWorldView(t *testing.T) {
	cfg := config.MustLoad()
	s := NewSession(cfg, rand.New(rand.NewSource(1)))
	s.Score = 3
	s.Camera.X = 250

	w := s.World()
	if w.Player != &s.Player || w.Titan != &s.Titan {
		t.Error("World should reference session entities")
	}
	if w.Score != 3 || w.Camera.X != 250 || len(w.Drifters) != len(s.Drifters) {
		t.Errorf("Unexpected world view %+v", w)
	}

	s.Drifters[0].Dead = true
	if !w.Drifters[0].Dead {
		t.Error("World drifters should share the session slice")
	}
}
