package engine

import (
	"sync/atomic"

	"github.com/lixenwraith/star-sprite/status"
)

// Metric keys
const (
	MetricFrames           = "engine.frames"
	MetricDtLast           = "engine.dt_last"
	MetricDtMax            = "engine.dt_max"
	MetricSessions         = "game.sessions"
	MetricBoosts           = "game.boosts"
	MetricDriftersDefeated = "game.drifters_defeated"
	MetricTitanHits        = "game.titan_hits"
	MetricWins             = "game.wins"
	MetricState            = "game.state"
)

// metrics caches registry pointers so the frame loop writes atomics without map lookups
type metrics struct {
	frames   *atomic.Int64
	dtLast   *status.AtomicFloat
	dtMax    *status.AtomicFloat
	sessions *atomic.Int64
	boosts   *atomic.Int64
	drifters *atomic.Int64
	hits     *atomic.Int64
	wins     *atomic.Int64
	state    *status.AtomicString
}

func newMetrics(reg *status.Registry) *metrics {
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &metrics{
		frames:   reg.Ints.Get(MetricFrames),
		dtLast:   reg.Floats.Get(MetricDtLast),
		dtMax:    reg.Floats.Get(MetricDtMax),
		sessions: reg.Ints.Get(MetricSessions),
		boosts:   reg.Ints.Get(MetricBoosts),
		drifters: reg.Ints.Get(MetricDriftersDefeated),
		hits:     reg.Ints.Get(MetricTitanHits),
		wins:     reg.Ints.Get(MetricWins),
		state:    reg.Strings.Get(MetricState),
	}
}

func (m *metrics) frame(dt float64) {
	m.frames.Add(1)
	m.dtLast.Set(dt)
	m.dtMax.Max(dt)
}
