package status

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// Registry is the central metrics facade
// The game loop caches pointers once and writes atomics directly each frame
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Fields snapshots every metric as structured log fields, grouped by type in key order
func (r *Registry) Fields() []zap.Field {
	fields := make([]zap.Field, 0, r.TotalCount())
	r.Bools.Range(func(k string, v *atomic.Bool) {
		fields = append(fields, zap.Bool(k, v.Load()))
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		fields = append(fields, zap.Int64(k, v.Load()))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		fields = append(fields, zap.Float64(k, v.Get()))
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		fields = append(fields, zap.String(k, v.Load()))
	})
	return fields
}
