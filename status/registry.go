// Package status holds lock-free gauges shared between the engine and its observers
// Writers cache a pointer once and store into it from the update loop; readers never take the world lock
package status

import (
	"sync/atomic"
)

// Registry groups gauges by value kind
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[Float]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[Float](),
	}
}

// Values reads every gauge into one map keyed by metric name
func (r *Registry) Values() map[string]any {
	out := make(map[string]any, r.Bools.Len()+r.Ints.Len()+r.Floats.Len())
	r.Bools.Range(func(key string, ptr *atomic.Bool) { out[key] = ptr.Load() })
	r.Ints.Range(func(key string, ptr *atomic.Int64) { out[key] = ptr.Load() })
	r.Floats.Range(func(key string, ptr *Float) { out[key] = ptr.Load() })
	return out
}
