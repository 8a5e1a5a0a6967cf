package status

import (
	"maps"
	"math"
	"slices"
	"sync"
	"sync/atomic"
)

// Float is an atomic float64 stored as its IEEE bits, zero value reads 0
type Float struct {
	bits atomic.Uint64
}

func (f *Float) Store(v float64) { f.bits.Store(math.Float64bits(v)) }

func (f *Float) Load() float64 { return math.Float64frombits(f.bits.Load()) }

// MetricMap hands out one stable pointer per metric name
type MetricMap[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{items: make(map[string]*T)}
}

// Get returns the gauge for key, allocating it on first use
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.RLock()
	ptr := m.items[key]
	m.mu.RUnlock()
	if ptr != nil {
		return ptr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if ptr = m.items[key]; ptr == nil {
		ptr = new(T)
		m.items[key] = ptr
	}
	return ptr
}

// Len returns the number of registered gauges
func (m *MetricMap[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// Range visits gauges in key order
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	m.mu.RLock()
	keys := slices.Sorted(maps.Keys(m.items))
	ptrs := make([]*T, len(keys))
	for i, k := range keys {
		ptrs[i] = m.items[k]
	}
	m.mu.RUnlock()

	for i, k := range keys {
		fn(k, ptrs[i])
	}
}
