// Package store persists the best score behind a minimal key-value contract
package store

import (
	"context"
	"sync"
)

// ScoreStore reads and writes integer values by key
// A missing key reads as zero without error
type ScoreStore interface {
	Get(ctx context.Context, key string) (int, error)
	Set(ctx context.Context, key string, value int) error
}

// Memory is an in-process ScoreStore, used when no database path is configured and in tests
type Memory struct {
	mu     sync.RWMutex
	values map[string]int
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]int)}
}

func (m *Memory) Get(_ context.Context, key string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.values[key], nil
}

func (m *Memory) Set(_ context.Context, key string, value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
