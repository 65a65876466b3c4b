package kv

import (
	"context"
	"encoding/json"
	"sync"
)

// Memory is an in-process Store. It backs the session scope and tests, and
// stands in for the durable scope when no redis is configured.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string, dest any) bool {
	m.mu.RLock()
	raw, ok := m.data[key]
	m.mu.RUnlock()
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		// Corrupt record reads as absent.
		return false
	}
	return true
}

func (m *Memory) Set(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.data[key] = string(raw)
	m.mu.Unlock()
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()
	return nil
}

// SetRaw stores pre-serialized text, bypassing marshaling. Tests use it to
// plant malformed records.
func (m *Memory) SetRaw(key, raw string) {
	m.mu.Lock()
	m.data[key] = raw
	m.mu.Unlock()
}
