// Package storage provides best-effort persistence of named state slots
// on top of pluggable backends.
package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/logger"
)

// Compile-time interface check.
var _ domain.Backend = (*MemoryBackend)(nil)

// MemoryBackend keeps slots in memory. Safe for concurrent access.
type MemoryBackend struct {
	mu    sync.RWMutex
	slots map[string][]byte
	log   *logger.Logger
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend(log *logger.Logger) *MemoryBackend {
	return &MemoryBackend{
		slots: make(map[string][]byte),
		log:   log,
	}
}

// Read returns a copy of the slot contents.
func (b *MemoryBackend) Read(ctx context.Context, key string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	data, ok := b.slots[key]
	if !ok {
		b.log.Debug("slot not found: %s", key)
		return nil, domain.ErrNotFound
	}
	return append([]byte(nil), data...), nil
}

// Write stores a copy of data under key. Overwrites if it already exists.
func (b *MemoryBackend) Write(ctx context.Context, key string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.log.Debug("writing slot %s (%d bytes)", key, len(data))
	b.slots[key] = append([]byte(nil), data...)
	return nil
}

// Keys returns the names of all written slots, sorted.
func (b *MemoryBackend) Keys() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]string, 0, len(b.slots))
	for k := range b.slots {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
