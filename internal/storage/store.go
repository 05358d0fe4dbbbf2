package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/logger"
)

// Slot names. These are part of the on-disk format and must stay stable.
const (
	KeyLastTab      = "lastTab"
	KeyFavorites    = "favorites"
	KeyShoppingList = "shoppingList"
	KeyServings     = "servings"
)

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Store serializes values as JSON into a Backend. It is best-effort:
// read failures and corrupt slots yield the caller's default, and write
// failures are logged and dropped. Nothing is ever returned to the caller.
type Store struct {
	backend domain.Backend
	log     *logger.Logger
}

// NewStore wraps a backend.
func NewStore(backend domain.Backend, log *logger.Logger) *Store {
	return &Store{backend: backend, log: log}
}

// Load decodes the slot into v and reports whether it did. A corrupt slot
// may leave v partially decoded; Get decodes into a scratch value instead.
func (s *Store) Load(ctx context.Context, key string, v any) bool {
	data, err := s.backend.Read(ctx, key)
	if errors.Is(err, domain.ErrNotFound) {
		return false
	}
	if err != nil {
		s.log.Warn("reading %s: %v", key, err)
		return false
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return false
	}

	if err := json.Unmarshal(data, v); err != nil {
		s.log.Warn("slot %s is corrupt, using default: %v", key, err)
		return false
	}
	return true
}

// Set encodes v and writes it to the slot. Failures are logged only.
func (s *Store) Set(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.log.Warn("encoding %s: %v", key, err)
		return
	}
	if err := s.backend.Write(ctx, key, data); err != nil {
		s.log.Warn("writing %s: %v", key, err)
	}
}

// Get returns the decoded slot, or def when it is missing or unreadable.
func Get[T any](ctx context.Context, s *Store, key string, def T) T {
	var out T
	if !s.Load(ctx, key, &out) {
		return def
	}
	return out
}

// Open builds the named backend. dir is the state directory for the file
// and sqlite backends. The sqlite backend must be closed by the caller.
func Open(name, dir string, log *logger.Logger) (domain.Backend, error) {
	switch name {
	case BackendMemory:
		return NewMemoryBackend(log), nil
	case "", BackendFile:
		return NewFileBackend(filepath.Join(dir, "state"), log)
	case BackendSQLite:
		return NewSQLiteBackend(filepath.Join(dir, "state.db"), log)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", name)
	}
}
