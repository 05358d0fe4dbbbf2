package domain

import "context"

// RecipeSource provides recipes. The collection is assumed stable for the
// lifetime of the process. Implementations can be in-memory (built-in) or
// file-based.
type RecipeSource interface {
	List(ctx context.Context) ([]Recipe, error)
	Get(ctx context.Context, id int) (*Recipe, error)
}

// Backend stores raw values under named slots. Read returns ErrNotFound
// for a slot that was never written. Implementations can be in-memory,
// file-based, or SQLite.
type Backend interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
}

// Notifier delivers short feedback messages to the user.
type Notifier interface {
	Notify(ctx context.Context, message string) error
	NotifyUrgent(ctx context.Context, message string) error
}

// StateWriter persists a value under a named slot. Writes are
// best-effort: failures are absorbed by the implementation.
type StateWriter interface {
	Set(ctx context.Context, key string, v any)
}

// IntentParser converts raw user input into an intent.
type IntentParser interface {
	Parse(ctx context.Context, input string) (*Intent, error)
}
