package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidRoute    = errors.New("invalid route")
	ErrInvalidServings = errors.New("servings out of range")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrNoDetailOpen    = errors.New("no recipe detail open")
)
