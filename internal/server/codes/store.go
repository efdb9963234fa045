package codes

import (
	"context"
	"time"
)

// Validity windows, measured from IssuedAt.
const (
	RegistrationWindow = 10 * time.Minute
	RecoveryWindow     = 15 * time.Minute
)

// Entry is what a store keeps per code.
type Entry[V any] struct {
	Value    V         `json:"value"`
	IssuedAt time.Time `json:"issued_at"`
}

// Store keeps outstanding codes. Implementations are safe for concurrent use.
type Store[V any] interface {
	// PutIfAbsent stores v only if code is free and reports whether it did.
	PutIfAbsent(ctx context.Context, code int, v V, issuedAt time.Time) (bool, error)
	// TryGet returns the entry for code; ok is false when there is none.
	TryGet(ctx context.Context, code int) (e Entry[V], ok bool, err error)
	// Remove deletes code. Removing an absent code is not an error.
	Remove(ctx context.Context, code int) error
}

// Expired reports whether e is outside window at now. An entry is valid only
// while strictly less than window has elapsed.
func (e Entry[V]) Expired(now time.Time, window time.Duration) bool {
	return now.Sub(e.IssuedAt) >= window
}
