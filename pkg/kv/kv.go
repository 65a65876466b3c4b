// Package kv is the storage collaborator for the storefront: a string-keyed
// store of JSON-serialized records over two scopes. The durable scope
// survives restarts; the session scope lives for one process.
package kv

import "context"

// Store reads and writes structured records serialized to text.
// Get reports false when the key is absent or the stored text is malformed;
// callers fall back to their default value instead of seeing a parse error.
type Store interface {
	Get(ctx context.Context, key string, dest any) bool
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
}

// Scopes pairs the two storage scopes the storefront uses.
type Scopes struct {
	Durable Store
	Session Store
}

// MemoryScopes is the default wiring: both scopes in process memory.
func MemoryScopes() Scopes {
	return Scopes{Durable: NewMemory(), Session: NewMemory()}
}
