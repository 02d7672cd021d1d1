package resource

import (
	"sync"

	"go.trai.ch/warm/internal/core/ports"
)

var _ ports.TypeRegistry = (*Types)(nil)

// Types maps type identifiers to functions reporting their current signature.
// A generator registers its identifier so that artifacts built by an older
// implementation read as stale once the implementation changes.
type Types struct {
	mu    sync.RWMutex
	types map[string]func() string
}

// NewTypes creates an empty type registry.
func NewTypes() *Types {
	return &Types{types: make(map[string]func() string)}
}

// Register associates id with a signature function, replacing any previous one.
func (t *Types) Register(id string, signature func() string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.types[id] = signature
}

// Signature returns the current signature for id.
func (t *Types) Signature(id string) (string, bool) {
	t.mu.RLock()
	fn, ok := t.types[id]
	t.mu.RUnlock()

	if !ok {
		return "", false
	}
	return fn(), true
}
