package generator

import (
	"go.trai.ch/warm/internal/core/domain"
	"go.trai.ch/warm/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Registry = (*Registry)(nil)

// Registry implements ports.Registry for the artifacts of one configuration.
type Registry struct {
	cfg      *domain.Config
	compiler *Compiler
}

// NewRegistry creates a registry serving every artifact declared in cfg.
func NewRegistry(cfg *domain.Config, compiler *Compiler) *Registry {
	return &Registry{cfg: cfg, compiler: compiler}
}

// Keys returns the configured keys in order.
func (r *Registry) Keys() []domain.CacheKey {
	return r.cfg.Keys()
}

// Generator returns the generator for key.
func (r *Registry) Generator(key domain.CacheKey) (ports.Generator, error) {
	spec, ok := r.cfg.Lookup(key)
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownCacheKey, "no artifact declared in "+domain.ConfigFileName), "key", key.String())
	}
	return r.compiler.Generator(r.cfg, spec), nil
}
