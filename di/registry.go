package di

import (
	"errors"
	"fmt"
)

// Registry looks up optional dependencies at build time.
//
// Implementations must be read-only. cfg is whatever configuration the caller
// builds with; MapRegistry ignores it.
type Registry interface {
	Resolve(cfg any, key string) (val any, ok bool, err error)
}

// ErrRegistryPanic is returned when a Registry panics inside Resolve.
var ErrRegistryPanic = errors.New("registry: panic during Resolve")

// MapRegistry is an in-memory Registry.
type MapRegistry struct {
	items map[string]any
}

func NewMapRegistry() *MapRegistry {
	return &MapRegistry{items: map[string]any{}}
}

// Provide stores val under key and returns r for chaining.
func (r *MapRegistry) Provide(key string, val any) *MapRegistry {
	r.items[key] = val
	return r
}

// Resolve implements Registry.
func (r *MapRegistry) Resolve(_ any, key string) (val any, ok bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			val, ok = nil, false
			err = fmt.Errorf("%w: %v", ErrRegistryPanic, rec)
		}
	}()

	v, ok := r.items[key]
	return v, ok, nil
}

// Get returns the value stored under key.
func (r *MapRegistry) Get(key string) (any, bool) {
	v, ok := r.items[key]
	return v, ok
}

// SafeResolve calls reg.Resolve, converting a panic into ErrRegistryPanic.
// A nil reg resolves nothing.
func SafeResolve(reg Registry, cfg any, key string) (val any, ok bool, err error) {
	if reg == nil {
		return nil, false, nil
	}
	defer func() {
		if rec := recover(); rec != nil {
			val, ok = nil, false
			err = fmt.Errorf("%w: %v", ErrRegistryPanic, rec)
		}
	}()
	return reg.Resolve(cfg, key)
}
