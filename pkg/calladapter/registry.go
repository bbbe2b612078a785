package calladapter

import (
	"sync"

	"github.com/ooni/netresult/internal/runtimex"
)

// Registry asks factories in registration order.
type Registry struct {
	factories []Factory
	mu        sync.Mutex
}

// NewRegistry creates a Registry with the given factories.
func NewRegistry(factories ...Factory) *Registry {
	return &Registry{factories: factories}
}

// NewDefaultRegistry creates a Registry containing ResultFactory.
func NewDefaultRegistry() *Registry {
	return NewRegistry(ResultFactory{})
}

// Register appends a factory.
func (r *Registry) Register(factory Factory) {
	runtimex.PanicIfNil(factory, "calladapter: Register called with nil factory")
	r.mu.Lock()
	r.factories = append(r.factories, factory)
	r.mu.Unlock()
}

// Lookup returns the adapter of the first factory claiming decl. It
// returns the first *ConfigError returned by a factory, or a
// *ConfigError wrapping ErrNoAdapter if all of them decline.
func (r *Registry) Lookup(decl Declaration) (*Adapter, error) {
	r.mu.Lock()
	factories := append([]Factory{}, r.factories...)
	r.mu.Unlock()
	for _, factory := range factories {
		adapter, err := factory.Get(decl)
		if err != nil {
			return nil, err
		}
		if adapter != nil {
			return adapter, nil
		}
	}
	return nil, &ConfigError{Returns: decl.Returns, Err: ErrNoAdapter}
}

// MustLookup is like Lookup but panics on error.
func (r *Registry) MustLookup(decl Declaration) *Adapter {
	adapter, err := r.Lookup(decl)
	runtimex.PanicOnError(err, "calladapter: Lookup failed")
	return adapter
}
