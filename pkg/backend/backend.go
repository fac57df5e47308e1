// Package backend wires concrete per-forge-family implementations
// (asdf, cargo, npm, system) behind toolset.BackendResolver, the
// injected singleton lookup used to construct and cache one backend per
// forge identity on first use.
package backend

import (
	"fmt"
	"sync"

	"github.com/forgeware/forge/pkg/backend/asdf"
	"github.com/forgeware/forge/pkg/backend/cargo"
	"github.com/forgeware/forge/pkg/backend/npm"
	"github.com/forgeware/forge/pkg/backend/system"
	"github.com/forgeware/forge/pkg/forgeid"
	"github.com/forgeware/forge/pkg/toolset"
)

// Resolver implements toolset.BackendResolver, lazily constructing and
// caching one Backend instance per ForgeId.
type Resolver struct {
	mu       sync.Mutex
	backends map[forgeid.ForgeId]toolset.Backend
	cache    *toolset.ResolveCache
}

// defaultResolveCacheSize bounds how many distinct forges' version
// lists stay memoized at once; each entry still expires after 24h
// regardless (pkg/toolset/rescache.go).
const defaultResolveCacheSize = 256

// NewResolver builds an empty Resolver, wrapping every constructed
// Backend in a 24h version-listing cache.
func NewResolver() *Resolver {
	return &Resolver{
		backends: map[forgeid.ForgeId]toolset.Backend{},
		cache:    toolset.NewResolveCache(defaultResolveCacheSize),
	}
}

// Get returns the Backend for fa, constructing it on first use.
func (r *Resolver) Get(fa forgeid.ForgeId) (toolset.Backend, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.backends[fa]; ok {
		return b, nil
	}
	raw, err := newBackend(fa)
	if err != nil {
		return nil, err
	}
	b := toolset.Backend(toolset.NewCachingBackend(raw, r.cache))
	r.backends[fa] = b
	return b, nil
}

// List returns every Backend constructed so far, in no particular order.
func (r *Resolver) List() []toolset.Backend {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]toolset.Backend, 0, len(r.backends))
	for _, b := range r.backends {
		out = append(out, b)
	}
	return out
}

func newBackend(fa forgeid.ForgeId) (toolset.Backend, error) {
	switch fa.Backend {
	case forgeid.Asdf:
		return asdf.New(fa), nil
	case forgeid.Cargo:
		return cargo.New(fa), nil
	case forgeid.Npm:
		return npm.New(fa), nil
	case forgeid.System:
		return system.New(fa), nil
	default:
		return nil, fmt.Errorf("no backend registered for %s", fa)
	}
}
