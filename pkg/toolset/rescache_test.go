package toolset

import (
	"errors"
	"testing"

	"github.com/forgeware/forge/pkg/forgeid"
)

type countingVersionsBackend struct {
	fakeBackend
	calls int
	err   error
}

func (c *countingVersionsBackend) ListVersions() ([]string, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return c.versions, nil
}

func TestCachingBackendServesFromCache(t *testing.T) {
	fa := forgeid.FromString("node")
	backend := &countingVersionsBackend{fakeBackend: fakeBackend{fa: fa, versions: []string{"20.11.0"}}}
	cache := NewResolveCache(16)
	cb := NewCachingBackend(backend, cache)

	if _, err := cb.ListVersions(); err != nil {
		t.Fatalf("ListVersions() error: %v", err)
	}
	if _, err := cb.ListVersions(); err != nil {
		t.Fatalf("ListVersions() second call error: %v", err)
	}
	if backend.calls != 1 {
		t.Errorf("expected the wrapped backend to be called once, got %d calls", backend.calls)
	}
}

func TestCachingBackendDoesNotCacheErrors(t *testing.T) {
	fa := forgeid.FromString("node")
	backend := &countingVersionsBackend{fakeBackend: fakeBackend{fa: fa}, err: errors.New("network down")}
	cache := NewResolveCache(16)
	cb := NewCachingBackend(backend, cache)

	if _, err := cb.ListVersions(); err == nil {
		t.Fatalf("expected an error from the first call")
	}
	if _, err := cb.ListVersions(); err == nil {
		t.Fatalf("expected an error from the second call too")
	}
	if backend.calls != 2 {
		t.Errorf("expected a failed fetch not to be cached, got %d calls", backend.calls)
	}
}

func TestCachingBackendKeyedPerBackend(t *testing.T) {
	node := forgeid.FromString("node")
	python := forgeid.FromString("python")
	nodeBackend := &countingVersionsBackend{fakeBackend: fakeBackend{fa: node, versions: []string{"20.11.0"}}}
	pyBackend := &countingVersionsBackend{fakeBackend: fakeBackend{fa: python, versions: []string{"3.12.0"}}}
	cache := NewResolveCache(16)

	nodeCached := NewCachingBackend(nodeBackend, cache)
	pyCached := NewCachingBackend(pyBackend, cache)

	nv, _ := nodeCached.ListVersions()
	pv, _ := pyCached.ListVersions()
	if nv[0] != "20.11.0" || pv[0] != "3.12.0" {
		t.Errorf("expected each backend's own versions, got %v and %v", nv, pv)
	}
	if nodeBackend.calls != 1 || pyBackend.calls != 1 {
		t.Errorf("expected each backend fetched exactly once, got %d and %d", nodeBackend.calls, pyBackend.calls)
	}
}
