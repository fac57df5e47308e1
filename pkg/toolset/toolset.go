// Package toolset implements the core aggregate of the runtime version
// manager: a merged set of per-forge requested/resolved versions, the
// Backend capability contract, and the concurrent install scheduler.
package toolset

import (
	"fmt"
	"strings"

	"github.com/forgeware/forge/pkg/forgeid"
)

// Toolset is the in-memory union of every tool a project or command
// invocation asked for, keyed by forge identity. Construction order is
// preserved so output (ls, env) is stable and matches the declaration
// order of the active source.
type Toolset struct {
	versions map[forgeid.ForgeId]ToolVersionList
	order    []forgeid.ForgeId

	source ToolSource

	disableTools  map[forgeid.ForgeId]bool
	toolFilter    map[forgeid.ForgeId]bool // nil means "no filter, all tools"
	installedOnly bool

	resolver BackendResolver
}

// New creates an empty Toolset stamped with its active source and wired
// to a BackendResolver for resolve/install operations.
func New(source ToolSource, resolver BackendResolver) *Toolset {
	return &Toolset{
		versions:     map[forgeid.ForgeId]ToolVersionList{},
		source:       source,
		disableTools: map[forgeid.ForgeId]bool{},
		resolver:     resolver,
	}
}

// Source returns the Toolset's active ToolSource.
func (t *Toolset) Source() ToolSource { return t.source }

// DisableTools marks forges to be skipped entirely by Resolve, Install
// and every listing/query. Their entries stay stored in the Toolset but
// are not returned by ListToolVersionLists.
func (t *Toolset) DisableTools(forges ...forgeid.ForgeId) {
	for _, fa := range forges {
		t.disableTools[fa] = true
	}
}

// IsDisabled reports whether a forge has been disabled.
func (t *Toolset) IsDisabled(fa forgeid.ForgeId) bool {
	return t.disableTools[fa]
}

// SetToolFilter restricts every subsequent query/operation to the given
// forges. An empty filter means "no restriction".
func (t *Toolset) SetToolFilter(forges ...forgeid.ForgeId) {
	if len(forges) == 0 {
		t.toolFilter = nil
		return
	}
	filter := make(map[forgeid.ForgeId]bool, len(forges))
	for _, fa := range forges {
		filter[fa] = true
	}
	t.toolFilter = filter
}

// SetInstalledOnly records the installed-only flag. No query, Resolve or
// Install consults it, so setting it does not change their results.
func (t *Toolset) SetInstalledOnly(only bool) { t.installedOnly = only }

func (t *Toolset) passesFilter(fa forgeid.ForgeId) bool {
	if t.disableTools[fa] {
		return false
	}
	if t.toolFilter == nil {
		return true
	}
	return t.toolFilter[fa]
}

// AddVersion appends one request to the forge's list, creating the list
// (and recording declaration order) on first use.
func (t *Toolset) AddVersion(req ToolRequest) {
	fa := req.GetForge()
	list, ok := t.versions[fa]
	if !ok {
		list = NewToolVersionList(fa, t.source)
		t.order = append(t.order, fa)
	}
	list.Requests = append(list.Requests, req)
	t.versions[fa] = list
}

// Merge folds another Toolset into this one with other as the base: for
// a forge present in both, other's entire ToolVersionList replaces this
// Toolset's own, full stop — the receiver's requests for that forge are
// discarded, not combined. Only forges other doesn't mention keep this
// Toolset's entry. So `Merge([A,B], [C,A])` yields `[C,A,B]`: C is new,
// A is entirely replaced by other's A, B survives untouched.
func (t *Toolset) Merge(other *Toolset) {
	inOther := make(map[forgeid.ForgeId]bool, len(other.order))
	for _, fa := range other.order {
		t.versions[fa] = other.versions[fa]
		inOther[fa] = true
	}
	// Other's forges lead the new order (they're the overriding set), followed
	// by forges that only the base had, in their original relative order.
	newOrder := make([]forgeid.ForgeId, 0, len(t.order)+len(other.order))
	newOrder = append(newOrder, other.order...)
	for _, fa := range t.order {
		if !inOther[fa] {
			newOrder = append(newOrder, fa)
		}
	}
	t.order = newOrder
	// the other Toolset's source becomes active: later merges win, matching
	// how a closer project config should shadow a parent's.
	t.source = other.source
}

// Resolve resolves every non-disabled, filter-passing forge's requests
// against its backend. latestVersions forces "latest" resolution
// regardless of each request's declared spec.
// Errors from individual forges are aggregated, not short-circuited, so
// one broken tool doesn't hide resolution failures in the rest.
func (t *Toolset) Resolve(latestVersions bool) error {
	var errs []string
	for _, fa := range t.order {
		if !t.passesFilter(fa) {
			continue
		}
		list := t.versions[fa]
		backend, err := t.resolver.Get(fa)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", fa, err))
			continue
		}
		if err := list.Resolve(backend, latestVersions); err != nil {
			errs = append(errs, err.Error())
		}
		t.versions[fa] = list
	}
	if len(errs) > 0 {
		return fmt.Errorf("resolving toolset: %s", strings.Join(errs, "; "))
	}
	return nil
}

// ListToolVersionLists returns every forge's list, in declaration order,
// honoring the active filter and skipping disabled forges.
func (t *Toolset) ListToolVersionLists() []ToolVersionList {
	out := make([]ToolVersionList, 0, len(t.order))
	for _, fa := range t.order {
		if !t.passesFilter(fa) {
			continue
		}
		out = append(out, t.versions[fa])
	}
	return out
}

// ListCurrentVersions flattens every forge's resolved ToolVersions, in
// declaration order. Resolve must have been called first.
func (t *Toolset) ListCurrentVersions() []ToolVersion {
	var out []ToolVersion
	for _, list := range t.ListToolVersionLists() {
		out = append(out, list.Versions...)
	}
	return out
}

// ListInstalledVersions flattens every forge's actually-installed
// versions as reported by its backend, independent of what was
// requested.
func (t *Toolset) ListInstalledVersions() ([]ToolVersion, error) {
	var out []ToolVersion
	for _, fa := range t.order {
		if !t.passesFilter(fa) {
			continue
		}
		backend, err := t.resolver.Get(fa)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fa, err)
		}
		installed, err := backend.ListInstalledVersions()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fa, err)
		}
		for _, v := range installed {
			out = append(out, ToolVersion{Forge: fa, Version: v})
		}
	}
	return out, nil
}

// Get returns the ToolVersionList for a forge, if present.
func (t *Toolset) Get(fa forgeid.ForgeId) (ToolVersionList, bool) {
	list, ok := t.versions[fa]
	return list, ok
}

// Resolver returns the BackendResolver this Toolset was constructed
// with, for callers (install, env) that need direct backend access.
func (t *Toolset) Resolver() BackendResolver { return t.resolver }

func (t *Toolset) String() string {
	var b strings.Builder
	for i, fa := range t.order {
		if i > 0 {
			b.WriteString(" ")
		}
		list := t.versions[fa]
		if len(list.Versions) > 0 {
			versions := make([]string, len(list.Versions))
			for i, v := range list.Versions {
				versions[i] = v.Version
			}
			fmt.Fprintf(&b, "%s@%s", fa, strings.Join(versions, ","))
			continue
		}
		b.WriteString(fa.String())
	}
	return b.String()
}
