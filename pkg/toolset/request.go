package toolset

import (
	"fmt"

	"github.com/forgeware/forge/pkg/forgeid"
)

// RequestKind is the closed enum of ways a version can be desired.
type RequestKind int

const (
	// RequestVersion names an explicit version spec ("20", "20.1.0", "^20").
	RequestVersion RequestKind = iota
	// RequestPrefix matches a version by prefix (e.g. "20" matching
	// "20.11.0"). It resolves the same way as RequestVersion: the prefix is
	// passed to the backend's ResolveVersion.
	RequestPrefix
	// RequestRef pins a VCS ref (branch, tag, commit) instead of a version.
	RequestRef
	// RequestPath overrides the tool with a local path, never installed.
	RequestPath
	// RequestSystem uses whatever the host already has on PATH, never
	// installed by forge.
	RequestSystem
)

func (k RequestKind) String() string {
	switch k {
	case RequestVersion:
		return "version"
	case RequestPrefix:
		return "prefix"
	case RequestRef:
		return "ref"
	case RequestPath:
		return "path"
	case RequestSystem:
		return "system"
	default:
		return "unknown"
	}
}

// ToolRequestOptions is an unordered option bag attached to a request (e.g.
// "exe=node.exe"), carried through to backend installs verbatim.
type ToolRequestOptions map[string]string

// ToolRequest is one desired version for a forge, as declared by a config
// file or CLI argument, before resolution against a backend.
type ToolRequest struct {
	Kind    RequestKind
	Forge   forgeid.ForgeId
	Version string // spec string for Version/Prefix, ref name for Ref, path for Path
	Options ToolRequestOptions
	deps    []forgeid.ForgeId
}

// NewVersionRequest builds a RequestVersion.
func NewVersionRequest(fa forgeid.ForgeId, version string, opts ToolRequestOptions) ToolRequest {
	return ToolRequest{Kind: RequestVersion, Forge: fa, Version: version, Options: opts}
}

// NewPrefixRequest builds a RequestPrefix.
func NewPrefixRequest(fa forgeid.ForgeId, prefix string) ToolRequest {
	return ToolRequest{Kind: RequestPrefix, Forge: fa, Version: prefix}
}

// NewRefRequest builds a RequestRef.
func NewRefRequest(fa forgeid.ForgeId, ref string) ToolRequest {
	return ToolRequest{Kind: RequestRef, Forge: fa, Version: ref}
}

// NewPathRequest builds a RequestPath.
func NewPathRequest(fa forgeid.ForgeId, path string) ToolRequest {
	return ToolRequest{Kind: RequestPath, Forge: fa, Version: path}
}

// NewSystemRequest builds a RequestSystem.
func NewSystemRequest(fa forgeid.ForgeId) ToolRequest {
	return ToolRequest{Kind: RequestSystem, Forge: fa}
}

// WithDependencies attaches the static set of ForgeIds this request needs
// installed before it (e.g. a Maven toolchain might depend on a JDK).
func (r ToolRequest) WithDependencies(deps ...forgeid.ForgeId) ToolRequest {
	r.deps = deps
	return r
}

// GetForge returns the ForgeId this request resolves against.
func (r ToolRequest) GetForge() forgeid.ForgeId { return r.Forge }

// Dependencies returns the static set of ForgeIds this request needs
// installed first, as declared at request-construction time.
func (r ToolRequest) Dependencies() ([]forgeid.ForgeId, error) {
	return r.deps, nil
}

func (r ToolRequest) String() string {
	if r.Version == "" {
		return r.Forge.String()
	}
	return fmt.Sprintf("%s@%s", r.Forge, r.Version)
}

// Resolve resolves this request against a backend into a concrete
// ToolVersion. System and Path requests resolve without calling the
// backend at all — they never install.
func (r ToolRequest) Resolve(backend Backend, latestVersions bool) (ToolVersion, error) {
	switch r.Kind {
	case RequestSystem:
		return ToolVersion{Forge: r.Forge, Version: "system", Request: r}, nil
	case RequestPath:
		return ToolVersion{Forge: r.Forge, Version: r.Version, Request: r}, nil
	case RequestRef:
		return ToolVersion{Forge: r.Forge, Version: r.Version, Request: r}, nil
	case RequestPrefix, RequestVersion:
		resolved, err := resolveVersionSpec(backend, r.Version, latestVersions)
		if err != nil {
			return ToolVersion{}, fmt.Errorf("resolving %s: %w", r, err)
		}
		return ToolVersion{Forge: r.Forge, Version: resolved, Request: r}, nil
	default:
		return ToolVersion{}, fmt.Errorf("unknown request kind for %s", r)
	}
}

func resolveVersionSpec(backend Backend, spec string, latestVersions bool) (string, error) {
	if latestVersions {
		spec = "latest"
	}
	return backend.ResolveVersion(spec)
}
