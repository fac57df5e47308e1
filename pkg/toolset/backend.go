package toolset

import (
	"github.com/forgeware/forge/pkg/forgeid"
)

// ProgressReporter is the narrow slice of UI progress reporting the core
// needs from backends/install — the real implementation lives in pkg/ui
// and is supplied by the caller, keeping this package UI-agnostic.
type ProgressReporter interface {
	// Add creates a sub-progress for one tool install, labeled by style.
	Add(style string) ProgressReporter
	// Println emits a status line on this progress's track.
	Println(msg string)
}

// InstallContext carries everything a backend needs to perform one
// install: the resolved version, force flag, and a progress handle scoped
// to this install. The live Toolset is intentionally NOT referenced here,
// since a backend only ever needs read-only diagnostics from it, to avoid
// a backend<->toolset import cycle; see DESIGN.md.
type InstallContext struct {
	ToolVersion ToolVersion
	Force       bool
	Progress    ProgressReporter
}

// Backend is the capability set every tool-family implementation
// provides: install, list, which, env, deps.
type Backend interface {
	Id() string
	ForgeId() forgeid.ForgeId

	// IsInstalled reports whether the backend/plugin itself (not a
	// specific version) is available.
	IsInstalled() bool
	// EnsureInstalled installs the plugin/driver itself, idempotently.
	EnsureInstalled(progress ProgressReporter, force bool) error

	IsVersionInstalled(tv ToolVersion) bool
	ListInstalledVersions() ([]string, error)
	InstallVersion(ctx InstallContext) error

	// GetDependencies returns the runtime dependencies of a resolved
	// version — a subset of the originating request's Dependencies(),
	// known only once the version is concrete.
	GetDependencies(tv ToolVersion) ([]forgeid.ForgeId, error)

	ExecEnv(tv ToolVersion) (map[string]string, error)
	ListBinPaths(tv ToolVersion) ([]string, error)
	Which(tv ToolVersion, binName string) (string, bool, error)
	// SymlinkPath returns the symlink target path if this version is a
	// symlinked (e.g. system-linked) install, distinguishing it from a
	// regular managed install for outdated-checks.
	SymlinkPath(tv ToolVersion) (string, bool)

	// ListVersions returns all versions this backend knows how to
	// install, for spec resolution and latest-version lookups.
	ListVersions() ([]string, error)
	// ResolveVersion resolves a version spec ("20", "lts", "^20") to one
	// concrete version string from ListVersions().
	ResolveVersion(spec string) (string, error)
}

// BackendResolver looks up the Backend responsible for a ForgeId. Kept as
// an interface injected into Toolset constructors (rather than a concrete
// package import), so tests can supply fakes and so the dependency runs
// one way — this also breaks what would otherwise be an import cycle
// between pkg/toolset and pkg/backend (backend implementations import
// toolset.Backend to implement it).
type BackendResolver interface {
	Get(fa forgeid.ForgeId) (Backend, error)
	List() []Backend
}
