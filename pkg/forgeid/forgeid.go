// Package forgeid implements the canonical identity of a (backend, name)
// pair: ForgeId. It also holds the process-lifetime alias Registry that
// rewrites short names to "backend:name" strings before parsing.
package forgeid

import (
	"fmt"
	"strings"

	"github.com/forgeware/forge/pkg/dirs"
)

// Backend is the closed set of backend kinds a ForgeId can name.
type Backend int

const (
	// Asdf is the default backend when no "backend:" prefix is given.
	Asdf Backend = iota
	Cargo
	Npm
	System
)

func (b Backend) String() string {
	switch b {
	case Asdf:
		return "asdf"
	case Cargo:
		return "cargo"
	case Npm:
		return "npm"
	case System:
		return "system"
	default:
		return "unknown"
	}
}

// ParseBackend parses a backend tag. An unrecognized tag is reported via ok=false
// so the caller can fall back to treating the whole string as an Asdf tool name.
func ParseBackend(s string) (b Backend, ok bool) {
	switch s {
	case "asdf":
		return Asdf, true
	case "cargo":
		return Cargo, true
	case "npm":
		return Npm, true
	case "system":
		return System, true
	default:
		return Asdf, false
	}
}

// ForgeId is the canonical identity of a (backend, name) pair: stable id,
// filesystem-safe path stem, equality and hash depend only on Id.
type ForgeId struct {
	Backend       Backend
	Name          string
	Id            string
	Input         string
	CachePath     string
	InstallsPath  string
	DownloadsPath string
}

var pathUnsafe = strings.NewReplacer("/", "-", ":", "-")

// New builds a ForgeId from an already-split (backend, name) pair.
func New(backend Backend, name string) ForgeId {
	name = unaliasForgeName(name)
	id := name
	if backend != Asdf {
		id = fmt.Sprintf("%s:%s", backend, name)
	}
	slug := pathUnsafe.Replace(id)
	return ForgeId{
		Backend:       backend,
		Name:          name,
		Id:            id,
		Input:         name,
		CachePath:     dirs.Join(dirs.Cache(), slug),
		InstallsPath:  dirs.Join(dirs.Installs(), slug),
		DownloadsPath: dirs.Join(dirs.Downloads(), slug),
	}
}

// FromString parses a user-facing "[backend:]name" string into a ForgeId,
// applying the Registry alias first and the name-level unalias second.
//
//  1. Registry alias rewrite of the whole input string.
//  2. split on the first ':'; a recognized prefix selects the backend.
//  3. unaliasForgeName(name).
//  4. Id is name for Asdf, "backend:name" otherwise.
//  5. slug replaces '/' and ':' with '-'.
func FromString(input string) ForgeId {
	s := input
	if alias, ok := Lookup(input); ok {
		s = alias
	}
	if backendTag, name, found := strings.Cut(s, ":"); found {
		if backend, ok := ParseBackend(backendTag); ok {
			fa := New(backend, name)
			fa.Input = input
			return fa
		}
	}
	fa := New(Asdf, s)
	fa.Input = input
	return fa
}

// Equal compares ForgeIds by Id only, per the identity invariant.
func (f ForgeId) Equal(other ForgeId) bool {
	return f.Id == other.Id
}

func (f ForgeId) String() string {
	return f.Id
}

// nameAliases is the name-level (post-backend-split) alias table. Kept
// separate from the Registry, which rewrites whole "backend:name" strings.
var nameAliases = map[string]string{}

func unaliasForgeName(name string) string {
	if alias, ok := nameAliases[name]; ok {
		return alias
	}
	return name
}
