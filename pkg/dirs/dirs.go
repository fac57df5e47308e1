// Package dirs holds the process-wide directory layout singletons: the
// three parallel bases (cache/installs/downloads) every ForgeId is
// namespaced under. Backed by afero so tests can swap in an in-memory
// filesystem instead of touching the real one.
package dirs

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
)

var (
	mu          sync.RWMutex
	fs          afero.Fs = afero.NewOsFs()
	baseDir     string
	initialized bool
)

// Init sets the root directory that cache/installs/downloads live under,
// and the filesystem implementation to use. Call once at program start;
// tests may call it again with afero.NewMemMapFs() for isolation.
func Init(root string, f afero.Fs) {
	mu.Lock()
	defer mu.Unlock()
	baseDir = root
	fs = f
	initialized = true
}

func ensureInit() {
	mu.RLock()
	ok := initialized
	mu.RUnlock()
	if ok {
		return
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	Init(filepath.Join(home, ".forge"), afero.NewOsFs())
}

// FS returns the shared filesystem handle.
func FS() afero.Fs {
	ensureInit()
	mu.RLock()
	defer mu.RUnlock()
	return fs
}

// Base returns the root directory forge stores all of its state under.
func Base() string {
	ensureInit()
	mu.RLock()
	defer mu.RUnlock()
	return baseDir
}

// Cache returns the base directory for per-forge cache/<slug> dirs.
func Cache() string { return filepath.Join(Base(), "cache") }

// Installs returns the base directory for per-forge installs/<slug> dirs.
func Installs() string { return filepath.Join(Base(), "installs") }

// Downloads returns the base directory for per-forge downloads/<slug> dirs.
func Downloads() string { return filepath.Join(Base(), "downloads") }

// State returns <base>/state, a directory for forge's own bookkeeping,
// distinct from per-tool install trees.
func State() string { return filepath.Join(Base(), "state") }

// Join is a small filepath.Join wrapper kept here so callers that only
// import dirs don't also need path/filepath for this one use.
func Join(elem ...string) string { return filepath.Join(elem...) }

// MkdirAll ensures dir exists on the configured filesystem.
func MkdirAll(dir string) error {
	return FS().MkdirAll(dir, 0o755)
}
