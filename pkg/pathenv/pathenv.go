// Package pathenv snapshots the process's pristine PATH (and other
// inherited environment) as it was when the process first asked for it,
// plus helpers to prepend directories to a PATH value and strip them
// again.
package pathenv

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	once      sync.Once
	pristine  []string
	pristineM map[string]string
)

// snapshot captures os.Environ() exactly once per process.
func snapshot() {
	pristine = filepath.SplitList(os.Getenv("PATH"))
	pristineM = map[string]string{}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			pristineM[k] = v
		}
	}
}

// Pristine returns the PATH entries present when the process started,
// before any forge-managed directory was prepended.
func Pristine() []string {
	once.Do(snapshot)
	out := make([]string, len(pristine))
	copy(out, pristine)
	return out
}

// PristineEnv returns the full inherited environment snapshot.
func PristineEnv() map[string]string {
	once.Do(snapshot)
	out := make(map[string]string, len(pristineM))
	for k, v := range pristineM {
		out[k] = v
	}
	return out
}

// Prepend builds a new PATH value with dirs placed ahead of base.
func Prepend(dirs []string, base string) string {
	if len(dirs) == 0 {
		return base
	}
	joined := strings.Join(dirs, string(os.PathListSeparator))
	if base == "" {
		return joined
	}
	return joined + string(os.PathListSeparator) + base
}

// Strip removes any of the given directories from a PATH value,
// preserving the order of what remains, so a previous Prepend can be
// undone before composing a fresh PATH.
func Strip(pathValue string, dirs []string) string {
	remove := make(map[string]bool, len(dirs))
	for _, d := range dirs {
		remove[d] = true
	}
	var kept []string
	for _, entry := range filepath.SplitList(pathValue) {
		if !remove[entry] {
			kept = append(kept, entry)
		}
	}
	return strings.Join(kept, string(os.PathListSeparator))
}
