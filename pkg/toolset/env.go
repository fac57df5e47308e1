package toolset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// addPathKey is a reserved ExecEnv key. Env drops it from its result, and
// no function in this package adds its value to PATH: PATH is built from
// ListBinPaths alone (see binPaths).
const addPathKey = "FORGE_ADD_PATH"

// Env composes the plain key/value environment contributed by every
// resolved, non-disabled forge. Forges are folded in reverse declaration
// order so that, when two forges export the same key, the earlier-listed
// one wins. Entries under addPathKey are discarded; use EnvWithPath or
// FullEnv for PATH.
func (t *Toolset) Env() (map[string]string, error) {
	env := map[string]string{}
	for i := len(t.order) - 1; i >= 0; i-- {
		fa := t.order[i]
		if !t.passesFilter(fa) {
			continue
		}
		backend, err := t.resolver.Get(fa)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fa, err)
		}
		for _, tv := range t.versions[fa].Versions {
			tvEnv, err := backend.ExecEnv(tv)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", fa, err)
			}
			for k, v := range tvEnv {
				if k == addPathKey {
					continue
				}
				env[k] = v
			}
		}
	}
	return env, nil
}

// EnvWithPath is Env plus a PATH key built from every backend's bin
// paths, each resolved version contributing its directories ahead of
// the inherited PATH — so a forge declared later in the Toolset takes
// precedence over one declared earlier, matching installer-shim
// precedence rules.
func (t *Toolset) EnvWithPath(basePath string) (map[string]string, error) {
	env, err := t.Env()
	if err != nil {
		return nil, err
	}
	paths, err := t.binPaths()
	if err != nil {
		return nil, err
	}
	env["PATH"] = joinPath(paths, basePath)
	return env, nil
}

// FullEnv is EnvWithPath seeded from the current process environment,
// the composition callers use to exec a child process.
func (t *Toolset) FullEnv() (map[string]string, error) {
	env, err := t.EnvWithPath(os.Getenv("PATH"))
	if err != nil {
		return nil, err
	}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		if _, overridden := env[k]; !overridden {
			env[k] = v
		}
	}
	return env, nil
}

// binPaths collects bin directories from every resolved version, in
// reverse declaration order: forges added later shadow earlier ones on
// PATH, matching shell convention where the last export wins.
func (t *Toolset) binPaths() ([]string, error) {
	var paths []string
	for i := len(t.order) - 1; i >= 0; i-- {
		fa := t.order[i]
		if !t.passesFilter(fa) {
			continue
		}
		backend, err := t.resolver.Get(fa)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fa, err)
		}
		versions := t.versions[fa].Versions
		for j := len(versions) - 1; j >= 0; j-- {
			tv := versions[j]
			if tv.IsSystem() {
				continue
			}
			binPaths, err := backend.ListBinPaths(tv)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", fa, err)
			}
			paths = append(paths, binPaths...)
		}
	}
	return paths, nil
}

func joinPath(dirs []string, base string) string {
	if base == "" {
		return strings.Join(dirs, string(filepath.ListSeparator))
	}
	if len(dirs) == 0 {
		return base
	}
	return strings.Join(dirs, string(filepath.ListSeparator)) + string(filepath.ListSeparator) + base
}
