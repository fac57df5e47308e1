// Package runtimesymlinks maintains the "current version" convenience
// symlinks (e.g. installs/node/current -> installs/node/20.11.0) that
// let tooling outside forge (editor integrations, IDE run configs) find
// an active install without reading forge's own state — the second
// post-install hook run once per batch.
package runtimesymlinks

import (
	"fmt"
	"os"
	"path/filepath"
)

const currentName = "current"

// Update points <installsDir>/current at version, replacing any
// previous symlink. A plain directory at that path (never created by
// forge) is left untouched and reported as an error, since removing it
// could destroy an unrelated install.
func Update(installsDir, version string) error {
	link := filepath.Join(installsDir, currentName)
	target := filepath.Join(installsDir, version)

	info, err := os.Lstat(link)
	switch {
	case err == nil && info.Mode()&os.ModeSymlink == 0:
		return fmt.Errorf("%s exists and is not a symlink; refusing to overwrite", link)
	case err == nil:
		if err := os.Remove(link); err != nil {
			return fmt.Errorf("removing stale symlink %s: %w", link, err)
		}
	case !os.IsNotExist(err):
		return fmt.Errorf("stat %s: %w", link, err)
	}

	if err := os.Symlink(target, link); err != nil {
		return fmt.Errorf("linking %s -> %s: %w", link, target, err)
	}
	return nil
}

// Resolve reads the current version pointed to by <installsDir>/current,
// if any.
func Resolve(installsDir string) (string, bool) {
	link := filepath.Join(installsDir, currentName)
	target, err := os.Readlink(link)
	if err != nil {
		return "", false
	}
	return filepath.Base(target), true
}
