// Package shims rebuilds the flat directory of executable shim scripts
// that forward to the currently-active version of each installed tool's
// binaries — a single post-install hook run once after an entire install
// batch completes, rather than once per tool.
package shims

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/forgeware/forge/pkg/dirs"
)

const shimTemplateUnix = "#!/bin/sh\nexec \"%s\" \"$@\"\n"

// Dir returns the directory shims are written to.
func Dir() string {
	return dirs.Join(dirs.Base(), "shims")
}

// Rebuild regenerates every shim in Dir() from the given bin name ->
// target executable path mapping, removing any shim no longer present
// in the mapping. It is safe to call after every install batch: it
// fully replaces the shim directory's contents rather than
// incrementally patching it, so a removed tool's stale shim can't
// linger.
func Rebuild(binTargets map[string]string) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating shim directory: %w", err)
	}

	existing, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading shim directory: %w", err)
	}
	keep := make(map[string]bool, len(binTargets))
	for name := range binTargets {
		keep[shimName(name)] = true
	}
	for _, entry := range existing {
		if !keep[entry.Name()] {
			_ = os.Remove(filepath.Join(dir, entry.Name()))
		}
	}

	for name, target := range binTargets {
		if err := writeShim(filepath.Join(dir, shimName(name)), target); err != nil {
			return err
		}
	}
	return nil
}

func shimName(bin string) string {
	if runtime.GOOS == "windows" {
		return bin + ".cmd"
	}
	return bin
}

func writeShim(path, target string) error {
	if runtime.GOOS == "windows" {
		content := fmt.Sprintf("@echo off\r\n\"%s\" %%*\r\n", target)
		return os.WriteFile(path, []byte(content), 0o755)
	}
	content := fmt.Sprintf(shimTemplateUnix, target)
	return os.WriteFile(path, []byte(content), 0o755)
}
