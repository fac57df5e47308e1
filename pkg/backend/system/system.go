// Package system implements toolset.Backend for the "system" forge:
// tools forge never installs, only discovers on the host's PATH — one
// backend that works for any binary name rather than one per tool.
package system

import (
	"fmt"
	"os/exec"

	"github.com/forgeware/forge/pkg/forgeid"
	"github.com/forgeware/forge/pkg/toolset"
)

// Backend looks up Name on the host PATH instead of installing anything.
type Backend struct {
	fa   forgeid.ForgeId
	name string
}

// New builds a system Backend for the given forge identity.
func New(fa forgeid.ForgeId) *Backend {
	return &Backend{fa: fa, name: fa.Name}
}

func (b *Backend) Id() string               { return b.fa.Id }
func (b *Backend) ForgeId() forgeid.ForgeId { return b.fa }

// IsInstalled reports whether the binary is found on PATH at all.
func (b *Backend) IsInstalled() bool {
	_, err := exec.LookPath(b.name)
	return err == nil
}

// EnsureInstalled never installs anything: forge never installs system
// tools. It returns an error when the binary is not on PATH.
func (b *Backend) EnsureInstalled(progress toolset.ProgressReporter, force bool) error {
	if !b.IsInstalled() {
		return fmt.Errorf("system tool %q not found on PATH", b.name)
	}
	return nil
}

// IsVersionInstalled is always true once the binary is found: there is
// exactly one "version" — whatever the host currently has.
func (b *Backend) IsVersionInstalled(tv toolset.ToolVersion) bool {
	return b.IsInstalled()
}

func (b *Backend) ListInstalledVersions() ([]string, error) {
	if !b.IsInstalled() {
		return nil, nil
	}
	return []string{"system"}, nil
}

// InstallVersion installs nothing: installing a system tool means the
// user installed it outside of forge. It returns an error when the
// binary is not on PATH.
func (b *Backend) InstallVersion(ctx toolset.InstallContext) error {
	if !b.IsInstalled() {
		return fmt.Errorf("system tool %q not found on PATH", b.name)
	}
	return nil
}

func (b *Backend) GetDependencies(tv toolset.ToolVersion) ([]forgeid.ForgeId, error) {
	return nil, nil
}

// ExecEnv contributes nothing: a system tool's own installer already
// set up whatever environment it needs.
func (b *Backend) ExecEnv(tv toolset.ToolVersion) (map[string]string, error) {
	return map[string]string{}, nil
}

// ListBinPaths is empty: system tools rely on the inherited PATH rather
// than a forge-managed bin directory.
func (b *Backend) ListBinPaths(tv toolset.ToolVersion) ([]string, error) {
	return nil, nil
}

func (b *Backend) Which(tv toolset.ToolVersion, binName string) (string, bool, error) {
	path, err := exec.LookPath(binName)
	if err != nil {
		return "", false, nil
	}
	return path, true, nil
}

// SymlinkPath always reports false: system tools are never symlinked
// installs, they're pure PATH lookups.
func (b *Backend) SymlinkPath(tv toolset.ToolVersion) (string, bool) {
	return "", false
}

func (b *Backend) ListVersions() ([]string, error) {
	return []string{"system"}, nil
}

func (b *Backend) ResolveVersion(spec string) (string, error) {
	return "system", nil
}
