// Package cargo implements toolset.Backend over `cargo install`,
// installing each version into its own isolated --root directory so
// multiple versions of the same crate coexist side by side, the same
// per-version isolation the asdf backend gives every other forge.
package cargo

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/forgeware/forge/pkg/forgeid"
	"github.com/forgeware/forge/pkg/toolset"
)

// crateName strips a leading "cargo:" prefix some callers pass through
// verbatim from the forge's Name.
func crateName(fa forgeid.ForgeId) string {
	return strings.TrimPrefix(fa.Name, "cargo:")
}

// Backend installs one cargo crate's binaries per version.
type Backend struct {
	fa forgeid.ForgeId
}

// New builds a cargo Backend for the given forge identity.
func New(fa forgeid.ForgeId) *Backend {
	return &Backend{fa: fa}
}

func (b *Backend) Id() string               { return b.fa.Id }
func (b *Backend) ForgeId() forgeid.ForgeId { return b.fa }

func (b *Backend) IsInstalled() bool {
	_, err := exec.LookPath("cargo")
	return err == nil
}

func (b *Backend) EnsureInstalled(progress toolset.ProgressReporter, force bool) error {
	if !b.IsInstalled() {
		return fmt.Errorf("cargo not found on PATH; install Rust to use cargo: tools")
	}
	return nil
}

func (b *Backend) versionRoot(version string) string {
	return filepath.Join(b.fa.InstallsPath, version)
}

func (b *Backend) IsVersionInstalled(tv toolset.ToolVersion) bool {
	if tv.IsSystem() {
		return true
	}
	_, err := os.Stat(b.versionRoot(tv.Version))
	return err == nil
}

func (b *Backend) ListInstalledVersions() ([]string, error) {
	entries, err := os.ReadDir(b.fa.InstallsPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", b.fa.InstallsPath, err)
	}
	var versions []string
	for _, e := range entries {
		if e.IsDir() {
			versions = append(versions, e.Name())
		}
	}
	return versions, nil
}

func (b *Backend) InstallVersion(ctx toolset.InstallContext) error {
	tv := ctx.ToolVersion
	root := b.versionRoot(tv.Version)
	if ctx.Force {
		_ = os.RemoveAll(root)
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", root, err)
	}

	args := []string{"install", "--root", root, "--version", tv.Version, crateName(b.fa)}
	cmd := exec.Command("cargo", args...)
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr
	if ctx.Progress != nil {
		ctx.Progress.Println(fmt.Sprintf("cargo %s", strings.Join(args, " ")))
	}
	if err := cmd.Run(); err != nil {
		_ = os.RemoveAll(root)
		return fmt.Errorf("cargo install %s@%s: %w", crateName(b.fa), tv.Version, err)
	}
	return nil
}

func (b *Backend) GetDependencies(tv toolset.ToolVersion) ([]forgeid.ForgeId, error) {
	return nil, nil
}

func (b *Backend) ExecEnv(tv toolset.ToolVersion) (map[string]string, error) {
	return map[string]string{}, nil
}

func (b *Backend) ListBinPaths(tv toolset.ToolVersion) ([]string, error) {
	if tv.IsSystem() {
		return nil, nil
	}
	return []string{filepath.Join(b.versionRoot(tv.Version), "bin")}, nil
}

func (b *Backend) Which(tv toolset.ToolVersion, binName string) (string, bool, error) {
	paths, err := b.ListBinPaths(tv)
	if err != nil {
		return "", false, err
	}
	for _, dir := range paths {
		candidate := filepath.Join(dir, binName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true, nil
		}
	}
	return "", false, nil
}

func (b *Backend) SymlinkPath(tv toolset.ToolVersion) (string, bool) {
	return "", false
}

// ListVersions returns only the newest published version, as reported by
// the first line of `cargo search`; older versions are not listed.
func (b *Backend) ListVersions() ([]string, error) {
	cmd := exec.Command("cargo", "search", crateName(b.fa), "--limit", "1")
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("cargo search %s: %w", crateName(b.fa), err)
	}
	line := strings.SplitN(string(out), "\n", 2)[0]
	parts := strings.SplitN(line, "=", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("cargo search %s: unexpected output %q", crateName(b.fa), line)
	}
	version := strings.Trim(strings.TrimSpace(parts[1]), "\" ")
	version = strings.SplitN(version, " ", 2)[0]
	if version == "" {
		return nil, fmt.Errorf("cargo search %s: could not parse version", crateName(b.fa))
	}
	return []string{version}, nil
}

// ResolveVersion accepts "", "latest", or a version equal to the one
// ListVersions returns; prefixes and ranges are not resolved.
func (b *Backend) ResolveVersion(spec string) (string, error) {
	versions, err := b.ListVersions()
	if err != nil {
		return "", err
	}
	if spec == "" || spec == "latest" {
		if len(versions) == 0 {
			return "", fmt.Errorf("no versions found for %s", crateName(b.fa))
		}
		return versions[0], nil
	}
	for _, v := range versions {
		if v == spec {
			return v, nil
		}
	}
	return "", fmt.Errorf("version %s not found for %s", spec, crateName(b.fa))
}
