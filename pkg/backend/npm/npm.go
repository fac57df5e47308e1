// Package npm implements toolset.Backend over `npm install -g`, each
// version installed into its own --prefix directory the same way the
// cargo backend isolates crate versions.
package npm

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/forgeware/forge/pkg/forgeid"
	"github.com/forgeware/forge/pkg/toolset"
)

// Backend installs one npm package's binaries per version.
type Backend struct {
	fa forgeid.ForgeId
}

// New builds an npm Backend for the given forge identity.
func New(fa forgeid.ForgeId) *Backend {
	return &Backend{fa: fa}
}

func (b *Backend) Id() string               { return b.fa.Id }
func (b *Backend) ForgeId() forgeid.ForgeId { return b.fa }
func (b *Backend) packageName() string      { return b.fa.Name }

func (b *Backend) IsInstalled() bool {
	_, err := exec.LookPath("npm")
	return err == nil
}

func (b *Backend) EnsureInstalled(progress toolset.ProgressReporter, force bool) error {
	if !b.IsInstalled() {
		return fmt.Errorf("npm not found on PATH; install Node.js to use npm: tools")
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

	spec := fmt.Sprintf("%s@%s", b.packageName(), tv.Version)
	cmd := exec.Command("npm", "install", "-g", "--prefix", root, spec)
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr
	if ctx.Progress != nil {
		ctx.Progress.Println(fmt.Sprintf("npm install -g --prefix %s %s", root, spec))
	}
	if err := cmd.Run(); err != nil {
		_ = os.RemoveAll(root)
		return fmt.Errorf("npm install %s: %w", spec, err)
	}
	return nil
}

func (b *Backend) GetDependencies(tv toolset.ToolVersion) ([]forgeid.ForgeId, error) {
	return nil, nil
}

func (b *Backend) ExecEnv(tv toolset.ToolVersion) (map[string]string, error) {
	if tv.IsSystem() {
		return map[string]string{}, nil
	}
	return map[string]string{"NPM_CONFIG_PREFIX": b.versionRoot(tv.Version)}, nil
}

func (b *Backend) ListBinPaths(tv toolset.ToolVersion) ([]string, error) {
	if tv.IsSystem() {
		return nil, nil
	}
	root := b.versionRoot(tv.Version)
	if runtime.GOOS == "windows" {
		return []string{root}, nil
	}
	return []string{filepath.Join(root, "bin")}, nil
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

func (b *Backend) ListVersions() ([]string, error) {
	cmd := exec.Command("npm", "view", b.packageName(), "versions", "--json")
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("npm view %s versions: %w", b.packageName(), err)
	}
	var versions []string
	if err := json.Unmarshal(out, &versions); err != nil {
		return nil, fmt.Errorf("parsing npm view output: %w", err)
	}
	return versions, nil
}

// ResolveVersion accepts "", "latest", or an exact published version;
// prefixes and ranges are not resolved.
func (b *Backend) ResolveVersion(spec string) (string, error) {
	if spec == "" || spec == "latest" {
		cmd := exec.Command("npm", "view", b.packageName(), "version")
		out, err := cmd.Output()
		if err != nil {
			return "", fmt.Errorf("npm view %s version: %w", b.packageName(), err)
		}
		return trimNewline(out), nil
	}
	versions, err := b.ListVersions()
	if err != nil {
		return "", err
	}
	for _, v := range versions {
		if v == spec {
			return v, nil
		}
	}
	return "", fmt.Errorf("version %s not found for %s", spec, b.packageName())
}

func trimNewline(b []byte) string {
	s := string(b)
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
