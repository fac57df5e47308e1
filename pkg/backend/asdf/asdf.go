// Package asdf implements toolset.Backend for the default ("asdf")
// forge family: generic runtime/tool installs driven by a Recipe that
// knows how to list and download one tool's releases, replacing the
// teacher's per-tool Go files (java.go, node.go, python.go, ...) with
// one backend parameterized over pkg/install's shared download/extract
// machinery.
package asdf

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/forgeware/forge/pkg/forgeid"
	"github.com/forgeware/forge/pkg/install"
	"github.com/forgeware/forge/pkg/toolset"
	"github.com/forgeware/forge/pkg/toolversion"
)

// Backend installs one tool family's versions via its Recipe.
type Backend struct {
	fa     forgeid.ForgeId
	recipe Recipe
	dl     *install.Downloader
}

// New builds an asdf Backend for the given forge identity.
func New(fa forgeid.ForgeId) *Backend {
	return &Backend{fa: fa, recipe: recipeFor(fa.Name), dl: install.NewDownloader()}
}

func (b *Backend) Id() string               { return b.fa.Id }
func (b *Backend) ForgeId() forgeid.ForgeId { return b.fa }

// IsInstalled is always true: the asdf backend has no separate
// plugin-install step, unlike the reference asdf plugin model.
func (b *Backend) IsInstalled() bool { return true }

func (b *Backend) EnsureInstalled(progress toolset.ProgressReporter, force bool) error {
	return nil
}

func (b *Backend) versionRoot(version string) string {
	return filepath.Join(b.fa.InstallsPath, version)
}

func (b *Backend) IsVersionInstalled(tv toolset.ToolVersion) bool {
	if tv.IsSystem() {
		return true
	}
	info, err := os.Stat(b.versionRoot(tv.Version))
	return err == nil && info.IsDir()
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

	url, err := b.recipe.DownloadURL(tv.Version)
	if err != nil {
		return fmt.Errorf("%s@%s: %w", b.fa, tv.Version, err)
	}

	if err := os.MkdirAll(b.fa.DownloadsPath, 0o755); err != nil {
		return fmt.Errorf("creating download directory: %w", err)
	}
	archivePath := filepath.Join(b.fa.DownloadsPath, filepath.Base(url))

	if ctx.Progress != nil {
		ctx.Progress.Println(fmt.Sprintf("downloading %s", url))
	}
	if err := b.dl.Download(url, archivePath); err != nil {
		return fmt.Errorf("%s@%s: %w", b.fa, tv.Version, err)
	}
	defer os.Remove(archivePath)

	if err := os.MkdirAll(root, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", root, err)
	}
	if ctx.Progress != nil {
		ctx.Progress.Println(fmt.Sprintf("extracting %s", archivePath))
	}
	if err := install.Extract(archivePath, root); err != nil {
		_ = os.RemoveAll(root)
		return fmt.Errorf("%s@%s: %w", b.fa, tv.Version, err)
	}
	return nil
}

func (b *Backend) GetDependencies(tv toolset.ToolVersion) ([]forgeid.ForgeId, error) {
	return nil, nil
}

func (b *Backend) ExecEnv(tv toolset.ToolVersion) (map[string]string, error) {
	return map[string]string{}, nil
}

// ListBinPaths lists the bin directory inside the version root, plus
// the root itself, since archives vary in whether they nest a bin/
// directory or ship binaries at the top level (e.g. Node.js ships
// bin/, single-binary CLIs often don't).
func (b *Backend) ListBinPaths(tv toolset.ToolVersion) ([]string, error) {
	if tv.IsSystem() {
		return nil, nil
	}
	root := b.versionRoot(tv.Version)
	paths := []string{root}
	if entries, err := os.ReadDir(root); err == nil {
		for _, e := range entries {
			if e.IsDir() && isLikelyBinDir(e.Name()) {
				paths = append([]string{filepath.Join(root, e.Name())}, paths...)
				continue
			}
		}
		// many archives nest one top-level directory (e.g. node-v20.11.0-linux-x64/)
		if len(entries) == 1 && entries[0].IsDir() {
			nested := filepath.Join(root, entries[0].Name())
			paths = append([]string{filepath.Join(nested, "bin"), nested}, paths...)
		}
	}
	return paths, nil
}

func isLikelyBinDir(name string) bool {
	return name == "bin"
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
	return b.recipe.ListVersions(b.dl)
}

func (b *Backend) ResolveVersion(spec string) (string, error) {
	versions, err := b.ListVersions()
	if err != nil {
		return "", err
	}
	parsed, err := toolversion.ParseSpec(spec)
	if err != nil {
		return "", fmt.Errorf("invalid version spec %q for %s: %w", spec, b.fa, err)
	}
	resolved, err := parsed.Resolve(versions)
	if err != nil {
		return "", fmt.Errorf("resolving %q for %s: %w", spec, b.fa, err)
	}
	return resolved, nil
}
