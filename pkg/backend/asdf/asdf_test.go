package asdf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/forgeware/forge/pkg/forgeid"
	"github.com/forgeware/forge/pkg/install"
	"github.com/forgeware/forge/pkg/toolset"
)

func TestListBinPathsFlatBinDir(t *testing.T) {
	fa := forgeid.FromString("some-cli")
	fa.InstallsPath = t.TempDir()
	root := filepath.Join(fa.InstallsPath, "1.0.0")
	if err := os.MkdirAll(filepath.Join(root, "bin"), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	b := New(fa)
	tv := toolset.ToolVersion{Forge: fa, Version: "1.0.0"}
	paths, err := b.ListBinPaths(tv)
	if err != nil {
		t.Fatalf("ListBinPaths() error: %v", err)
	}
	found := false
	for _, p := range paths {
		if p == filepath.Join(root, "bin") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected root/bin in ListBinPaths(), got %v", paths)
	}
}

func TestListBinPathsSingleNestedDir(t *testing.T) {
	fa := forgeid.FromString("node")
	fa.InstallsPath = t.TempDir()
	root := filepath.Join(fa.InstallsPath, "20.11.0")
	nested := filepath.Join(root, "node-v20.11.0-linux-x64")
	if err := os.MkdirAll(filepath.Join(nested, "bin"), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	b := New(fa)
	tv := toolset.ToolVersion{Forge: fa, Version: "20.11.0"}
	paths, err := b.ListBinPaths(tv)
	if err != nil {
		t.Fatalf("ListBinPaths() error: %v", err)
	}
	if paths[0] != filepath.Join(nested, "bin") {
		t.Errorf("expected the nested bin dir to come first, got %v", paths)
	}
}

func TestIsVersionInstalled(t *testing.T) {
	fa := forgeid.FromString("node")
	fa.InstallsPath = t.TempDir()
	if err := os.MkdirAll(filepath.Join(fa.InstallsPath, "20.11.0"), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	b := New(fa)

	installed := toolset.ToolVersion{Forge: fa, Version: "20.11.0"}
	if !b.IsVersionInstalled(installed) {
		t.Errorf("expected 20.11.0 to be reported as installed")
	}
	missing := toolset.ToolVersion{Forge: fa, Version: "18.0.0"}
	if b.IsVersionInstalled(missing) {
		t.Errorf("expected 18.0.0 to be reported as not installed")
	}
}

func TestResolveVersionUsesSpecConstraint(t *testing.T) {
	fa := forgeid.FromString("node")
	b := &Backend{fa: fa, recipe: fakeVersionsRecipe{versions: []string{"18.20.0", "20.11.0", "20.9.0"}}}

	got, err := b.ResolveVersion("20")
	if err != nil {
		t.Fatalf("ResolveVersion() error: %v", err)
	}
	if got != "20.11.0" {
		t.Errorf("ResolveVersion(\"20\") = %q, want %q", got, "20.11.0")
	}
}

type fakeVersionsRecipe struct {
	versions []string
}

func (f fakeVersionsRecipe) ListVersions(*install.Downloader) ([]string, error) {
	return f.versions, nil
}

func (f fakeVersionsRecipe) DownloadURL(version string) (string, error) {
	return "", nil
}
