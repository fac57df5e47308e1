package npm

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/forgeware/forge/pkg/forgeid"
	"github.com/forgeware/forge/pkg/toolset"
)

func TestPackageName(t *testing.T) {
	fa := forgeid.FromString("npm:@antfu/ni")
	b := New(fa)
	if got := b.packageName(); got != "@antfu/ni" {
		t.Errorf("packageName() = %q, want %q", got, "@antfu/ni")
	}
}

func TestExecEnvSetsPrefix(t *testing.T) {
	fa := forgeid.FromString("npm:prettier")
	fa.InstallsPath = t.TempDir()
	b := New(fa)

	tv := toolset.ToolVersion{Forge: fa, Version: "3.2.5"}
	env, err := b.ExecEnv(tv)
	if err != nil {
		t.Fatalf("ExecEnv() error: %v", err)
	}
	want := filepath.Join(fa.InstallsPath, "3.2.5")
	if env["NPM_CONFIG_PREFIX"] != want {
		t.Errorf("ExecEnv()[NPM_CONFIG_PREFIX] = %q, want %q", env["NPM_CONFIG_PREFIX"], want)
	}
}

func TestExecEnvSystemVersionIsEmpty(t *testing.T) {
	fa := forgeid.FromString("npm:prettier")
	b := New(fa)
	tv := toolset.ToolVersion{Forge: fa, Version: "system", Request: toolset.NewSystemRequest(fa)}
	env, err := b.ExecEnv(tv)
	if err != nil {
		t.Fatalf("ExecEnv() error: %v", err)
	}
	if len(env) != 0 {
		t.Errorf("expected an empty env for a system version, got %v", env)
	}
}

func TestListBinPaths(t *testing.T) {
	fa := forgeid.FromString("npm:prettier")
	fa.InstallsPath = t.TempDir()
	b := New(fa)
	tv := toolset.ToolVersion{Forge: fa, Version: "3.2.5"}

	paths, err := b.ListBinPaths(tv)
	if err != nil {
		t.Fatalf("ListBinPaths() error: %v", err)
	}
	if len(paths) != 1 {
		t.Fatalf("expected exactly one bin path, got %v", paths)
	}
	root := filepath.Join(fa.InstallsPath, "3.2.5")
	want := root
	if runtime.GOOS != "windows" {
		want = filepath.Join(root, "bin")
	}
	if paths[0] != want {
		t.Errorf("ListBinPaths() = %v, want [%q]", paths, want)
	}
}

func TestIsVersionInstalled(t *testing.T) {
	fa := forgeid.FromString("npm:prettier")
	fa.InstallsPath = t.TempDir()
	if err := os.MkdirAll(filepath.Join(fa.InstallsPath, "3.2.5"), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	b := New(fa)

	installed := toolset.ToolVersion{Forge: fa, Version: "3.2.5"}
	if !b.IsVersionInstalled(installed) {
		t.Errorf("expected 3.2.5 to be reported as installed")
	}
	missing := toolset.ToolVersion{Forge: fa, Version: "3.3.0"}
	if b.IsVersionInstalled(missing) {
		t.Errorf("expected 3.3.0 to be reported as not installed")
	}
}

func TestTrimNewline(t *testing.T) {
	if got := trimNewline([]byte("1.2.3\r\n")); got != "1.2.3" {
		t.Errorf("trimNewline() = %q, want %q", got, "1.2.3")
	}
}
