package shims

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/spf13/afero"

	"github.com/forgeware/forge/pkg/dirs"
)

func TestRebuildWritesAndPrunesShims(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shim content format differs on windows; covered by shimName/writeShim logic elsewhere")
	}
	root := t.TempDir()
	dirs.Init(root, afero.NewOsFs())
	t.Cleanup(func() { dirs.Init(t.TempDir(), afero.NewOsFs()) })

	if err := Rebuild(map[string]string{
		"node": "/installs/node/20.11.0/bin/node",
		"npm":  "/installs/node/20.11.0/bin/npm",
	}); err != nil {
		t.Fatalf("Rebuild() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(Dir(), "node"))
	if err != nil {
		t.Fatalf("reading node shim: %v", err)
	}
	if string(data) != "#!/bin/sh\nexec \"/installs/node/20.11.0/bin/node\" \"$@\"\n" {
		t.Errorf("unexpected shim content: %q", data)
	}

	// Rebuilding with npm dropped must remove its stale shim.
	if err := Rebuild(map[string]string{
		"node": "/installs/node/20.11.0/bin/node",
	}); err != nil {
		t.Fatalf("second Rebuild() error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(Dir(), "npm")); !os.IsNotExist(err) {
		t.Errorf("expected the stale npm shim to be removed, stat err = %v", err)
	}
	if _, err := os.Stat(filepath.Join(Dir(), "node")); err != nil {
		t.Errorf("expected the node shim to still exist: %v", err)
	}
}

func TestShimNameUnix(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix-specific naming")
	}
	if got := shimName("node"); got != "node" {
		t.Errorf("shimName(\"node\") = %q, want %q", got, "node")
	}
}
