package dirs

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

func TestInitOverridesLayout(t *testing.T) {
	Init("/tmp/forge-test-root", afero.NewMemMapFs())
	t.Cleanup(func() { Init("/tmp/forge-test-root", afero.NewMemMapFs()) })

	if Base() != "/tmp/forge-test-root" {
		t.Errorf("Base() = %q, want %q", Base(), "/tmp/forge-test-root")
	}
	if Cache() != filepath.Join("/tmp/forge-test-root", "cache") {
		t.Errorf("Cache() = %q", Cache())
	}
	if Installs() != filepath.Join("/tmp/forge-test-root", "installs") {
		t.Errorf("Installs() = %q", Installs())
	}
	if Downloads() != filepath.Join("/tmp/forge-test-root", "downloads") {
		t.Errorf("Downloads() = %q", Downloads())
	}
}

func TestMkdirAllUsesConfiguredFS(t *testing.T) {
	mem := afero.NewMemMapFs()
	Init("/forge-root", mem)
	t.Cleanup(func() { Init("/forge-root", afero.NewMemMapFs()) })

	dir := filepath.Join(Cache(), "some-tool")
	if err := MkdirAll(dir); err != nil {
		t.Fatalf("MkdirAll() error: %v", err)
	}
	ok, err := afero.DirExists(mem, dir)
	if err != nil {
		t.Fatalf("DirExists() error: %v", err)
	}
	if !ok {
		t.Errorf("expected %q to exist on the configured in-memory filesystem", dir)
	}
}
