package toolset

import (
	"testing"

	"github.com/forgeware/forge/pkg/forgeid"
)

type whichBackend struct {
	fakeBackend
	binPath string
	binName string
}

func (w *whichBackend) Which(tv ToolVersion, binName string) (string, bool, error) {
	if binName == w.binName {
		return w.binPath, true, nil
	}
	return "", false, nil
}

func TestWhichFindsProvidingForge(t *testing.T) {
	node := forgeid.FromString("node")
	python := forgeid.FromString("python")

	nodeBackend := &whichBackend{fakeBackend: fakeBackend{fa: node}, binName: "node", binPath: "/installs/node/bin/node"}
	pyBackend := &whichBackend{fakeBackend: fakeBackend{fa: python}, binName: "python", binPath: "/installs/python/bin/python"}
	resolver := &fakeResolver{backends: map[forgeid.ForgeId]Backend{node: nodeBackend, python: pyBackend}}

	ts := New(NewDefaultSource(), resolver)
	ts.AddVersion(NewVersionRequest(node, "20", nil))
	ts.AddVersion(NewVersionRequest(python, "3.12", nil))
	ts.versions[node] = ToolVersionList{Forge: node, Versions: []ToolVersion{{Forge: node, Version: "20"}}}
	ts.versions[python] = ToolVersionList{Forge: python, Versions: []ToolVersion{{Forge: python, Version: "3.12"}}}

	path, ok, err := ts.Which("python")
	if err != nil {
		t.Fatalf("Which() error: %v", err)
	}
	if !ok || path != "/installs/python/bin/python" {
		t.Errorf("Which(\"python\") = %q, %v; want the python backend's bin path", path, ok)
	}

	_, ok, err = ts.Which("ruby")
	if err != nil {
		t.Fatalf("Which() error: %v", err)
	}
	if ok {
		t.Errorf("expected Which(\"ruby\") to report no match")
	}
}

type lazyInstallBackend struct {
	fakeBackend
	binName   string
	installed bool
}

func (b *lazyInstallBackend) IsVersionInstalled(ToolVersion) bool { return b.installed }
func (b *lazyInstallBackend) Which(tv ToolVersion, binName string) (string, bool, error) {
	if binName == b.binName {
		return "/wherever/" + binName, true, nil
	}
	return "", false, nil
}
func (b *lazyInstallBackend) InstallVersion(ctx InstallContext) error {
	b.installed = true
	return nil
}

func TestInstallMissingBin(t *testing.T) {
	rg := forgeid.FromString("cargo:ripgrep")
	backend := &lazyInstallBackend{fakeBackend: fakeBackend{fa: rg}, binName: "rg"}
	resolver := &fakeResolver{backends: map[forgeid.ForgeId]Backend{rg: backend}}

	ts := New(NewDefaultSource(), resolver)
	ts.AddVersion(NewVersionRequest(rg, "14", nil))
	ts.versions[rg] = ToolVersionList{Forge: rg, Versions: []ToolVersion{{Forge: rg, Version: "14"}}}

	installed, err := ts.InstallMissingBin("rg", InstallOptions{})
	if err != nil {
		t.Fatalf("InstallMissingBin() error: %v", err)
	}
	if !installed {
		t.Errorf("expected InstallMissingBin to report it installed something")
	}
	if !backend.installed {
		t.Errorf("expected the backend's InstallVersion to have been called")
	}

	// a second call finds the binary already installed and is a no-op.
	installed, err = ts.InstallMissingBin("rg", InstallOptions{})
	if err != nil {
		t.Fatalf("InstallMissingBin() second call error: %v", err)
	}
	if installed {
		t.Errorf("expected the second InstallMissingBin call to report nothing new installed")
	}
}

func TestInstallMissingBinNoProvider(t *testing.T) {
	rg := forgeid.FromString("cargo:ripgrep")
	backend := &lazyInstallBackend{fakeBackend: fakeBackend{fa: rg}, binName: "rg"}
	resolver := &fakeResolver{backends: map[forgeid.ForgeId]Backend{rg: backend}}

	ts := New(NewDefaultSource(), resolver)
	ts.AddVersion(NewVersionRequest(rg, "14", nil))
	ts.versions[rg] = ToolVersionList{Forge: rg, Versions: []ToolVersion{{Forge: rg, Version: "14"}}}

	installed, err := ts.InstallMissingBin("not-rg", InstallOptions{})
	if err != nil {
		t.Fatalf("InstallMissingBin() error: %v", err)
	}
	if installed {
		t.Errorf("expected no install when no forge provides the requested binary")
	}
}
