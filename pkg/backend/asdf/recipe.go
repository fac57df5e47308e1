package asdf

import (
	"encoding/json"
	"fmt"
	"runtime"
	"strings"

	hcversion "github.com/hashicorp/go-version"

	"github.com/forgeware/forge/pkg/install"
)

// Recipe teaches the asdf backend how to list and download one tool
// family's releases — the Go equivalent of an asdf plugin's
// bin/list-all and bin/download scripts, as a pluggable interface
// instead of one hardcoded method per tool.
type Recipe interface {
	// ListVersions returns every version this recipe knows how to install,
	// newest-first ordering not required — callers sort via pkg/toolversion.
	ListVersions(dl *install.Downloader) ([]string, error)
	// DownloadURL returns the release archive URL for one version on the
	// current platform.
	DownloadURL(version string) (string, error)
}

// recipes is the built-in registry of known tool families, keyed by
// ForgeId.Name. A name with no recipe falls back to genericGitHubRecipe,
// treating the name as an "owner/repo" GitHub project.
var recipes = map[string]Recipe{
	"node":   nodeRecipe{},
	"nodejs": nodeRecipe{},
}

func recipeFor(name string) Recipe {
	if r, ok := recipes[name]; ok {
		return r
	}
	return genericGitHubRecipe{repo: name}
}

// nodeRecipe installs Node.js from the official dist index.
type nodeRecipe struct{}

type nodeIndexEntry struct {
	Version string      `json:"version"`
	LTS     interface{} `json:"lts"`
}

func (nodeRecipe) ListVersions(dl *install.Downloader) ([]string, error) {
	body, err := dl.Get("https://nodejs.org/dist/index.json")
	if err != nil {
		return nil, fmt.Errorf("fetching node index: %w", err)
	}
	var entries []nodeIndexEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("parsing node index: %w", err)
	}
	versions := make([]string, 0, len(entries))
	for _, e := range entries {
		versions = append(versions, strings.TrimPrefix(e.Version, "v"))
	}
	return versions, nil
}

func (nodeRecipe) DownloadURL(version string) (string, error) {
	osName, arch, err := nodePlatform()
	if err != nil {
		return "", err
	}
	ext := "tar.gz"
	if osName == "win" {
		ext = "zip"
	}
	return fmt.Sprintf("https://nodejs.org/dist/v%s/node-v%s-%s-%s.%s", version, version, osName, arch, ext), nil
}

func nodePlatform() (osName, arch string, err error) {
	switch runtime.GOOS {
	case "darwin":
		osName = "darwin"
	case "linux":
		osName = "linux"
	case "windows":
		osName = "win"
	default:
		return "", "", fmt.Errorf("unsupported OS %s for node downloads", runtime.GOOS)
	}
	switch runtime.GOARCH {
	case "amd64":
		arch = "x64"
	case "arm64":
		arch = "arm64"
	default:
		return "", "", fmt.Errorf("unsupported architecture %s for node downloads", runtime.GOARCH)
	}
	return osName, arch, nil
}

// genericGitHubRecipe treats the forge's name as "owner/repo" and lists
// its GitHub releases, the same source the registry's "ubi" alias
// (cargo:ubi, a universal-binary-installer crate) exists to generalize.
// It cannot download: see DownloadURL.
type genericGitHubRecipe struct {
	repo string
}

type githubRelease struct {
	TagName string `json:"tag_name"`
	Assets  []struct {
		Name               string `json:"name"`
		BrowserDownloadURL string `json:"browser_download_url"`
	} `json:"assets"`
}

func (g genericGitHubRecipe) ListVersions(dl *install.Downloader) ([]string, error) {
	url := fmt.Sprintf("https://api.github.com/repos/%s/releases", g.repo)
	body, err := dl.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetching releases for %s: %w", g.repo, err)
	}
	var releases []githubRelease
	if err := json.Unmarshal(body, &releases); err != nil {
		return nil, fmt.Errorf("parsing releases for %s: %w", g.repo, err)
	}
	versions := make([]string, 0, len(releases))
	for _, r := range releases {
		v := strings.TrimPrefix(r.TagName, "v")
		if _, err := hcversion.NewVersion(v); err == nil {
			versions = append(versions, v)
		}
	}
	return versions, nil
}

// DownloadURL always returns an error: release asset names vary by
// project, so no URL is derived for a version.
func (g genericGitHubRecipe) DownloadURL(version string) (string, error) {
	return "", fmt.Errorf("generic GitHub recipe for %s requires an explicit asset name per release; not resolvable without a plugin definition", g.repo)
}
