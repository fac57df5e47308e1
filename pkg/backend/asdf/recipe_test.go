package asdf

import (
	"strings"
	"testing"
)

func TestRecipeForKnownAndFallback(t *testing.T) {
	if _, ok := recipeFor("node").(nodeRecipe); !ok {
		t.Errorf("expected recipeFor(\"node\") to be the built-in nodeRecipe")
	}
	if _, ok := recipeFor("nodejs").(nodeRecipe); !ok {
		t.Errorf("expected recipeFor(\"nodejs\") to be the built-in nodeRecipe")
	}
	r := recipeFor("some-owner/some-tool")
	gh, ok := r.(genericGitHubRecipe)
	if !ok {
		t.Fatalf("expected an unknown tool name to fall back to genericGitHubRecipe, got %T", r)
	}
	if gh.repo != "some-owner/some-tool" {
		t.Errorf("expected genericGitHubRecipe.repo = %q, got %q", "some-owner/some-tool", gh.repo)
	}
}

func TestNodeRecipeDownloadURL(t *testing.T) {
	osName, arch, err := nodePlatform()
	if err != nil {
		t.Skipf("unsupported platform for node downloads: %v", err)
	}
	url, err := nodeRecipe{}.DownloadURL("20.11.0")
	if err != nil {
		t.Fatalf("DownloadURL() error: %v", err)
	}
	if !strings.Contains(url, "node-v20.11.0-"+osName+"-"+arch) {
		t.Errorf("DownloadURL() = %q, missing expected platform segment", url)
	}
	if !strings.HasPrefix(url, "https://nodejs.org/dist/v20.11.0/") {
		t.Errorf("DownloadURL() = %q, want nodejs.org dist prefix", url)
	}
}

func TestGenericGitHubRecipeDownloadURLAlwaysErrors(t *testing.T) {
	g := genericGitHubRecipe{repo: "owner/repo"}
	if _, err := g.DownloadURL("1.0.0"); err == nil {
		t.Errorf("expected genericGitHubRecipe.DownloadURL to always error: asset naming isn't generically resolvable")
	}
}
