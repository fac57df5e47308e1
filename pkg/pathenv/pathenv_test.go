package pathenv

import (
	"os"
	"testing"
)

func TestPrepend(t *testing.T) {
	got := Prepend([]string{"/a/bin", "/b/bin"}, "/usr/bin")
	want := "/a/bin" + string(os.PathListSeparator) + "/b/bin" + string(os.PathListSeparator) + "/usr/bin"
	if got != want {
		t.Errorf("Prepend() = %q, want %q", got, want)
	}
}

func TestPrependEmptyDirs(t *testing.T) {
	if got := Prepend(nil, "/usr/bin"); got != "/usr/bin" {
		t.Errorf("Prepend(nil, base) = %q, want base unchanged", got)
	}
}

func TestPrependEmptyBase(t *testing.T) {
	got := Prepend([]string{"/a/bin"}, "")
	if got != "/a/bin" {
		t.Errorf("Prepend(dirs, \"\") = %q, want %q", got, "/a/bin")
	}
}

func TestStripRemovesGivenDirsPreservingOrder(t *testing.T) {
	sep := string(os.PathListSeparator)
	path := "/a/bin" + sep + "/forge/node/bin" + sep + "/usr/bin" + sep + "/forge/python/bin"
	got := Strip(path, []string{"/forge/node/bin", "/forge/python/bin"})
	want := "/a/bin" + sep + "/usr/bin"
	if got != want {
		t.Errorf("Strip() = %q, want %q", got, want)
	}
}

func TestStripNoMatches(t *testing.T) {
	sep := string(os.PathListSeparator)
	path := "/a/bin" + sep + "/usr/bin"
	if got := Strip(path, []string{"/not/present"}); got != path {
		t.Errorf("Strip() = %q, want unchanged %q", got, path)
	}
}
