package cmd

import (
	"os"
	"path/filepath"
)

// listExecutables returns a name -> path map of every non-directory entry
// (files and symlinks) directly inside dir, used to populate the shim directory from a
// backend's reported bin paths.
func listExecutables(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	out := map[string]string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		out[e.Name()] = filepath.Join(dir, e.Name())
	}
	return out, nil
}
