package cmd

import (
	"fmt"
	"os"

	"github.com/forgeware/forge/pkg/config"
	"github.com/forgeware/forge/pkg/toolset"
)

// loadToolset loads the current directory's tool declarations and
// resolves them into a *toolset.Toolset, ready for Install/Env/Which.
func loadToolset(latestVersions bool) (*toolset.Toolset, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}

	trs, err := config.Load(cwd)
	if err != nil {
		return nil, fmt.Errorf("loading tool declarations: %w", err)
	}

	resolver := newResolver()
	ts := toolset.FromRequestSet(trs, resolver)
	if err := ts.Resolve(latestVersions); err != nil {
		return nil, err
	}
	return ts, nil
}
