// Package cmd implements forge's command-line surface: a thin cobra
// dispatcher over pkg/toolset, pkg/backend, and pkg/config. It is an
// external caller of the core packages, not part of the core itself.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/forgeware/forge/pkg/backend"
	"github.com/forgeware/forge/pkg/settings"
	"github.com/forgeware/forge/pkg/toolset"
	"github.com/forgeware/forge/pkg/ui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"

	verbose bool
	jobs    int
	raw     bool
)

var rootCmd = &cobra.Command{
	Use:   "forge",
	Short: "A polyglot runtime version manager",
	Long: `forge resolves declarative tool requests (node@20, cargo:eza@0.18,
npm:prettier@3) to concrete versions, installs them concurrently across
backends, and exposes the result through composed PATH/env.`,
	SilenceUsage: true,
}

// Execute runs the root command. Called once from main.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo sets build-time version metadata for `forge version`.
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().IntVarP(&jobs, "jobs", "j", 0, "concurrent install jobs (0 = use configured default)")
	rootCmd.PersistentFlags().BoolVar(&raw, "raw", false, "disable progress bars, log plain status lines")
	cobra.OnInitialize(func() {
		if verbose {
			ui.SetVerbose()
		}
		if jobs > 0 {
			settings.Set("jobs", jobs)
		}
		if raw {
			settings.Set("raw", true)
		}
	})
}

// newResolver builds the toolset.BackendResolver every command shares.
func newResolver() toolset.BackendResolver {
	return backend.NewResolver()
}
