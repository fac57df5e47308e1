package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forgeware/forge/pkg/runtimesymlinks"
	"github.com/forgeware/forge/pkg/shims"
	"github.com/forgeware/forge/pkg/toolset"
	"github.com/forgeware/forge/pkg/ui"
)

var installForce bool

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install every tool declared in the current project",
	RunE: func(cmd *cobra.Command, args []string) error {
		ts, err := loadToolset(false)
		if err != nil {
			return err
		}

		progress := ui.NewProgress()
		if err := ts.Install(toolset.InstallOptions{Force: installForce, Progress: progress}); err != nil {
			return err
		}

		if err := reshimAndRelink(ts); err != nil {
			return err
		}
		fmt.Println("install complete")
		return nil
	},
}

func init() {
	installCmd.Flags().BoolVar(&installForce, "force", false, "reinstall even if already installed")
	rootCmd.AddCommand(installCmd)
}

// reshimAndRelink runs the two post-install-batch hooks: rebuild the
// shim directory and refresh each forge's "current" symlink, each run
// once per Install call rather than once per tool.
func reshimAndRelink(ts *toolset.Toolset) error {
	binTargets := map[string]string{}
	for _, tv := range ts.ListCurrentVersions() {
		if tv.IsSystem() {
			continue
		}
		backend, err := ts.Resolver().Get(tv.Forge)
		if err != nil {
			return err
		}
		paths, err := backend.ListBinPaths(tv)
		if err != nil {
			return err
		}
		for _, dir := range paths {
			entries, err := listExecutables(dir)
			if err != nil {
				continue
			}
			for name, path := range entries {
				binTargets[name] = path
			}
		}
		if err := runtimesymlinks.Update(tv.Forge.InstallsPath, tv.Version); err != nil {
			return err
		}
	}
	return shims.Rebuild(binTargets)
}
