package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Print the shell-exportable environment for the current project",
	RunE: func(cmd *cobra.Command, args []string) error {
		ts, err := loadToolset(false)
		if err != nil {
			return err
		}
		env, err := ts.FullEnv()
		if err != nil {
			return err
		}
		keys := make([]string, 0, len(env))
		for k := range env {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("export %s=%q\n", k, env[k])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(envCmd)
}
