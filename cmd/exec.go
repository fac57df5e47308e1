package cmd

import (
	"os"
	"os/exec"

	"github.com/spf13/cobra"
)

var execCmd = &cobra.Command{
	Use:                "exec -- <command> [args...]",
	Short:              "Run a command with every declared tool's environment composed in",
	Args:               cobra.MinimumNArgs(1),
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ts, err := loadToolset(false)
		if err != nil {
			return err
		}
		env, err := ts.FullEnv()
		if err != nil {
			return err
		}

		c := exec.Command(args[0], args[1:]...)
		c.Stdin = os.Stdin
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr
		for k, v := range env {
			c.Env = append(c.Env, k+"="+v)
		}
		return c.Run()
	},
}

func init() {
	rootCmd.AddCommand(execCmd)
}
