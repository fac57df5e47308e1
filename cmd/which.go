package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var whichCmd = &cobra.Command{
	Use:   "which <binary>",
	Short: "Print the absolute path to a managed binary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ts, err := loadToolset(false)
		if err != nil {
			return err
		}
		path, ok, err := ts.Which(args[0])
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%s: not found in any declared tool", args[0])
		}
		fmt.Println(path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whichCmd)
}
