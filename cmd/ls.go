package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List declared tools and their resolved versions",
	RunE: func(cmd *cobra.Command, args []string) error {
		ts, err := loadToolset(false)
		if err != nil {
			return err
		}
		for _, list := range ts.ListToolVersionLists() {
			for _, tv := range list.Versions {
				fmt.Printf("%s\t%s\t%s\n", tv.Forge, tv.Version, list.Source)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lsCmd)
}
