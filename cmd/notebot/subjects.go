package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/notebot/internal/subject"
)

var subjectsCmd = &cobra.Command{
	Use:   "subjects",
	Short: "List the subjects with a dedicated summary outline",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		names := subject.Names()
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), names)
		}
		for _, n := range names {
			fmt.Fprintln(cmd.OutOrStdout(), n)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(subjectsCmd)
}
