package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the data directories and an empty notes store",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context(), cmd)
		if err != nil {
			return err
		}

		loc := a.store.Locations()
		fmt.Fprintf(cmd.OutOrStdout(), "Notes store: %s\nAudio:       %s\nText:        %s\n", loc.NotesFile, loc.AudioDir, loc.TextDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
