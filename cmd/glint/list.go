package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd(getApp func() *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available stories",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printStoryList(cmd, getApp())
		},
	}
}

func printStoryList(cmd *cobra.Command, app *appContext) error {
	for _, story := range app.registry.List() {
		fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", story.ID, story.Description)
	}
	return nil
}
