package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	var app *appContext

	cmd := &cobra.Command{
		Use:           "glint",
		Short:         "Glint is a live catalog of terminal UI components",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := newAppContext(flags.configPath)
			if err != nil {
				return err
			}
			app = ctx
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil {
				app.close()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, app)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to the configuration file")

	getApp := func() *appContext { return app }
	cmd.AddCommand(newListCmd(getApp))
	cmd.AddCommand(newShowCmd(getApp))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
