package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glintui/glint/internal/catalog"
	"github.com/glintui/glint/internal/ui/components"
)

type showFlags struct {
	width  int
	height int
	frames int
}

func newShowCmd(getApp func() *appContext) *cobra.Command {
	flags := &showFlags{}

	cmd := &cobra.Command{
		Use:   "show <story>",
		Short: "Render one frame of a story non-interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp()

			story, err := app.registry.Get(args[0])
			if err != nil {
				return err
			}

			theme := components.ThemeByName(app.theme())
			frame := catalog.RenderStory(story, theme, flags.width, flags.height, flags.frames)
			fmt.Fprintln(cmd.OutOrStdout(), frame)
			return nil
		},
	}

	cmd.Flags().IntVar(&flags.width, "width", 72, "Preview width in cells")
	cmd.Flags().IntVar(&flags.height, "height", 20, "Preview height in cells")
	cmd.Flags().IntVar(&flags.frames, "frames", 30, "Animation frames to advance before rendering")

	return cmd
}
