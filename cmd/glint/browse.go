package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/glintui/glint/internal/catalog"
	"github.com/glintui/glint/internal/themestore"
)

// runBrowse launches the interactive browser. Without a terminal on stdout
// there is nothing to interact with, so it degrades to the story list.
func runBrowse(cmd *cobra.Command, app *appContext) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return printStoryList(cmd, app)
	}

	adapter := themestore.NewRendererAdapter(nil)
	model := catalog.NewModel(app.registry, app.cfg, app.store, adapter, app.log)

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := program.Run()
	return err
}
