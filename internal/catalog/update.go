package catalog

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/glintui/glint/internal/ui/components"
)

// Update routes terminal events to the browser and frames to the running
// story.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m.forwardSize()

	case tea.MouseMsg:
		return m.forwardPointer(msg)

	case FrameMsg:
		if m.quitting {
			return m, nil
		}
		var cmd tea.Cmd
		if m.active != nil {
			m.active, cmd = m.active.Update(msg)
		}
		return m, tea.Batch(cmd, m.frameTick())
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m.quit()

	case "up", "k":
		return m.moveCursor(-1)

	case "down", "j":
		return m.moveCursor(1)

	case "enter", "r":
		// Restart the highlighted story from scratch.
		return m.openSelected()

	case "t":
		return m.toggleTheme()
	}

	return m, nil
}

// quit tears the running story down before leaving; the story contract
// says Shutdown must run exactly once per instance, and Revert hands the
// terminal back the way it was found.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	if m.active != nil {
		m.active.Shutdown()
		m.active = nil
	}
	m.adapter.Revert()
	return m, tea.Quit
}

func (m Model) moveCursor(delta int) (tea.Model, tea.Cmd) {
	if len(m.stories) == 0 {
		return m, nil
	}
	next := m.cursor + delta
	if next < 0 || next >= len(m.stories) {
		return m, nil
	}
	m.cursor = next
	return m.openSelected()
}

// openSelected swaps the running story for a fresh instance of the
// highlighted one.
func (m Model) openSelected() (tea.Model, tea.Cmd) {
	if m.active != nil {
		m.active.Shutdown()
		m.active = nil
	}
	story, ok := m.ActiveStory()
	if !ok {
		return m, nil
	}

	view := story.New()
	initCmd := view.Init()
	w, h := m.previewSize()
	view, sizeCmd := view.Update(SizeMsg{Width: w, Height: h})
	m.active = view
	m.log.WithFields(map[string]any{"story": story.ID}).Debug("story mounted")
	return m, tea.Batch(initCmd, sizeCmd)
}

// forwardPointer translates a terminal mouse event into preview-local cell
// coordinates for the running story. Positions outside the preview body
// arrive with Active false so stories can drop their pointer state.
func (m Model) forwardPointer(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.active == nil {
		return m, nil
	}
	w, h := m.previewSize()
	x := msg.X - previewBodyLeft
	y := msg.Y - previewBodyTop
	pointer := PointerMsg{
		X:      float64(x),
		Y:      float64(y),
		Active: x >= 0 && y >= 0 && x < w && y < h,
	}
	var cmd tea.Cmd
	m.active, cmd = m.active.Update(pointer)
	return m, cmd
}

func (m Model) forwardSize() (tea.Model, tea.Cmd) {
	if m.active == nil {
		return m, nil
	}
	w, h := m.previewSize()
	var cmd tea.Cmd
	m.active, cmd = m.active.Update(SizeMsg{Width: w, Height: h})
	return m, cmd
}

func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	name := "dark"
	if m.theme.Name == "dark" {
		name = "light"
	}
	m.theme = components.ThemeByName(name)

	if err := m.store.Save(name); err != nil {
		m.log.Error(err, "saving theme preference")
	}
	if err := m.adapter.Apply(name); err != nil {
		m.log.Error(err, "applying theme")
	}
	return m, nil
}
