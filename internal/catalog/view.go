package catalog

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/glintui/glint/internal/ui/components"
)

// View renders the story list next to the live preview.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.listView(), m.previewView())
}

func (m Model) listView() string {
	title := components.TypographyStyle(m.theme, components.TypographyVariantTitle)
	caption := components.TypographyStyle(m.theme, components.TypographyVariantCaption)
	selected := lipgloss.NewStyle().
		Foreground(m.theme.Palette.Primary.Base).
		Bold(true)
	idle := lipgloss.NewStyle().Foreground(m.theme.Palette.Neutral.Base)

	var sb strings.Builder
	sb.WriteString(title.Render("glint"))
	sb.WriteString("\n\n")
	for i, story := range m.stories {
		if i == m.cursor {
			sb.WriteString(selected.Render("▸ " + story.Title))
		} else {
			sb.WriteString(idle.Render("  " + story.Title))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("\n")
	sb.WriteString(caption.Render("↑/↓ move · enter restart"))
	sb.WriteString("\n")
	sb.WriteString(caption.Render("t theme · q quit"))

	return lipgloss.NewStyle().
		Width(listWidth).
		Padding(1, 2).
		Render(sb.String())
}

func (m Model) previewView() string {
	w, h := m.previewSize()

	var body string
	if m.active != nil {
		body = m.active.ViewWithContext(m.renderContext())
	}

	header := ""
	if story, ok := m.ActiveStory(); ok {
		titleStyle := components.TypographyStyle(m.theme, components.TypographyVariantSubtitle)
		header = titleStyle.Render(story.Description)
	}

	frame := lipgloss.NewStyle().
		Border(m.theme.Borders.Rounded).
		BorderForeground(m.theme.Palette.Neutral.Muted).
		Padding(1, 2).
		Width(w).
		Height(h)

	content := lipgloss.JoinVertical(lipgloss.Left, header, "", body)
	return frame.Render(content)
}
