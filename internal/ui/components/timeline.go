package components

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// TimelineEntry is one event on a Timeline.
type TimelineEntry struct {
	Time        time.Time
	Title       string
	Description string
	Variant     BadgeVariant
}

// Timeline renders a vertical sequence of dated entries connected by a rail.
type Timeline struct {
	BaseComponent
	entries    []TimelineEntry
	timeLayout string
}

// NewTimeline creates a timeline over the given entries, oldest first.
func NewTimeline(entries ...TimelineEntry) *Timeline {
	return &Timeline{
		BaseComponent: NewBaseComponent(),
		entries:       entries,
		timeLayout:    "2006-01-02",
	}
}

// Add appends entries to the timeline.
func (t *Timeline) Add(entries ...TimelineEntry) *Timeline {
	t.entries = append(t.entries, entries...)
	return t
}

// WithTimeLayout sets the timestamp format.
func (t *Timeline) WithTimeLayout(layout string) *Timeline {
	t.timeLayout = layout
	return t
}

// Entries returns the timeline entries.
func (t *Timeline) Entries() []TimelineEntry {
	return t.entries
}

// View renders with the default theme.
func (t *Timeline) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders markers, rail segments, and entry text.
func (t *Timeline) ViewWithContext(ctx RenderContext) string {
	if len(t.entries) == 0 {
		return ""
	}
	theme := ctx.Theme

	railStyle := lipgloss.NewStyle().Foreground(theme.Palette.Neutral.Muted)
	timeStyle := TypographyStyle(theme, TypographyVariantCaption)
	titleStyle := TypographyStyle(theme, TypographyVariantEmphasis)
	bodyStyle := TypographyStyle(theme, TypographyVariantBody)

	blocks := make([]string, 0, len(t.entries))
	for i, entry := range t.entries {
		marker := t.markerFor(entry, theme)

		head := lipgloss.JoinHorizontal(lipgloss.Top,
			marker, " ",
			titleStyle.Render(entry.Title), "  ",
			timeStyle.Render(entry.Time.Format(t.timeLayout)),
		)
		block := head
		if entry.Description != "" {
			desc := lipgloss.JoinHorizontal(lipgloss.Top,
				railStyle.Render("│"), "  ",
				bodyStyle.Render(entry.Description),
			)
			block = lipgloss.JoinVertical(lipgloss.Left, head, desc)
		}
		if i < len(t.entries)-1 {
			block = lipgloss.JoinVertical(lipgloss.Left, block, railStyle.Render("│"))
		}
		blocks = append(blocks, block)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, blocks...)
	return t.ComputeStyle(theme).Render(content)
}

func (t *Timeline) markerFor(entry TimelineEntry, theme Theme) string {
	var color lipgloss.AdaptiveColor
	switch entry.Variant {
	case BadgeVariantSuccess:
		color = theme.Palette.Success.Base
	case BadgeVariantWarning:
		color = theme.Palette.Warning.Base
	case BadgeVariantError:
		color = theme.Palette.Danger.Base
	case BadgeVariantPrimary:
		color = theme.Palette.Primary.Base
	default:
		color = theme.Palette.Neutral.Base
	}
	return lipgloss.NewStyle().Foreground(color).Render("●")
}
