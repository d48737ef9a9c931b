package components

import "github.com/charmbracelet/lipgloss"

// ThemeMode is the toggle's position.
type ThemeMode int

const (
	ThemeModeLight ThemeMode = iota
	ThemeModeDark
)

// String returns the stored name for the mode.
func (m ThemeMode) String() string {
	if m == ThemeModeDark {
		return "dark"
	}
	return "light"
}

// ThemeModeFromName parses a stored theme name. Unknown names map to light.
func ThemeModeFromName(name string) ThemeMode {
	if name == "dark" {
		return ThemeModeDark
	}
	return ThemeModeLight
}

// ThemeToggle is a two-position sun/moon switch. It renders the current
// mode; persisting the choice is the theme store's job, not the toggle's.
type ThemeToggle struct {
	BaseComponent
	mode ThemeMode
}

// NewThemeToggle creates a toggle in light mode.
func NewThemeToggle() *ThemeToggle {
	return &ThemeToggle{BaseComponent: NewBaseComponent()}
}

// WithMode sets the toggle position.
func (t *ThemeToggle) WithMode(mode ThemeMode) *ThemeToggle {
	t.mode = mode
	return t
}

// Toggle flips the mode and returns the new value.
func (t *ThemeToggle) Toggle() ThemeMode {
	if t.mode == ThemeModeLight {
		t.mode = ThemeModeDark
	} else {
		t.mode = ThemeModeLight
	}
	return t.mode
}

// Mode returns the current position.
func (t *ThemeToggle) Mode() ThemeMode {
	return t.mode
}

// View renders with the default theme.
func (t *ThemeToggle) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the sun and moon glyphs with the active side
// highlighted.
func (t *ThemeToggle) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	active := lipgloss.NewStyle().Foreground(theme.Palette.Primary.Base).Bold(true)
	idle := lipgloss.NewStyle().Foreground(theme.Palette.Neutral.Muted).Faint(true)

	sun, moon := active.Render("☀"), idle.Render("☾")
	if t.mode == ThemeModeDark {
		sun, moon = idle.Render("☀"), active.Render("☾")
	}

	rail := lipgloss.NewStyle().Foreground(theme.Palette.Neutral.Muted).Render("──")
	content := lipgloss.JoinHorizontal(lipgloss.Center, sun, rail, moon)
	return t.ComputeStyle(theme).Render(content)
}
