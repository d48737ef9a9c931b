package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemeToggleFlips(t *testing.T) {
	t.Parallel()

	toggle := NewThemeToggle()
	assert.Equal(t, ThemeModeLight, toggle.Mode())

	assert.Equal(t, ThemeModeDark, toggle.Toggle())
	assert.Equal(t, ThemeModeDark, toggle.Mode())

	assert.Equal(t, ThemeModeLight, toggle.Toggle())
}

func TestThemeModeNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "light", ThemeModeLight.String())
	assert.Equal(t, "dark", ThemeModeDark.String())

	assert.Equal(t, ThemeModeDark, ThemeModeFromName("dark"))
	assert.Equal(t, ThemeModeLight, ThemeModeFromName("light"))
	assert.Equal(t, ThemeModeLight, ThemeModeFromName("anything-else"))
}

func TestThemeToggleRendersBothGlyphs(t *testing.T) {
	t.Parallel()

	out := NewThemeToggle().View()
	assert.Contains(t, out, "☀")
	assert.Contains(t, out, "☾")
}
