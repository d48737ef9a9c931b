package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// trailPoint is one recorded pointer position with its remaining life.
type trailPoint struct {
	x, y int
	life int
}

// CursorTrail keeps a fading wake behind the pointer. Each recorded point
// starts at full life and fades one step per frame until it disappears.
type CursorTrail struct {
	BaseComponent
	width  int
	height int
	life   int
	points []trailPoint
}

// NewCursorTrail creates a trail canvas of the given size.
func NewCursorTrail(width, height int) *CursorTrail {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &CursorTrail{
		BaseComponent: NewBaseComponent(),
		width:         width,
		height:        height,
		life:          6,
	}
}

// WithLife sets how many frames a point survives.
func (c *CursorTrail) WithLife(frames int) *CursorTrail {
	if frames > 0 {
		c.life = frames
	}
	return c
}

// Record adds a pointer position at full life. Positions outside the
// canvas are ignored.
func (c *CursorTrail) Record(x, y int) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.points = append(c.points, trailPoint{x: x, y: y, life: c.life})
}

// Step ages every point one frame and drops the expired ones.
func (c *CursorTrail) Step() {
	alive := c.points[:0]
	for _, p := range c.points {
		p.life--
		if p.life > 0 {
			alive = append(alive, p)
		}
	}
	c.points = alive
}

// Len returns the number of live points.
func (c *CursorTrail) Len() int {
	return len(c.points)
}

// View renders with the default theme.
func (c *CursorTrail) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext paints the wake, newest points brightest. Overlapping
// points keep the freshest glyph.
func (c *CursorTrail) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme

	grid := make([]int, c.width*c.height)
	for _, p := range c.points {
		idx := p.y*c.width + p.x
		if p.life > grid[idx] {
			grid[idx] = p.life
		}
	}

	scale := theme.Scales.Scale(PaletteCyan)
	rows := make([]string, c.height)
	var row strings.Builder
	for y := 0; y < c.height; y++ {
		row.Reset()
		for x := 0; x < c.width; x++ {
			life := grid[y*c.width+x]
			if life == 0 {
				row.WriteByte(' ')
				continue
			}
			glyph, shade := c.fade(life)
			row.WriteString(lipgloss.NewStyle().Foreground(scale.Color(shade)).Render(glyph))
		}
		rows[y] = row.String()
	}

	return c.ComputeStyle(theme).Render(strings.Join(rows, "\n"))
}

// fade maps remaining life to a glyph and shade, brightest when fresh.
func (c *CursorTrail) fade(life int) (string, PaletteShade) {
	ratio := float64(life) / float64(c.life)
	switch {
	case ratio > 0.66:
		return "●", PaletteShade400
	case ratio > 0.33:
		return "•", PaletteShade600
	default:
		return "·", PaletteShade800
	}
}
