package components

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/glintui/glint/internal/anim"
)

// Magnet renders a label that leans toward a nearby pointer. The pull
// strength falls off linearly with distance and the label eases into each
// new offset on a spring, so releasing the pointer snaps nothing.
type Magnet struct {
	BaseComponent
	label     string
	radius    float64
	intensity float64
	spring    *anim.Spring2D
}

// NewMagnet creates a magnet around the given label.
func NewMagnet(label string) *Magnet {
	return &Magnet{
		BaseComponent: NewBaseComponent(),
		label:         label,
		radius:        12,
		intensity:     4,
		spring:        anim.NewSpring2D(30, 7.0, 0.6),
	}
}

// WithRadius sets the pull radius in cells.
func (m *Magnet) WithRadius(radius float64) *Magnet {
	m.radius = radius
	return m
}

// WithIntensity sets the maximum offset in cells at zero distance.
func (m *Magnet) WithIntensity(intensity float64) *Magnet {
	m.intensity = intensity
	return m
}

// SetPointer updates the pointer position relative to the label centre.
// The spring target becomes an offset toward the pointer, scaled by the
// proximity falloff.
func (m *Magnet) SetPointer(dx, dy float64) {
	dist := math.Hypot(dx, dy)
	pull := anim.Falloff(dist, m.radius) * m.intensity
	if dist > 0 {
		m.spring.SetTarget(dx/dist*pull, dy/dist*pull)
	} else {
		m.spring.SetTarget(0, 0)
	}
}

// Release sends the label back to its resting position.
func (m *Magnet) Release() {
	m.spring.SetTarget(0, 0)
}

// Step advances the spring one frame.
func (m *Magnet) Step() {
	m.spring.Update()
}

// Offset returns the current displacement from the resting position.
func (m *Magnet) Offset() (float64, float64) {
	return m.spring.X, m.spring.Y
}

// AtRest reports whether the label has settled.
func (m *Magnet) AtRest() bool {
	return m.spring.AtRest()
}

// View renders with the default theme.
func (m *Magnet) View() string {
	return m.ViewWithContext(DefaultContext())
}

// ViewWithContext places the label inside a frame sized for the maximum
// displacement, shifted by the current spring offset.
func (m *Magnet) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme

	reach := int(math.Ceil(m.intensity))
	width := lipgloss.Width(m.label) + 2*reach
	height := 1 + 2*reach

	offX := int(math.Round(m.spring.X))
	offY := int(math.Round(m.spring.Y))
	offX = clampInt(offX, -reach, reach)
	offY = clampInt(offY, -reach, reach)

	label := lipgloss.NewStyle().
		Foreground(theme.Palette.Primary.Base).
		Bold(true).
		Render(m.label)

	placed := lipgloss.NewStyle().
		Width(width).
		Height(height).
		PaddingLeft(reach + offX).
		PaddingTop(reach + offY).
		Render(label)

	return m.ComputeStyle(theme).Render(placed)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
