package particle

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Renderer rasterizes a particle field into a cell grid. Terminals have no
// alpha channel, so opacity is emulated by blending the particle color over
// the background color in RGB space.
type Renderer struct {
	opts Options
	fg   colorful.Color
	bg   colorful.Color
}

// NewRenderer creates a renderer for the given options over a background
// hex color. Unparseable colors fall back to blue on near-black.
func NewRenderer(opts Options, background string) *Renderer {
	fg, err := colorful.Hex(opts.Color)
	if err != nil {
		fg, _ = colorful.Hex("#60a5fa")
	}
	bg, err := colorful.Hex(background)
	if err != nil {
		bg, _ = colorful.Hex("#0f172a")
	}
	return &Renderer{opts: opts, fg: fg, bg: bg}
}

// cell is one grid position: a glyph and the opacity it is drawn at.
// Particles always win over line segments; between equals, the more opaque
// drawing wins.
type cell struct {
	glyph    rune
	alpha    float64
	particle bool
}

// Frame renders one frame. The grid is rebuilt from scratch every call; the
// stepper is assumed to have already run.
func (r *Renderer) Frame(particles []Particle, w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	grid := make([]cell, w*h)

	if r.opts.ConnectLines {
		r.plotConnections(grid, particles, w, h)
	}
	for i := range particles {
		p := &particles[i]
		x, y := int(p.X), int(p.Y)
		if x < 0 || x >= w || y < 0 || y >= h {
			continue
		}
		c := &grid[y*w+x]
		if !c.particle || p.Opacity > c.alpha {
			*c = cell{glyph: r.glyphFor(p.Radius), alpha: p.Opacity, particle: true}
		}
	}

	return r.paint(grid, w, h)
}

// plotConnections draws a faint line between every unordered pair of
// particles closer than ConnectDistance. Opacity decays linearly with
// distance: (1 - d/D) * 0.3.
func (r *Renderer) plotConnections(grid []cell, particles []Particle, w, h int) {
	maxDist := r.opts.ConnectDistance
	if maxDist <= 0 {
		return
	}
	for i := 0; i < len(particles); i++ {
		for j := i + 1; j < len(particles); j++ {
			a, b := &particles[i], &particles[j]
			d := math.Hypot(a.X-b.X, a.Y-b.Y)
			if d >= maxDist {
				continue
			}
			alpha := (1 - d/maxDist) * 0.3
			plotLine(grid, w, h, a.X, a.Y, b.X, b.Y, alpha)
		}
	}
}

// plotLine walks the segment between two points cell by cell.
func plotLine(grid []cell, w, h int, x0, y0, x1, y1, alpha float64) {
	steps := int(math.Max(math.Abs(x1-x0), math.Abs(y1-y0)))
	if steps == 0 {
		steps = 1
	}
	for s := 0; s <= steps; s++ {
		t := float64(s) / float64(steps)
		x := int(x0 + (x1-x0)*t)
		y := int(y0 + (y1-y0)*t)
		if x < 0 || x >= w || y < 0 || y >= h {
			continue
		}
		c := &grid[y*w+x]
		if c.particle {
			continue
		}
		if alpha > c.alpha {
			*c = cell{glyph: '·', alpha: alpha}
		}
	}
}

// glyphFor buckets a radius into a dot size across the configured range.
func (r *Renderer) glyphFor(radius float64) rune {
	span := r.opts.MaxSize - r.opts.MinSize
	if span <= 0 {
		return '•'
	}
	switch ratio := (radius - r.opts.MinSize) / span; {
	case ratio > 0.66:
		return '●'
	case ratio > 0.33:
		return '•'
	default:
		return '·'
	}
}

func (r *Renderer) paint(grid []cell, w, h int) string {
	// Styles are cached per alpha bucket; a frame touches few distinct ones.
	styles := make(map[int]lipgloss.Style)
	styleFor := func(alpha float64) lipgloss.Style {
		bucket := int(alpha * 20)
		if style, ok := styles[bucket]; ok {
			return style
		}
		blended := r.bg.BlendRgb(r.fg, float64(bucket)/20)
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(blended.Hex()))
		styles[bucket] = style
		return style
	}

	var sb strings.Builder
	for y := 0; y < h; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < w; x++ {
			c := grid[y*w+x]
			if c.glyph == 0 {
				sb.WriteByte(' ')
				continue
			}
			sb.WriteString(styleFor(c.alpha).Render(string(c.glyph)))
		}
	}
	return sb.String()
}
