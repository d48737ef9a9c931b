package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/glintui/glint/internal/ui"
)

// GallerySlide is one slide in a Gallery: content plus an optional caption.
type GallerySlide struct {
	Content ui.Renderable
	Caption string
}

// Gallery cycles through a fixed set of slides. The slide index only moves
// through Next, Prev, and GoTo, and always wraps.
type Gallery struct {
	BaseComponent
	slides []GallerySlide
	index  int
}

// NewGallery creates a gallery over the given slides.
func NewGallery(slides ...GallerySlide) *Gallery {
	return &Gallery{BaseComponent: NewBaseComponent(), slides: slides}
}

// Next advances to the next slide, wrapping at the end.
func (g *Gallery) Next() *Gallery {
	if len(g.slides) > 0 {
		g.index = (g.index + 1) % len(g.slides)
	}
	return g
}

// Prev moves to the previous slide, wrapping at the start.
func (g *Gallery) Prev() *Gallery {
	if len(g.slides) > 0 {
		g.index = (g.index + len(g.slides) - 1) % len(g.slides)
	}
	return g
}

// GoTo jumps to slide i. Out-of-range indices are ignored.
func (g *Gallery) GoTo(i int) *Gallery {
	if i >= 0 && i < len(g.slides) {
		g.index = i
	}
	return g
}

// Index returns the current slide index.
func (g *Gallery) Index() int {
	return g.index
}

// Count returns the number of slides.
func (g *Gallery) Count() int {
	return len(g.slides)
}

// View renders with the default theme.
func (g *Gallery) View() string {
	return g.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the current slide with dot indicators and caption.
func (g *Gallery) ViewWithContext(ctx RenderContext) string {
	if len(g.slides) == 0 {
		return ""
	}
	theme := ctx.Theme
	slide := g.slides[g.index]

	var content string
	if contextual, ok := slide.Content.(ContextualRenderable); ok {
		content = contextual.ViewWithContext(ctx)
	} else if slide.Content != nil {
		content = slide.Content.View()
	}

	activeDot := lipgloss.NewStyle().Foreground(theme.Palette.Primary.Base)
	idleDot := lipgloss.NewStyle().Foreground(theme.Palette.Neutral.Muted)
	dots := make([]string, len(g.slides))
	for i := range g.slides {
		if i == g.index {
			dots[i] = activeDot.Render("●")
		} else {
			dots[i] = idleDot.Render("○")
		}
	}

	footer := strings.Join(dots, " ")
	if slide.Caption != "" {
		caption := TypographyStyle(theme, TypographyVariantCaption).
			Render(fmt.Sprintf("%s (%d/%d)", slide.Caption, g.index+1, len(g.slides)))
		footer = lipgloss.JoinVertical(lipgloss.Center, footer, caption)
	}

	frame := lipgloss.JoinVertical(lipgloss.Center, content, footer)
	return g.ComputeStyle(theme).Render(frame)
}
