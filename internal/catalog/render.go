package catalog

import (
	"time"

	"github.com/glintui/glint/internal/ui/components"
)

// RenderStory runs a story non-interactively: size it, advance the given
// number of frames, and return the final rendered frame. The instance is
// shut down before returning.
func RenderStory(story Story, theme components.Theme, width, height, frames int) string {
	view := story.New()
	defer func() { view.Shutdown() }()

	view.Init()
	view, _ = view.Update(SizeMsg{Width: width, Height: height})

	now := time.Now()
	interval := time.Second / 30
	for i := 0; i < frames; i++ {
		now = now.Add(interval)
		view, _ = view.Update(FrameMsg{Time: now})
	}

	ctx := components.DefaultContext().WithTheme(theme)
	ctx.ParentWidth = width
	ctx = ctx.WithConstraints(components.WithMaxWidth(width))
	return view.ViewWithContext(ctx)
}
