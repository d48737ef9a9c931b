package catalog

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glintui/glint/internal/anim"
	"github.com/glintui/glint/internal/config"
	"github.com/glintui/glint/internal/particle"
	"github.com/glintui/glint/internal/ui/components"
)

// holdFrames is how long cycling stories linger on each state.
const holdFrames = 20

// BuiltinRegistry returns a registry populated with one story per component
// family, configured from cfg.
func BuiltinRegistry(cfg *config.Config) (*Registry, error) {
	registry := NewRegistry()
	for _, story := range builtinStories(cfg) {
		if err := registry.Register(story); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

func builtinStories(cfg *config.Config) []Story {
	return []Story{
		{
			ID:          "buttons",
			Title:       "Buttons",
			Description: "Button variants and interaction states.",
			New:         func() View { return newButtonsStory() },
		},
		{
			ID:          "badges-alerts",
			Title:       "Badges & Alerts",
			Description: "Semantic badges and alert boxes.",
			New:         func() View { return newBadgesStory() },
		},
		{
			ID:          "cards",
			Title:       "Cards & Panels",
			Description: "Layout containers with titles, dividers, and footers.",
			New:         func() View { return newCardsStory() },
		},
		{
			ID:          "stepper",
			Title:       "Stepper",
			Description: "Numbered steps advancing along a progress rail.",
			New:         func() View { return newStepperStory() },
		},
		{
			ID:          "timeline",
			Title:       "Timeline",
			Description: "Dated entries connected by a vertical rail.",
			New:         func() View { return newTimelineStory() },
		},
		{
			ID:          "gallery",
			Title:       "Gallery",
			Description: "A slide deck that autoplays with dot indicators.",
			New:         func() View { return newGalleryStory() },
		},
		{
			ID:          "theme-toggle",
			Title:       "Theme Toggle",
			Description: "The sun/moon switch, flipping on its own.",
			New:         func() View { return newToggleStory() },
		},
		{
			ID:          "magnet",
			Title:       "Magnet",
			Description: "A label chasing an orbiting pointer on a spring.",
			New:         func() View { return newMagnetStory() },
		},
		{
			ID:          "cursor-trail",
			Title:       "Cursor Trail",
			Description: "A fading wake behind a wandering pointer.",
			New:         func() View { return newTrailStory() },
		},
		{
			ID:          "particles-linked",
			Title:       "Particles (linked)",
			Description: "The particle field with connection lines and pointer drift.",
			New: func() View {
				opts := cfg.Particles.Options()
				opts.ConnectLines = true
				return newParticleStory(opts)
			},
		},
		{
			ID:          "particles-minimal",
			Title:       "Particles (minimal)",
			Description: "The same field, no lines and no pointer effects.",
			New: func() View {
				opts := cfg.Particles.Options()
				opts.ConnectLines = false
				opts.MouseInteraction = false
				opts.Parallax = false
				return newParticleStory(opts)
			},
		},
	}
}

// staticStory renders a fixed component tree and ignores frames.
type staticStory struct {
	render func(components.RenderContext) string
}

func (s *staticStory) Init() tea.Cmd                  { return nil }
func (s *staticStory) Update(tea.Msg) (View, tea.Cmd) { return s, nil }
func (s *staticStory) Shutdown()                      {}
func (s *staticStory) ViewWithContext(ctx components.RenderContext) string {
	return s.render(ctx)
}

func newButtonsStory() View {
	row := components.HStack(
		components.PrimaryButton("Save"),
		components.SecondaryButton("Preview"),
		components.SuccessButton("Publish"),
		components.DangerButton("Delete"),
		components.GhostButton("Cancel"),
	).WithGap(2)
	states := components.HStack(
		components.PrimaryButton("Hovered").Hover(),
		components.PrimaryButton("Pressed").Press(),
		components.PrimaryButton("Disabled").Disable(),
	).WithGap(2)

	stack := components.VStack(
		components.TitleText("Variants"),
		row,
		components.VerticalSpacer(1),
		components.TitleText("States"),
		states,
	).WithGap(1)
	return &staticStory{render: stack.ViewWithContext}
}

func newBadgesStory() View {
	badges := components.HStack(
		components.PrimaryBadge("new"),
		components.SuccessBadge("passing"),
		components.WarningBadge("flaky"),
		components.ErrorBadge("broken"),
		components.InfoBadge("beta"),
	).WithGap(1)

	stack := components.VStack(
		badges,
		components.VerticalSpacer(1),
		components.SuccessAlert("All previews rendered."),
		components.WarningAlert("Terminal is narrower than 80 columns."),
		components.ErrorAlert("Could not load the preference file."),
	).WithGap(1)
	return &staticStory{render: stack.ViewWithContext}
}

func newCardsStory() View {
	card := components.NewCard(
		components.NewText("Cards group related content behind a border."),
		components.CaptionText("They take titles, dividers, and footers."),
	).WithTitle("Release notes").WithFooter(components.CaptionText("updated today"))

	panel := components.NewPanel(
		components.NewText("Panels sit on the surface color."),
	).WithTitle("Side panel")

	stack := components.VStack(card, panel).WithGap(1)
	return &staticStory{render: stack.ViewWithContext}
}

// stepperStory walks the stepper forward one step per hold, wrapping back
// to the start after the last step.
type stepperStory struct {
	stepper *components.Stepper
	frames  int
}

func newStepperStory() View {
	return &stepperStory{
		stepper: components.NewStepper("Fetch", "Resolve", "Render", "Publish"),
	}
}

func (s *stepperStory) Init() tea.Cmd { return nil }

func (s *stepperStory) Update(msg tea.Msg) (View, tea.Cmd) {
	if _, ok := msg.(FrameMsg); !ok {
		return s, nil
	}
	s.frames++
	if s.frames%holdFrames != 0 {
		return s, nil
	}
	if s.stepper.Current() == s.stepper.Count()-1 {
		s.stepper.Reset()
	} else {
		s.stepper.Advance()
	}
	return s, nil
}

func (s *stepperStory) ViewWithContext(ctx components.RenderContext) string {
	return s.stepper.ViewWithContext(ctx)
}

func (s *stepperStory) Shutdown() {}

func newTimelineStory() View {
	base := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	timeline := components.NewTimeline(
		components.TimelineEntry{Time: base, Title: "Project created", Variant: components.BadgeVariantPrimary},
		components.TimelineEntry{Time: base.AddDate(0, 0, 9), Title: "First preview", Description: "Buttons and badges only.", Variant: components.BadgeVariantInfo},
		components.TimelineEntry{Time: base.AddDate(0, 1, 2), Title: "Particle field landed", Description: "Linked mode with pointer drift.", Variant: components.BadgeVariantSuccess},
		components.TimelineEntry{Time: base.AddDate(0, 2, 0), Title: "Flaky resize handling", Variant: components.BadgeVariantWarning},
	)
	return &staticStory{render: timeline.ViewWithContext}
}

// galleryStory autoplays through its slides.
type galleryStory struct {
	gallery *components.Gallery
	frames  int
}

func newGalleryStory() View {
	return &galleryStory{
		gallery: components.NewGallery(
			components.GallerySlide{Content: components.PrimaryButton("Slide one"), Caption: "A button"},
			components.GallerySlide{Content: components.SuccessAlert("Slide two"), Caption: "An alert"},
			components.GallerySlide{Content: components.NewStepper("A", "B", "C"), Caption: "A stepper"},
		),
	}
}

func (g *galleryStory) Init() tea.Cmd { return nil }

func (g *galleryStory) Update(msg tea.Msg) (View, tea.Cmd) {
	if _, ok := msg.(FrameMsg); ok {
		g.frames++
		if g.frames%holdFrames == 0 {
			g.gallery.Next()
		}
	}
	return g, nil
}

func (g *galleryStory) ViewWithContext(ctx components.RenderContext) string {
	return g.gallery.ViewWithContext(ctx)
}

func (g *galleryStory) Shutdown() {}

// toggleStory flips the switch on a timer.
type toggleStory struct {
	toggle *components.ThemeToggle
	frames int
}

func newToggleStory() View {
	return &toggleStory{toggle: components.NewThemeToggle()}
}

func (s *toggleStory) Init() tea.Cmd { return nil }

func (s *toggleStory) Update(msg tea.Msg) (View, tea.Cmd) {
	if _, ok := msg.(FrameMsg); ok {
		s.frames++
		if s.frames%holdFrames == 0 {
			s.toggle.Toggle()
		}
	}
	return s, nil
}

func (s *toggleStory) ViewWithContext(ctx components.RenderContext) string {
	return s.toggle.ViewWithContext(ctx)
}

func (s *toggleStory) Shutdown() {}

// magnetStory orbits a phantom pointer around the label.
type magnetStory struct {
	magnet *components.Magnet
	angle  float64
}

func newMagnetStory() View {
	return &magnetStory{magnet: components.NewMagnet("hover me")}
}

func (s *magnetStory) Init() tea.Cmd { return nil }

func (s *magnetStory) Update(msg tea.Msg) (View, tea.Cmd) {
	if _, ok := msg.(FrameMsg); ok {
		s.angle += 0.12
		dist := 6.0
		s.magnet.SetPointer(math.Cos(s.angle)*dist, math.Sin(s.angle)*dist)
		s.magnet.Step()
	}
	return s, nil
}

func (s *magnetStory) ViewWithContext(ctx components.RenderContext) string {
	return s.magnet.ViewWithContext(ctx)
}

func (s *magnetStory) Shutdown() {}

// trailStory traces a Lissajous path across the canvas.
type trailStory struct {
	trail  *components.CursorTrail
	width  int
	height int
	t      float64
}

func newTrailStory() View {
	return &trailStory{width: 40, height: 12, trail: components.NewCursorTrail(40, 12)}
}

func (s *trailStory) Init() tea.Cmd { return nil }

func (s *trailStory) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case SizeMsg:
		if msg.Width > 0 && msg.Height > 0 {
			s.width, s.height = msg.Width, msg.Height
			s.trail = components.NewCursorTrail(msg.Width, msg.Height)
		}
	case FrameMsg:
		s.t += 0.15
		x := (math.Sin(s.t) + 1) / 2 * float64(s.width-1)
		y := (math.Sin(s.t*1.3+1) + 1) / 2 * float64(s.height-1)
		s.trail.Record(int(x), int(y))
		s.trail.Step()
	}
	return s, nil
}

func (s *trailStory) ViewWithContext(ctx components.RenderContext) string {
	return s.trail.ViewWithContext(ctx)
}

func (s *trailStory) Shutdown() {}

// particleStory mounts a field and pumps its scheduler from browser frames,
// so the field's own frame loop stays deterministic.
type particleStory struct {
	field *particle.Field
	sched *anim.ManualScheduler
	err   error
}

func newParticleStory(opts particle.Options) View {
	story := &particleStory{sched: anim.NewManualScheduler(time.Now())}
	story.field, story.err = particle.NewField(opts)
	return story
}

func (s *particleStory) Init() tea.Cmd { return nil }

func (s *particleStory) Update(msg tea.Msg) (View, tea.Cmd) {
	if s.err != nil {
		return s, nil
	}
	switch msg := msg.(type) {
	case SizeMsg:
		if s.field.Running() {
			s.field.Resize(msg.Width, msg.Height)
		} else {
			s.field.Mount(s.sched, msg.Width, msg.Height)
		}
	case PointerMsg:
		if msg.Active {
			s.field.SetPointer(msg.X, msg.Y)
		} else {
			s.field.ClearPointer()
		}
	case FrameMsg:
		if s.field.Running() {
			s.sched.Advance(time.Second / 30)
		}
	}
	return s, nil
}

func (s *particleStory) ViewWithContext(components.RenderContext) string {
	if s.err != nil {
		return components.ErrorAlert(s.err.Error()).View()
	}
	return s.field.View()
}

func (s *particleStory) Shutdown() {
	if s.field != nil {
		s.field.Unmount()
	}
}
