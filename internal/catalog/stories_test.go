package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glintui/glint/internal/config"
	"github.com/glintui/glint/internal/particle"
	"github.com/glintui/glint/internal/ui/components"
)

func TestBuiltinRegistryRegistersEveryFamily(t *testing.T) {
	t.Parallel()

	registry, err := BuiltinRegistry(config.Default())
	require.NoError(t, err)

	for _, id := range []string{
		"buttons", "badges-alerts", "cards", "stepper", "timeline",
		"gallery", "theme-toggle", "magnet", "cursor-trail",
		"particles-linked", "particles-minimal",
	} {
		_, err := registry.Get(id)
		assert.NoError(t, err, "story %s", id)
	}
}

func TestEveryBuiltinStoryRendersAndShutsDown(t *testing.T) {
	t.Parallel()

	registry, err := BuiltinRegistry(config.Default())
	require.NoError(t, err)
	theme := components.DefaultTheme()

	for _, story := range registry.List() {
		story := story
		t.Run(story.ID, func(t *testing.T) {
			t.Parallel()
			out := RenderStory(story, theme, 60, 18, 5)
			assert.NotEmpty(t, out)
		})
	}
}

func TestParticleStoryLifecycle(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	opts := cfg.Particles.Options()
	opts.Count = 10
	view := newParticleStory(opts)

	story, ok := view.(*particleStory)
	require.True(t, ok)
	require.NoError(t, story.err)
	assert.False(t, story.field.Running())

	view, _ = view.Update(SizeMsg{Width: 40, Height: 12})
	assert.True(t, story.field.Running())

	view, _ = view.Update(FrameMsg{Time: time.Now()})
	assert.Equal(t, uint64(1), story.field.Frames())
	require.Len(t, story.field.Particles(), 10)

	view.Shutdown()
	assert.False(t, story.field.Running())

	// Shutting down twice is safe.
	view.Shutdown()
}

func TestParticleStoryTracksPointer(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	require.True(t, cfg.Particles.MouseInteraction)
	require.True(t, cfg.Particles.Parallax)

	view := newParticleStory(cfg.Particles.Options())
	story := view.(*particleStory)
	require.NoError(t, story.err)

	view, _ = view.Update(SizeMsg{Width: 40, Height: 12})
	view, _ = view.Update(PointerMsg{X: 10, Y: 5, Active: true})
	assert.Equal(t, particle.Pointer{X: 10, Y: 5, Active: true}, story.field.Pointer())

	view, _ = view.Update(PointerMsg{Active: false})
	assert.Equal(t, particle.Pointer{}, story.field.Pointer())

	view.Shutdown()
}

func TestGalleryStoryAutoplays(t *testing.T) {
	t.Parallel()

	view := newGalleryStory()
	story := view.(*galleryStory)
	start := story.gallery.Index()

	for i := 0; i < holdFrames; i++ {
		view, _ = view.Update(FrameMsg{Time: time.Now()})
	}
	assert.NotEqual(t, start, story.gallery.Index())
}

func TestStepperStoryWrapsAround(t *testing.T) {
	t.Parallel()

	view := newStepperStory()
	story := view.(*stepperStory)
	steps := story.stepper.Count()

	// Run long enough to pass the last step; it must land back on an
	// earlier one rather than sticking at the end.
	for i := 0; i < holdFrames*(steps+1); i++ {
		view, _ = view.Update(FrameMsg{Time: time.Now()})
	}
	assert.Less(t, story.stepper.Current(), steps-1)
}

func TestTrailStoryRecordsAndFades(t *testing.T) {
	t.Parallel()

	view := newTrailStory()
	story := view.(*trailStory)

	view, _ = view.Update(SizeMsg{Width: 30, Height: 10})
	for i := 0; i < 3; i++ {
		view, _ = view.Update(FrameMsg{Time: time.Now()})
	}
	assert.Greater(t, story.trail.Len(), 0)
}
