package particle

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glintui/glint/internal/anim"
)

func TestOptionsDefaults(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	assert.Equal(t, 50, opts.Count)
	assert.Equal(t, "#60a5fa", opts.Color)
	assert.Equal(t, 1.0, opts.Speed)
	assert.LessOrEqual(t, opts.MinSize, opts.MaxSize)
	assert.Greater(t, opts.ConnectDistance, 0.0)
	assert.Greater(t, opts.MouseRadius, 0.0)
}

func TestOptionsValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"defaults are valid", DefaultOptions(), false},
		{"count over cap", Options{Count: 501}.withDefaults(), true},
		{"negative speed", Options{Speed: -1}.withDefaults(), true},
		{"min above max", Options{MinSize: 5, MaxSize: 2}.withDefaults(), true},
		{"bad color", Options{Color: "blue-ish"}.withDefaults(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.opts.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewParticlesSeeding(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	opts := DefaultOptions()
	opts.Count = 200
	particles := newParticles(rng, opts, 80, 24)

	require.Len(t, particles, 200)
	for _, p := range particles {
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.Less(t, p.X, 80.0)
		assert.GreaterOrEqual(t, p.Y, 0.0)
		assert.Less(t, p.Y, 24.0)
		assert.LessOrEqual(t, math.Abs(p.VX), opts.Speed/2)
		assert.LessOrEqual(t, math.Abs(p.VY), opts.Speed/2)
		assert.GreaterOrEqual(t, p.Radius, opts.MinSize)
		assert.LessOrEqual(t, p.Radius, opts.MaxSize)
		assert.GreaterOrEqual(t, p.Opacity, 0.5)
		assert.LessOrEqual(t, p.Opacity, 1.0)
	}
}

func TestNewParticlesZeroCount(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	opts := DefaultOptions()
	opts.Count = 0

	assert.Empty(t, newParticles(rng, opts, 80, 24))
}

func TestStepBoundedness(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	opts := DefaultOptions()
	opts.Count = 80
	opts.Speed = 3
	opts.MouseInteraction = true
	opts.Parallax = true
	particles := newParticles(rng, opts, 40, 12)
	pointer := Pointer{X: 20, Y: 6, Active: true}

	for frame := 0; frame < 500; frame++ {
		step(rng, opts, particles, pointer, 40, 12)
		for i, p := range particles {
			require.GreaterOrEqual(t, p.X, 0.0, "frame %d particle %d", frame, i)
			require.Less(t, p.X, 40.0, "frame %d particle %d", frame, i)
			require.GreaterOrEqual(t, p.Y, 0.0, "frame %d particle %d", frame, i)
			require.Less(t, p.Y, 12.0, "frame %d particle %d", frame, i)
		}
	}
}

func TestStepNoStall(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(3))
	opts := DefaultOptions()
	opts.Count = 30
	opts.Speed = 0.01
	particles := newParticles(rng, opts, 60, 20)

	// After every frame each axis either kept a live velocity or was
	// reseeded above the threshold.
	for frame := 0; frame < 100; frame++ {
		step(rng, opts, particles, Pointer{}, 60, 20)
		for i, p := range particles {
			require.GreaterOrEqual(t, math.Abs(p.VX), stallThreshold, "frame %d particle %d", frame, i)
			require.GreaterOrEqual(t, math.Abs(p.VY), stallThreshold, "frame %d particle %d", frame, i)
		}
	}
}

func TestStepRepulsionPushesAway(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(5))
	opts := DefaultOptions()
	opts.MouseInteraction = true
	opts.MouseRadius = 20

	particles := []Particle{{X: 55, Y: 50, Radius: 1, Opacity: 1}}
	step(rng, opts, particles, Pointer{X: 50, Y: 50, Active: true}, 100, 100)

	// Pointer sits to the left, so the push is rightward.
	assert.Greater(t, particles[0].VX, 0.0)
}

func TestStepParallaxDepthScaling(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(5))
	opts := DefaultOptions()
	opts.MouseInteraction = false
	opts.Parallax = true
	opts.ParallaxIntensity = 0.2

	// Velocities start at zero, so position changes this frame come from the
	// parallax nudge alone (reseeding only affects the next frame).
	big := Particle{X: 50, Y: 50, Radius: opts.MaxSize, Opacity: 1}
	small := Particle{X: 50, Y: 50, Radius: opts.MaxSize / 2, Opacity: 1}
	particles := []Particle{big, small}

	// Pointer 25 cells right of centre, on the centre line vertically.
	step(rng, opts, particles, Pointer{X: 75, Y: 50, Active: true}, 100, 100)

	// Offset is displacement * intensity * (radius / MaxSize), eased per
	// frame: 25 * 0.2 * depth * 0.05.
	assert.InDelta(t, 0.25, particles[0].X-big.X, 1e-9)
	assert.InDelta(t, 0.125, particles[1].X-small.X, 1e-9)
	assert.Greater(t, particles[0].X-big.X, particles[1].X-small.X)
	assert.InDelta(t, 0.0, particles[0].Y-big.Y, 1e-9)
	assert.InDelta(t, 0.0, particles[1].Y-small.Y, 1e-9)
}

func TestSeededScenarioZeroSpeed(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.Count = 3
	opts.Speed = 0
	opts.MouseInteraction = false

	field, err := NewField(opts)
	require.NoError(t, err)
	field.WithSeed(42)

	sched := anim.NewManualScheduler(time.Unix(0, 0))
	field.Mount(sched, 100, 100)
	defer field.Unmount()

	for _, p := range field.Particles() {
		assert.Zero(t, p.VX)
		assert.Zero(t, p.VY)
	}

	sched.Advance(time.Second / 30)
	for _, p := range field.Particles() {
		assert.NotZero(t, p.VX)
		assert.NotZero(t, p.VY)
	}

	for frame := 0; frame < 300; frame++ {
		sched.Advance(time.Second / 30)
	}
	particles := field.Particles()
	require.Len(t, particles, 3)
	for _, p := range particles {
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.Less(t, p.X, 100.0)
		assert.GreaterOrEqual(t, p.Y, 0.0)
		assert.Less(t, p.Y, 100.0)
	}
}

func TestConnectionOpacity(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.ConnectLines = true
	opts.ConnectDistance = 100
	renderer := NewRenderer(opts, "#000000")

	particles := []Particle{
		{X: 10, Y: 10, Radius: 1, Opacity: 1},
		{X: 60, Y: 10, Radius: 1, Opacity: 1},
	}
	grid := make([]cell, 100*20)
	renderer.plotConnections(grid, particles, 100, 20)

	// d=50, D=100: opacity (1 - 50/100) * 0.3 = 0.15 on every line cell.
	midway := grid[10*100+35]
	require.NotZero(t, midway.glyph)
	assert.InDelta(t, 0.15, midway.alpha, 1e-9)
}

func TestConnectionSymmetry(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.ConnectLines = true
	opts.ConnectDistance = 30
	renderer := NewRenderer(opts, "#000000")

	particles := []Particle{
		{X: 5, Y: 5, Radius: 1, Opacity: 1},
		{X: 25, Y: 5, Radius: 1, Opacity: 1},
		{X: 70, Y: 5, Radius: 1, Opacity: 1},
	}
	forward := make([]cell, 80*10)
	renderer.plotConnections(forward, particles, 80, 10)

	reversed := []Particle{particles[2], particles[1], particles[0]}
	backward := make([]cell, 80*10)
	renderer.plotConnections(backward, reversed, 80, 10)

	assert.Equal(t, forward, backward)

	// The far particle is beyond ConnectDistance from both others.
	assert.Zero(t, forward[5*80+60].glyph)
}

func TestRendererFrameShape(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	renderer := NewRenderer(opts, "#0f172a")

	frame := renderer.Frame(nil, 12, 4)
	lines := 1
	for _, r := range frame {
		if r == '\n' {
			lines++
		}
	}
	assert.Equal(t, 4, lines)

	assert.Empty(t, renderer.Frame(nil, 0, 0))
}

func TestFieldCountInvariant(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.Count = 25
	field, err := NewField(opts)
	require.NoError(t, err)
	field.WithSeed(9)

	sched := anim.NewManualScheduler(time.Unix(0, 0))
	field.Mount(sched, 60, 20)
	defer field.Unmount()

	for frame := 0; frame < 50; frame++ {
		sched.Advance(time.Second / 30)
		require.Len(t, field.Particles(), 25)
	}

	field.Resize(10, 5)
	require.Len(t, field.Particles(), 25)
	for _, p := range field.Particles() {
		assert.Less(t, p.X, 10.0)
		assert.Less(t, p.Y, 5.0)
	}
}

func TestFieldUnmountIdempotent(t *testing.T) {
	t.Parallel()

	field, err := NewField(DefaultOptions())
	require.NoError(t, err)

	sched := anim.NewManualScheduler(time.Unix(0, 0))
	field.Mount(sched, 40, 10)
	require.True(t, field.Running())
	require.Equal(t, 1, sched.Pending())

	field.Unmount()
	assert.False(t, field.Running())
	assert.Equal(t, 0, sched.Pending())

	// Second teardown is a no-op.
	field.Unmount()
	assert.False(t, field.Running())

	sched.Advance(time.Second)
	assert.Equal(t, uint64(0), field.Frames())
}

func TestFieldMountTwiceKeepsOneFrame(t *testing.T) {
	t.Parallel()

	field, err := NewField(DefaultOptions())
	require.NoError(t, err)

	sched := anim.NewManualScheduler(time.Unix(0, 0))
	field.Mount(sched, 40, 10)
	field.Mount(sched, 40, 10)
	assert.Equal(t, 1, sched.Pending())
}

func TestFieldInvalidOptions(t *testing.T) {
	t.Parallel()

	_, err := NewField(Options{Count: 9999})
	require.Error(t, err)
}

func TestFieldPointerOnlyRecordsState(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.MouseInteraction = true
	field, err := NewField(opts)
	require.NoError(t, err)
	field.WithSeed(11)

	sched := anim.NewManualScheduler(time.Unix(0, 0))
	field.Mount(sched, 40, 10)
	defer field.Unmount()

	before := field.Particles()
	field.SetPointer(20, 5)
	assert.Equal(t, before, field.Particles())

	field.ClearPointer()
	assert.Equal(t, before, field.Particles())
}

func TestWrap(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2.0, wrap(12, 10))
	assert.Equal(t, 8.0, wrap(-2, 10))
	assert.Equal(t, 0.0, wrap(10, 10))
	assert.Equal(t, 0.0, wrap(5, 0))
}
