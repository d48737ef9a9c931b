package particle

import (
	"math/rand"
	"sync"
	"time"

	"github.com/glintui/glint/internal/anim"
)

// Pointer is the last known pointer position in cell coordinates. Inactive
// means no pointer is over the field.
type Pointer struct {
	X, Y   float64
	Active bool
}

// State is the field lifecycle.
type State int

const (
	StateStopped State = iota
	StateRunning
)

// Field binds a particle store to a scheduler. Pointer events only record
// state; the scheduled frame callback owns every particle mutation, so no
// locking is needed around the store itself.
type Field struct {
	opts     Options
	renderer *Renderer

	mu        sync.Mutex
	rng       *rand.Rand
	particles []Particle
	pointer   Pointer
	width     int
	height    int
	state     State
	sched     anim.Scheduler
	handle    anim.Handle
	pending   bool
	frames    uint64
}

// NewField creates a field with validated options. Options are taken as
// given; start from DefaultOptions to pick up the stock values. The RNG is
// seeded from the clock; use WithSeed for deterministic runs.
func NewField(opts Options) (*Field, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Field{
		opts:     opts,
		renderer: NewRenderer(opts, "#0f172a"),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// WithSeed reseeds the field's RNG. Call before Mount.
func (f *Field) WithSeed(seed int64) *Field {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rng = rand.New(rand.NewSource(seed))
	return f
}

// Options returns the field's effective configuration.
func (f *Field) Options() Options {
	return f.opts
}

// Mount sizes the field, seeds the store, and schedules the first frame.
// Mounting an already running field is a no-op.
func (f *Field) Mount(sched anim.Scheduler, width, height int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == StateRunning {
		return
	}
	f.state = StateRunning
	f.sched = sched
	f.width = width
	f.height = height
	f.particles = newParticles(f.rng, f.opts, float64(width), float64(height))
	f.scheduleLocked()
}

// Unmount cancels the pending frame and stops the field. Only the first
// call does anything; teardown is idempotent.
func (f *Field) Unmount() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateRunning {
		return
	}
	f.state = StateStopped
	if f.pending {
		f.sched.Cancel(f.handle)
		f.pending = false
	}
	f.sched = nil
}

// Running reports whether the field is mounted.
func (f *Field) Running() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state == StateRunning
}

// SetPointer records a pointer position. It never touches particles.
func (f *Field) SetPointer(x, y float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pointer = Pointer{X: x, Y: y, Active: true}
}

// ClearPointer marks the pointer as gone.
func (f *Field) ClearPointer() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pointer = Pointer{}
}

// Pointer returns the last recorded pointer state.
func (f *Field) Pointer() Pointer {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pointer
}

// Resize changes the field bounds and wraps existing positions into them.
// The particle count never changes.
func (f *Field) Resize(width, height int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.width = width
	f.height = height
	w, h := float64(width), float64(height)
	for i := range f.particles {
		f.particles[i].X = wrap(f.particles[i].X, w)
		f.particles[i].Y = wrap(f.particles[i].Y, h)
	}
}

// Frames returns the number of frames stepped since Mount.
func (f *Field) Frames() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.frames
}

// Particles returns a copy of the store.
func (f *Field) Particles() []Particle {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

// View renders the current frame.
func (f *Field) View() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.renderer.Frame(f.particles, f.width, f.height)
}

func (f *Field) scheduleLocked() {
	f.handle = f.sched.Schedule(f.frame)
	f.pending = true
}

// frame is the scheduled callback: step once, then reschedule while running.
func (f *Field) frame(time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.pending = false
	if f.state != StateRunning {
		return
	}
	step(f.rng, f.opts, f.particles, f.pointer, float64(f.width), float64(f.height))
	f.frames++
	f.scheduleLocked()
}
