package anim

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualSchedulerAdvanceFiresPending(t *testing.T) {
	t.Parallel()

	sched := NewManualScheduler(time.Unix(0, 0))
	var fired []time.Time
	sched.Schedule(func(now time.Time) { fired = append(fired, now) })
	require.Equal(t, 1, sched.Pending())

	sched.Advance(time.Second)
	require.Len(t, fired, 1)
	assert.Equal(t, time.Unix(1, 0), fired[0])
	assert.Equal(t, 0, sched.Pending())
}

func TestManualSchedulerReschedulingLandsNextFrame(t *testing.T) {
	t.Parallel()

	sched := NewManualScheduler(time.Unix(0, 0))
	frames := 0
	var loop func(time.Time)
	loop = func(time.Time) {
		frames++
		sched.Schedule(loop)
	}
	sched.Schedule(loop)

	sched.Advance(time.Second)
	sched.Advance(time.Second)
	sched.Advance(time.Second)
	assert.Equal(t, 3, frames)
	assert.Equal(t, 1, sched.Pending())
}

func TestManualSchedulerCancel(t *testing.T) {
	t.Parallel()

	sched := NewManualScheduler(time.Unix(0, 0))
	fired := false
	handle := sched.Schedule(func(time.Time) { fired = true })
	sched.Cancel(handle)

	sched.Advance(time.Second)
	assert.False(t, fired)
	assert.Equal(t, 0, sched.Pending())

	// Cancelling again is harmless.
	sched.Cancel(handle)
}

func TestTimerSchedulerFiresAndCancels(t *testing.T) {
	t.Parallel()

	sched := NewTimerScheduler(time.Millisecond)
	defer sched.Stop()

	var fired atomic.Int32
	done := make(chan struct{})
	sched.Schedule(func(time.Time) {
		fired.Add(1)
		close(done)
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduled frame never fired")
	}
	assert.Equal(t, int32(1), fired.Load())

	cancelled := sched.Schedule(func(time.Time) { fired.Add(1) })
	sched.Cancel(cancelled)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())
}

func TestFalloff(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.0, Falloff(0, 10))
	assert.Equal(t, 0.5, Falloff(5, 10))
	assert.Equal(t, 0.0, Falloff(10, 10))
	assert.Equal(t, 0.0, Falloff(15, 10))
	assert.Equal(t, 0.0, Falloff(5, 0))
	assert.Equal(t, 1.0, Falloff(-1, 10))
}

func TestSpring2DSettlesOnTarget(t *testing.T) {
	t.Parallel()

	spring := NewSpring2D(60, 6.0, 1.0)
	spring.SetTarget(10, -4)

	for i := 0; i < 600; i++ {
		spring.Update()
	}
	assert.InDelta(t, 10.0, spring.X, 0.01)
	assert.InDelta(t, -4.0, spring.Y, 0.01)
	assert.True(t, spring.AtRest())
}

func TestSpring2DSnap(t *testing.T) {
	t.Parallel()

	spring := NewSpring2D(60, 6.0, 1.0)
	spring.SetTarget(100, 100)
	spring.Update()

	spring.Snap(3, 4)
	assert.Equal(t, 3.0, spring.X)
	assert.Equal(t, 4.0, spring.Y)
	assert.True(t, spring.AtRest())
}
