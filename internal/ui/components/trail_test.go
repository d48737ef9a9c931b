package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursorTrailFadesOut(t *testing.T) {
	t.Parallel()

	trail := NewCursorTrail(20, 5).WithLife(3)
	trail.Record(4, 2)
	assert.Equal(t, 1, trail.Len())

	trail.Step()
	trail.Step()
	assert.Equal(t, 1, trail.Len())

	trail.Step()
	assert.Equal(t, 0, trail.Len())
}

func TestCursorTrailIgnoresOutOfBounds(t *testing.T) {
	t.Parallel()

	trail := NewCursorTrail(10, 4)
	trail.Record(-1, 0)
	trail.Record(0, -1)
	trail.Record(10, 0)
	trail.Record(0, 4)
	assert.Equal(t, 0, trail.Len())
}

func TestCursorTrailRendersGlyphs(t *testing.T) {
	t.Parallel()

	trail := NewCursorTrail(10, 3).WithLife(6)
	trail.Record(1, 1)
	out := trail.View()
	assert.Contains(t, out, "●")
}

func TestCursorTrailCanvasShape(t *testing.T) {
	t.Parallel()

	trail := NewCursorTrail(8, 3)
	out := trail.View()
	lines := 1
	for _, r := range out {
		if r == '\n' {
			lines++
		}
	}
	assert.Equal(t, 3, lines)
}
