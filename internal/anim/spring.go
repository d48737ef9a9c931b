package anim

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Falloff returns the proximity response for a point at the given distance
// from an attractor with the given radius: 1 at the attractor, 0 at the
// radius edge and beyond. Every proximity-driven effect (magnetic pull,
// pointer repulsion) shares this curve.
func Falloff(distance, radius float64) float64 {
	if radius <= 0 || distance >= radius {
		return 0
	}
	if distance < 0 {
		distance = 0
	}
	return (radius - distance) / radius
}

// Spring2D animates a point toward a moving target with spring dynamics.
type Spring2D struct {
	spring harmonica.Spring

	X, Y    float64
	velX    float64
	velY    float64
	targetX float64
	targetY float64
}

// NewSpring2D creates a spring tuned with the given frequency and damping,
// stepped at the given frame rate.
func NewSpring2D(fps int, frequency, damping float64) *Spring2D {
	return &Spring2D{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

// SetTarget moves the point the spring is chasing.
func (s *Spring2D) SetTarget(x, y float64) {
	s.targetX = x
	s.targetY = y
}

// Snap places the point directly at a position with no velocity.
func (s *Spring2D) Snap(x, y float64) {
	s.X, s.Y = x, y
	s.velX, s.velY = 0, 0
	s.targetX, s.targetY = x, y
}

// Update advances the spring one frame and returns the new position.
func (s *Spring2D) Update() (float64, float64) {
	s.X, s.velX = s.spring.Update(s.X, s.velX, s.targetX)
	s.Y, s.velY = s.spring.Update(s.Y, s.velY, s.targetY)
	return s.X, s.Y
}

// AtRest reports whether the point has effectively settled on its target.
func (s *Spring2D) AtRest() bool {
	const eps = 1e-3
	return math.Abs(s.X-s.targetX) < eps &&
		math.Abs(s.Y-s.targetY) < eps &&
		math.Abs(s.velX) < eps &&
		math.Abs(s.velY) < eps
}
