package particle

import (
	"math"
	"math/rand"
)

const (
	// friction damps velocity every frame.
	friction = 0.99
	// stallThreshold is the per-axis speed below which velocity is reseeded,
	// so particles never coast to a stop.
	stallThreshold = 0.05
	// parallaxEase is the fraction of the parallax offset applied per frame.
	parallaxEase = 0.05
)

// step advances every particle one frame. Per particle, in order: pointer
// repulsion, parallax drift, position integration, friction, stall reseed,
// toroidal wrap. All operations are total.
func step(rng *rand.Rand, opts Options, particles []Particle, pointer Pointer, w, h float64) {
	for i := range particles {
		p := &particles[i]

		if opts.MouseInteraction && pointer.Active {
			repel(p, pointer, opts.MouseRadius)
		}
		if opts.Parallax && pointer.Active {
			parallax(p, pointer, opts, w, h)
		}

		p.X += p.VX
		p.Y += p.VY

		p.VX *= friction
		p.VY *= friction

		if math.Abs(p.VX) < stallThreshold {
			p.VX = reseedVelocity(rng, opts.Speed)
		}
		if math.Abs(p.VY) < stallThreshold {
			p.VY = reseedVelocity(rng, opts.Speed)
		}

		p.X = wrap(p.X, w)
		p.Y = wrap(p.Y, h)
	}
}

// repel pushes a particle away from the pointer, strongest at zero distance
// and fading to nothing at the radius edge.
func repel(p *Particle, pointer Pointer, radius float64) {
	dx := p.X - pointer.X
	dy := p.Y - pointer.Y
	dist := math.Hypot(dx, dy)
	if dist >= radius || radius <= 0 {
		return
	}
	force := (radius - dist) / radius
	if dist > 0 {
		p.VX += dx / dist * force
		p.VY += dy / dist * force
	} else {
		// Pointer exactly on the particle: push along a fixed axis.
		p.VX += force
	}
}

// parallax eases the particle toward an offset proportional to the pointer's
// displacement from the field centre, scaled by the particle's radius so
// larger particles drift further.
func parallax(p *Particle, pointer Pointer, opts Options, w, h float64) {
	depth := 1.0
	if opts.MaxSize > 0 {
		depth = p.Radius / opts.MaxSize
	}
	offX := (pointer.X - w/2) * opts.ParallaxIntensity * depth
	offY := (pointer.Y - h/2) * opts.ParallaxIntensity * depth
	p.X += offX * parallaxEase
	p.Y += offY * parallaxEase
}

// reseedVelocity draws a fresh base velocity guaranteed to clear the stall
// threshold, even when the configured speed is zero.
func reseedVelocity(rng *rand.Rand, speed float64) float64 {
	if speed < 1 {
		speed = 1
	}
	v := (rng.Float64() - 0.5) * speed
	if math.Abs(v) < stallThreshold {
		if v < 0 {
			return -stallThreshold
		}
		return stallThreshold
	}
	return v
}

// wrap maps a coordinate into [0, max) on a torus.
func wrap(v, max float64) float64 {
	if max <= 0 {
		return 0
	}
	v = math.Mod(v, max)
	if v < 0 {
		v += max
	}
	return v
}
