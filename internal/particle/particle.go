package particle

import "math/rand"

// Particle is one moving point in the field. Position is in cell
// coordinates, velocity in cells per frame.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Radius  float64
	Opacity float64
}

// newParticles seeds count particles uniformly inside [0,w) x [0,h) with
// velocity components in [-Speed/2, Speed/2], radius in [MinSize, MaxSize],
// and opacity in [0.5, 1.0]. A zero count yields an empty slice.
func newParticles(rng *rand.Rand, opts Options, w, h float64) []Particle {
	particles := make([]Particle, opts.Count)
	for i := range particles {
		particles[i] = Particle{
			X:       rng.Float64() * w,
			Y:       rng.Float64() * h,
			VX:      (rng.Float64() - 0.5) * opts.Speed,
			VY:      (rng.Float64() - 0.5) * opts.Speed,
			Radius:  opts.MinSize + rng.Float64()*(opts.MaxSize-opts.MinSize),
			Opacity: 0.5 + rng.Float64()*0.5,
		}
	}
	return particles
}
