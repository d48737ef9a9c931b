// Package particle implements the animated particle field: a fixed-count
// store of moving points, a per-frame stepper, and a cell-grid renderer.
package particle

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Options configures a particle field. The zero value is usable; withDefaults
// fills anything left unset.
type Options struct {
	// Count is the number of particles, fixed for the field's lifetime.
	Count int `validate:"gte=0,lte=500"`
	// Color is the particle color as a hex string.
	Color string `validate:"omitempty,hexcolor"`
	// ConnectLines draws lines between particles closer than ConnectDistance.
	ConnectLines    bool
	ConnectDistance float64 `validate:"gte=0"`
	// Speed scales the random base velocity of every particle.
	Speed   float64 `validate:"gte=0"`
	MinSize float64 `validate:"gte=0"`
	MaxSize float64 `validate:"gte=0,gtefield=MinSize"`
	// MouseInteraction pushes particles away from an active pointer.
	MouseInteraction bool
	MouseRadius      float64 `validate:"gte=0"`
	// Parallax drifts particles with pointer movement, larger ones more.
	Parallax          bool
	ParallaxIntensity float64 `validate:"gte=0"`
}

var optionsValidator = validator.New()

// DefaultOptions returns the stock field configuration.
func DefaultOptions() Options {
	return Options{}.withDefaults()
}

func (o Options) withDefaults() Options {
	if o.Count == 0 {
		o.Count = 50
	}
	if o.Color == "" {
		o.Color = "#60a5fa"
	}
	if o.ConnectDistance == 0 {
		o.ConnectDistance = 14
	}
	if o.Speed == 0 {
		o.Speed = 1
	}
	if o.MinSize == 0 {
		o.MinSize = 0.5
	}
	if o.MaxSize == 0 {
		o.MaxSize = 2.5
	}
	if o.MouseRadius == 0 {
		o.MouseRadius = 10
	}
	if o.ParallaxIntensity == 0 {
		o.ParallaxIntensity = 0.15
	}
	return o
}

// Validate checks the options against their constraints.
func (o Options) Validate() error {
	if err := optionsValidator.Struct(o); err != nil {
		return fmt.Errorf("invalid particle options: %w", err)
	}
	return nil
}
