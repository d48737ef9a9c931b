// Package config loads the catalog configuration file. Every field has a
// working default; a missing file is a fully valid configuration.
package config

import (
	"github.com/glintui/glint/internal/particle"
)

// Config is the root of the catalog configuration.
type Config struct {
	// FPS drives the browser's frame ticks.
	FPS   int    `yaml:"fps" validate:"gte=1,lte=120"`
	Theme string `yaml:"theme" validate:"omitempty,theme_name"`

	Log       LogConfig      `yaml:"log"`
	Particles ParticleConfig `yaml:"particles"`
}

// LogConfig controls the file logger.
type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,log_level"`
	// File is where logs go; empty disables logging entirely.
	File string `yaml:"file"`
}

// ParticleConfig overrides the stock particle field options for the
// particle stories.
type ParticleConfig struct {
	Count             int     `yaml:"count" validate:"gte=0,lte=500"`
	Color             string  `yaml:"color" validate:"omitempty,hexcolor"`
	ConnectLines      bool    `yaml:"connect_lines"`
	ConnectDistance   float64 `yaml:"connect_distance" validate:"gte=0"`
	Speed             float64 `yaml:"speed" validate:"gte=0"`
	MinSize           float64 `yaml:"min_size" validate:"gte=0"`
	MaxSize           float64 `yaml:"max_size" validate:"gte=0,gtefield=MinSize"`
	MouseInteraction  bool    `yaml:"mouse_interaction"`
	MouseRadius       float64 `yaml:"mouse_radius" validate:"gte=0"`
	Parallax          bool    `yaml:"parallax"`
	ParallaxIntensity float64 `yaml:"parallax_intensity" validate:"gte=0"`
}

// Default returns the configuration used when no file exists. Parsing
// overlays the file on top of these values, so absent keys keep them.
func Default() *Config {
	opts := particle.DefaultOptions()
	return &Config{
		FPS: 30,
		Log: LogConfig{Level: "info"},
		Particles: ParticleConfig{
			Count:             opts.Count,
			Color:             opts.Color,
			ConnectLines:      true,
			ConnectDistance:   opts.ConnectDistance,
			Speed:             opts.Speed,
			MinSize:           opts.MinSize,
			MaxSize:           opts.MaxSize,
			// Pointer features default on; the browser feeds mouse
			// motion to the particle stories.
			MouseInteraction:  true,
			MouseRadius:       opts.MouseRadius,
			Parallax:          true,
			ParallaxIntensity: opts.ParallaxIntensity,
		},
	}
}

// Options converts the particle section into engine options.
func (p ParticleConfig) Options() particle.Options {
	return particle.Options{
		Count:             p.Count,
		Color:             p.Color,
		ConnectLines:      p.ConnectLines,
		ConnectDistance:   p.ConnectDistance,
		Speed:             p.Speed,
		MinSize:           p.MinSize,
		MaxSize:           p.MaxSize,
		MouseInteraction:  p.MouseInteraction,
		MouseRadius:       p.MouseRadius,
		Parallax:          p.Parallax,
		ParallaxIntensity: p.ParallaxIntensity,
	}
}
