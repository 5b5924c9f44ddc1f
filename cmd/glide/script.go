package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zoobzio/glide"
)

// Script is a recorded sequence of gestures.
//
//	gestures:
//	  - channel: forward
//	    deltas: [-40, -60, -80]
//	    velocity: -900
type Script struct {
	Gestures []Gesture `yaml:"gestures"`
}

// Gesture is one drag on a channel: incremental horizontal deltas in pixels
// followed by a release at velocity pixels per second.
type Gesture struct {
	Channel  string    `yaml:"channel"`
	Deltas   []float64 `yaml:"deltas"`
	Velocity float64   `yaml:"velocity"`
}

// Direction resolves the gesture's channel name.
func (g Gesture) Direction() (glide.Direction, error) {
	switch g.Channel {
	case glide.Forward.String():
		return glide.Forward, nil
	case glide.Backward.String():
		return glide.Backward, nil
	default:
		return 0, fmt.Errorf("unknown channel %q", g.Channel)
	}
}

func loadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, err
	}
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("decode script: %w", err)
	}
	for i, g := range s.Gestures {
		if _, err := g.Direction(); err != nil {
			return Script{}, fmt.Errorf("gesture %d: %w", i, err)
		}
	}
	return s, nil
}
