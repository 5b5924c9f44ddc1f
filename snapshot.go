package glide

import "fmt"

// Resolution is the render surface size in pixels.
type Resolution struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Validate reports ErrInvalidResolution unless both dimensions are positive.
func (r Resolution) Validate() error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("%dx%d: %w", r.Width, r.Height, ErrInvalidResolution)
	}
	return nil
}

// Uniforms is the parameter bundle one transition layer is rendered with.
type Uniforms struct {
	Progress   float64    `json:"progress"`
	Resolution Resolution `json:"resolution"`
}

// Snapshot is the immutable set of values a renderer needs for one frame.
//
// Layers nest: Effect2 blends Image2 into Image3 driven by Uniforms2 (the
// forward channel), and Effect1 blends that result into Image1 driven by
// Uniforms1 (the backward channel).
type Snapshot[E, I any] struct {
	Offset int `json:"offset"`

	Effect1 E `json:"effect1"`
	Effect2 E `json:"effect2"`

	Image1 I `json:"image1"`
	Image2 I `json:"image2"`
	Image3 I `json:"image3"`

	Uniforms1 Uniforms `json:"uniforms1"`
	Uniforms2 Uniforms `json:"uniforms2"`
}
