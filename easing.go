package glide

import "fmt"

// Easing maps linear time t in [0, 1] onto eased progress in [0, 1].
type Easing func(t float64) float64

// Linear returns t unchanged.
func Linear(t float64) float64 { return t }

// QuadInOut accelerates through the first half and decelerates through the second.
func QuadInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - 2*(1-t)*(1-t)
}

// CubicOut starts fast and decelerates to rest.
func CubicOut(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// EasingByName resolves a configured easing name. The empty name selects QuadInOut.
func EasingByName(name string) (Easing, error) {
	switch name {
	case "", "quad-in-out":
		return QuadInOut, nil
	case "linear":
		return Linear, nil
	case "cubic-out":
		return CubicOut, nil
	default:
		return nil, fmt.Errorf("unknown easing %q: %w", name, ErrInvalidConfig)
	}
}
