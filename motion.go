package glide

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// Motion generates the values of a single settle animation.
// Step advances by dt and reports the current value and whether the motion
// has finished. A finished motion always reports its target exactly.
type Motion interface {
	Step(dt time.Duration) (value float64, finished bool)
}

// MotionFunc builds a Motion from start to target over a nominal duration.
type MotionFunc func(from, to float64, d time.Duration) Motion

// Tween returns a MotionFunc that interpolates over exactly the given duration.
func Tween(easing Easing) MotionFunc {
	if easing == nil {
		easing = QuadInOut
	}
	return func(from, to float64, d time.Duration) Motion {
		return &tween{from: from, to: to, duration: d, easing: easing}
	}
}

type tween struct {
	from, to float64
	duration time.Duration
	elapsed  time.Duration
	easing   Easing
}

func (t *tween) Step(dt time.Duration) (float64, bool) {
	t.elapsed += dt
	if t.duration <= 0 || t.elapsed >= t.duration {
		return t.to, true
	}
	f := t.easing(float64(t.elapsed) / float64(t.duration))
	return t.from + (t.to-t.from)*f, false
}

const (
	springRestDelta = 1e-3
	springCapFactor = 4
)

// Spring returns a MotionFunc driven by a damped harmonic spring. The nominal
// duration only bounds the motion: after four times the duration the spring
// snaps to its target.
func Spring(fps int, frequency, damping float64) MotionFunc {
	if fps <= 0 {
		fps = 60
	}
	frame := time.Second / time.Duration(fps)
	s := harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)
	return func(from, to float64, d time.Duration) Motion {
		return &spring{
			spring: s,
			frame:  frame,
			pos:    from,
			to:     to,
			limit:  d * springCapFactor,
		}
	}
}

type spring struct {
	spring   harmonica.Spring
	frame    time.Duration
	pos, vel float64
	to       float64
	elapsed  time.Duration
	limit    time.Duration
	carry    time.Duration
}

func (s *spring) Step(dt time.Duration) (float64, bool) {
	s.elapsed += dt
	if s.limit <= 0 || s.elapsed >= s.limit {
		return s.to, true
	}

	// harmonica integrates in fixed frames; leftover time carries over.
	s.carry += dt
	for s.carry >= s.frame {
		s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.to)
		s.carry -= s.frame
	}

	if math.Abs(s.to-s.pos) < springRestDelta && math.Abs(s.vel) < springRestDelta {
		return s.to, true
	}
	return s.pos, false
}
