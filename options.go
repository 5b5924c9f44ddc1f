package glide

import (
	"time"

	"github.com/zoobzio/clockz"
)

// config holds configuration options for a Carousel.
type config struct {
	settle     time.Duration
	snapFactor float64
	animator   Animator
	metrics    MetricsProvider
	offset     int
	clock      clockz.Clock
	easing     Easing
}

// Option configures a Carousel.
type Option func(*config)

// WithSettleDuration sets how long a released gesture takes to settle.
// Default: 250ms.
func WithSettleDuration(d time.Duration) Option {
	return func(c *config) {
		c.settle = d
	}
}

// WithSnapFactor sets the velocity weighting used when solving the settle
// target. Larger factors let faster flicks commit from less progress.
// Default: DefaultSnapFactor.
func WithSnapFactor(f float64) Option {
	return func(c *config) {
		c.snapFactor = f
	}
}

// WithAnimator sets the animator that drives settle animations.
// When set, WithClock and WithEasing have no effect.
func WithAnimator(a Animator) Option {
	return func(c *config) {
		c.animator = a
	}
}

// WithMetrics sets a metrics provider for observability integration.
func WithMetrics(m MetricsProvider) Option {
	return func(c *config) {
		c.metrics = m
	}
}

// WithOffset sets the initial offset. Default: 0.
func WithOffset(offset int) Option {
	return func(c *config) {
		c.offset = offset
	}
}

// WithClock sets the clock used by the default ClockAnimator.
// Use this with clockz.FakeClock for deterministic settle timing.
func WithClock(clock clockz.Clock) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// WithEasing sets the easing curve used by the default ClockAnimator.
// Default: QuadInOut.
func WithEasing(e Easing) Option {
	return func(c *config) {
		c.easing = e
	}
}
