// Package testing provides test utilities for glide carousels.
package testing

import (
	"context"
	"testing"
	"time"

	"github.com/zoobzio/glide"
)

// FrameInterval is the step used when flushing settle animations.
const FrameInterval = 16 * time.Millisecond

// Width and Height are the resolution of carousels built by NewTestCarousel.
const (
	Width  = 1000
	Height = 2000
)

// NewTestCarousel builds a string carousel on a FrameAnimator so settles only
// move when the test flushes them. Returns the carousel and its animator.
func NewTestCarousel(t *testing.T, effects, images []string, opts ...glide.Option) (*glide.Carousel[string, string], *glide.FrameAnimator) {
	t.Helper()
	animator := glide.NewFrameAnimator(glide.Tween(glide.Linear))
	all := append([]glide.Option{glide.WithAnimator(animator)}, opts...)
	c, err := glide.New(effects, images, glide.Resolution{Width: Width, Height: Height}, all...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c, animator
}

// Drag feeds deltas to ch, failing the test if any sample is dropped.
func Drag(t *testing.T, ch *glide.Channel, deltas ...float64) {
	t.Helper()
	ctx := context.Background()
	for i, d := range deltas {
		if !ch.Change(ctx, d) {
			t.Fatalf("sample %d (%v) dropped in state %s", i, d, ch.State())
		}
	}
}

// Swipe drags ch by deltas, releases it with velocity and flushes the settle.
func Swipe(t *testing.T, a *glide.FrameAnimator, ch *glide.Channel, velocity float64, deltas ...float64) {
	t.Helper()
	Drag(t, ch, deltas...)
	if !ch.Release(context.Background(), velocity) {
		t.Fatalf("release rejected in state %s", ch.State())
	}
	a.Flush(FrameInterval)
}

// RequireOffset fails the test immediately if the carousel offset differs.
func RequireOffset[E, I any](t *testing.T, c *glide.Carousel[E, I], expected int) {
	t.Helper()
	if got := c.Offset(); got != expected {
		t.Fatalf("expected offset %d, got %d", expected, got)
	}
}

// RequireIdle fails the test immediately if either channel is busy.
func RequireIdle[E, I any](t *testing.T, c *glide.Carousel[E, I]) {
	t.Helper()
	if c.Busy() {
		t.Fatalf("expected idle channels, forward=%s backward=%s",
			c.Forward().State(), c.Backward().State())
	}
}

// WaitFor polls a condition until it returns true or timeout is reached.
// Returns true if the condition was met, false if timeout occurred.
func WaitFor(t *testing.T, timeout time.Duration, condition func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return true
		}
		time.Sleep(time.Millisecond)
	}
	return condition()
}
