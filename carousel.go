package glide

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/zoobzio/capitan"
)

// core is the state both gesture channels share with their carousel.
// Every field is guarded by mu.
type core struct {
	mu sync.Mutex

	offset   int
	res      Resolution
	settle   time.Duration
	solver   SnapSolver
	animator Animator
	metrics  MetricsProvider

	forward  *Channel
	backward *Channel
}

// advance and retreat are the only writers of offset. Callers hold mu.
func (c *core) advance() { c.offset++ }
func (c *core) retreat() { c.offset-- }

// Carousel owns the circular offset over a fixed sequence of transition
// effects and a fixed sequence of images, along with the forward and backward
// gesture channels that move it.
type Carousel[E, I any] struct {
	*core

	effects []E
	images  []I
}

// New creates a Carousel over effects and images rendered at res.
//
// New fails with ErrEmptySequence when either sequence is empty, with
// ErrInvalidResolution when res is not positive, and with ErrInvalidConfig
// for a non-positive settle duration or a negative snap factor.
//
// Example:
//
//	c, err := glide.New(
//	    []string{"cube", "swirl"},
//	    []string{"a.jpg", "b.jpg", "c.jpg"},
//	    glide.Resolution{Width: 390, Height: 844},
//	    glide.WithSettleDuration(300*time.Millisecond),
//	)
func New[E, I any](effects []E, images []I, res Resolution, opts ...Option) (*Carousel[E, I], error) {
	cfg := &config{
		settle:     DefaultSettleDuration,
		snapFactor: DefaultSnapFactor,
		metrics:    NoOpMetricsProvider{},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if err := checkSequences(effects, images); err != nil {
		return nil, err
	}
	if err := res.Validate(); err != nil {
		return nil, err
	}
	if cfg.settle <= 0 {
		return nil, fmt.Errorf("settle duration %v must be positive: %w", cfg.settle, ErrInvalidConfig)
	}
	if cfg.snapFactor < 0 {
		return nil, fmt.Errorf("snap factor %v must not be negative: %w", cfg.snapFactor, ErrInvalidConfig)
	}

	animator := cfg.animator
	if animator == nil {
		animator = NewClockAnimator(cfg.clock, DefaultFrameInterval, Tween(cfg.easing))
	}
	metrics := cfg.metrics
	if metrics == nil {
		metrics = NoOpMetricsProvider{}
	}

	c := &core{
		offset:   cfg.offset,
		res:      res,
		settle:   cfg.settle,
		solver:   SnapSolver{Factor: cfg.snapFactor},
		animator: animator,
		metrics:  metrics,
	}
	c.forward = &Channel{dir: Forward, core: c}
	c.backward = &Channel{dir: Backward, core: c}

	return &Carousel[E, I]{
		core:    c,
		effects: slices.Clone(effects),
		images:  slices.Clone(images),
	}, nil
}

func checkSequences[E, I any](effects []E, images []I) error {
	if len(effects) == 0 {
		return fmt.Errorf("effects: %w", ErrEmptySequence)
	}
	if len(images) == 0 {
		return fmt.Errorf("images: %w", ErrEmptySequence)
	}
	return nil
}

// Forward returns the channel that advances the carousel on leftward drags.
func (c *Carousel[E, I]) Forward() *Channel {
	return c.forward
}

// Backward returns the channel that retreats the carousel on rightward drags.
func (c *Carousel[E, I]) Backward() *Channel {
	return c.backward
}

// Channel returns the channel for a direction.
func (c *Carousel[E, I]) Channel(dir Direction) *Channel {
	if dir == Backward {
		return c.backward
	}
	return c.forward
}

// Offset returns the committed offset. It is unbounded and only wraps when
// used to index a sequence.
func (c *Carousel[E, I]) Offset() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.offset
}

// Resolution returns the current render resolution.
func (c *Carousel[E, I]) Resolution() Resolution {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.res
}

// Busy reports whether either channel is dragging or settling.
func (c *Carousel[E, I]) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.forward.state != StateIdle || c.backward.state != StateIdle
}

// Snapshot derives the values the renderer consumes from the committed
// offset, both live progress values and the resolution, read atomically.
// It has no side effects; two calls with no state change in between are equal.
func (c *Carousel[E, I]) Snapshot() Snapshot[E, I] {
	c.mu.Lock()
	defer c.mu.Unlock()

	o := c.offset
	return Snapshot[E, I]{
		Offset:    o,
		Effect1:   mustAt(c.effects, o-1),
		Effect2:   mustAt(c.effects, o),
		Image1:    mustAt(c.images, o-1),
		Image2:    mustAt(c.images, o),
		Image3:    mustAt(c.images, o+1),
		Uniforms1: Uniforms{Progress: c.backward.progress, Resolution: c.res},
		Uniforms2: Uniforms{Progress: c.forward.progress, Resolution: c.res},
	}
}

// Resize changes the render resolution. Progress is stored normalised, so a
// drag in flight keeps its position.
func (c *Carousel[E, I]) Resize(ctx context.Context, width, height int) error {
	res := Resolution{Width: width, Height: height}
	if err := res.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	changed := c.res != res
	c.res = res
	c.mu.Unlock()

	if !changed {
		return nil
	}
	Logger().Info("carousel resized", "width", width, "height", height)
	capitan.Emit(ctx, CarouselResized,
		KeyWidth.Field(width),
		KeyHeight.Field(height),
	)
	return nil
}

// Reconfigure replaces the effect and image sequences. The offset is kept
// and wraps over the new lengths.
func (c *Carousel[E, I]) Reconfigure(ctx context.Context, effects []E, images []I) error {
	if err := checkSequences(effects, images); err != nil {
		return err
	}

	c.mu.Lock()
	c.effects = slices.Clone(effects)
	c.images = slices.Clone(images)
	c.mu.Unlock()

	Logger().Info("carousel reconfigured", "effects", len(effects), "images", len(images))
	capitan.Emit(ctx, CarouselReconfigured,
		KeyEffects.Field(len(effects)),
		KeyImages.Field(len(images)),
	)
	return nil
}
