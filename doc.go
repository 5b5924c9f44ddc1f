// Package glide drives a circular carousel of images that transitions between
// neighbours with shader effects in response to horizontal drags.
//
// The package owns no pixels. It turns drag samples into a bounded
// transition progress, decides on release whether the gesture commits, runs
// the settle animation, and keeps the circular offset that selects which
// images and effects a renderer should draw.
//
// # Carousel
//
// A Carousel holds the offset and two gesture channels:
//
//	c, err := glide.New(effects, images, glide.Resolution{Width: 390, Height: 844})
//	if err != nil {
//	    return err // ErrEmptySequence or ErrInvalidResolution
//	}
//
//	c.Forward().Change(ctx, -120)   // drag left 120px
//	c.Forward().Release(ctx, -900)  // lift with 900px/s leftward velocity
//
//	snap := c.Snapshot()            // effects, images and uniforms for this frame
//
// Snapshot is a pure read. Call it whenever the renderer needs a frame.
//
// # Channels
//
// Each channel moves through three states:
//
//   - Idle: no drag in progress, progress is zero
//   - Dragging: samples move progress within [0, 1]
//   - Settling: released, animating toward 0 (cancel) or 1 (commit)
//
// When a settle toward 1 completes the offset moves by one and progress
// resets to zero under the same lock, so no snapshot shows a reset progress
// against the old offset or a full progress against the new one.
// Only one channel can hold a gesture at a time; samples for the other
// channel are dropped until it returns to Idle.
//
// # Snapping
//
// SnapSolver projects progress by release velocity (in screen widths per
// second, scaled by Factor) and picks the nearest bound. A fast flick commits
// from little progress; a slow release settles to whichever end is closer.
//
// # Animators
//
// Settle animations run through an Animator. FrameAnimator advances only when
// the host's frame loop calls Advance. ClockAnimator steps itself on a
// clockz.Clock. Either can use Tween easing or a harmonica Spring.
//
// # Configuration
//
// Config loads effect names, image paths and tunables from YAML or JSON.
// A Reloader watches a file through fsnotify and applies valid changes to a
// running carousel.
//
// # Observability
//
// Gesture and reload events are emitted as capitan signals; see signals.go
// for the catalogue. SetLogger enables slog output, which is silent by default.
package glide
