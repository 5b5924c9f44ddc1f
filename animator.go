package glide

import (
	"sync"
	"time"

	"github.com/zoobzio/clockz"
)

// DefaultSettleDuration is the default length of a settle animation.
const DefaultSettleDuration = 250 * time.Millisecond

// DefaultFrameInterval is the frame period a ClockAnimator steps at.
const DefaultFrameInterval = 16 * time.Millisecond

// Animator performs timed interpolation on behalf of a gesture channel.
//
// Animate moves from one value to another over d, calling frame with each
// intermediate value. It calls frame(to) and then done exactly once when the
// animation finishes. Implementations must not call frame or done while
// holding locks the callbacks might need.
type Animator interface {
	Animate(from, to float64, d time.Duration, frame func(float64), done func())
}

// animation is one in-flight Animate call.
type animation struct {
	motion Motion
	frame  func(float64)
	done   func()
}

// step advances the animation and reports whether it finished.
func (a *animation) step(dt time.Duration) bool {
	v, finished := a.motion.Step(dt)
	if a.frame != nil {
		a.frame(v)
	}
	if finished && a.done != nil {
		a.done()
	}
	return finished
}

// FrameAnimator runs animations from an external frame loop. Nothing moves
// until Advance is called, which makes it suitable for render loops that
// already tick on the UI thread, and for deterministic tests.
type FrameAnimator struct {
	motion MotionFunc

	mu     sync.Mutex
	active []*animation
}

// NewFrameAnimator creates a FrameAnimator. A nil motion selects Tween(QuadInOut).
func NewFrameAnimator(motion MotionFunc) *FrameAnimator {
	if motion == nil {
		motion = Tween(QuadInOut)
	}
	return &FrameAnimator{motion: motion}
}

// Animate queues an animation. It does not call frame or done.
func (a *FrameAnimator) Animate(from, to float64, d time.Duration, frame func(float64), done func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.active = append(a.active, &animation{
		motion: a.motion(from, to, d),
		frame:  frame,
		done:   done,
	})
}

// Advance steps every active animation by dt. Callbacks run on the caller's
// goroutine without the animator lock held, so they may queue new animations.
func (a *FrameAnimator) Advance(dt time.Duration) {
	a.mu.Lock()
	batch := a.active
	a.active = nil
	a.mu.Unlock()

	var remaining []*animation
	for _, anim := range batch {
		if !anim.step(dt) {
			remaining = append(remaining, anim)
		}
	}

	if len(remaining) == 0 {
		return
	}
	a.mu.Lock()
	a.active = append(remaining, a.active...)
	a.mu.Unlock()
}

// Pending returns the number of animations that have not finished.
func (a *FrameAnimator) Pending() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.active)
}

// Flush advances until no animation is pending, in steps of interval.
// Animations queued by completion callbacks are flushed as well.
func (a *FrameAnimator) Flush(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	for a.Pending() > 0 {
		a.Advance(interval)
	}
}

// ClockAnimator runs each animation on its own goroutine, stepping at a fixed
// frame interval measured by a clockz.Clock. Use clockz.FakeClock for tests.
type ClockAnimator struct {
	clock    clockz.Clock
	interval time.Duration
	motion   MotionFunc
}

// NewClockAnimator creates a ClockAnimator. A nil clock selects
// clockz.RealClock, a non-positive interval DefaultFrameInterval and a nil
// motion Tween(QuadInOut).
func NewClockAnimator(clock clockz.Clock, interval time.Duration, motion MotionFunc) *ClockAnimator {
	if clock == nil {
		clock = clockz.RealClock
	}
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	if motion == nil {
		motion = Tween(QuadInOut)
	}
	return &ClockAnimator{clock: clock, interval: interval, motion: motion}
}

// Animate starts the animation and returns immediately.
func (a *ClockAnimator) Animate(from, to float64, d time.Duration, frame func(float64), done func()) {
	anim := &animation{motion: a.motion(from, to, d), frame: frame, done: done}

	// The timer is created before the goroutine so a fake clock advanced
	// right after Animate returns still fires it.
	last := a.clock.Now()
	timer := a.clock.NewTimer(a.interval)

	go func() {
		defer timer.Stop()
		for {
			<-timer.C()
			now := a.clock.Now()
			dt := now.Sub(last)
			last = now
			if anim.step(dt) {
				return
			}
			timer.Reset(a.interval)
		}
	}()
}

var (
	_ Animator = (*FrameAnimator)(nil)
	_ Animator = (*ClockAnimator)(nil)
)
