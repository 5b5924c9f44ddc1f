package glide

import (
	"context"

	"github.com/zoobzio/capitan"
)

// Channel tracks one direction of horizontal drag. It moves through
// StateIdle, StateDragging and StateSettling, and on a committed settle moves
// the owning carousel's offset by one in its direction.
//
// Channels are created by New and share the carousel's lock, so every read
// through Snapshot sees progress and offset from the same instant.
type Channel struct {
	dir  Direction
	core *core

	state    State
	progress float64
	target   float64
}

// Direction returns the direction this channel moves the carousel.
func (ch *Channel) Direction() Direction {
	return ch.dir
}

// State returns the current channel state.
func (ch *Channel) State() State {
	ch.core.mu.Lock()
	defer ch.core.mu.Unlock()
	return ch.state
}

// Progress returns the live transition progress in [0, 1].
func (ch *Channel) Progress() float64 {
	ch.core.mu.Lock()
	defer ch.core.mu.Unlock()
	return ch.progress
}

// Change applies a horizontal drag delta in pixels. The first delta after
// Idle starts the drag. Progress moves by delta/width in the channel's
// direction and is clamped to [0, 1].
//
// Change returns false and drops the sample while this channel is settling
// or while the other channel is busy with its own gesture.
func (ch *Channel) Change(ctx context.Context, delta float64) bool {
	c := ch.core
	c.mu.Lock()
	if ch.state == StateSettling || ch.peer().state != StateIdle {
		state := ch.state
		c.metrics.OnInputDropped(ch.dir)
		c.mu.Unlock()

		Logger().Warn("drag sample dropped",
			"direction", ch.dir.String(),
			"state", state.String(),
		)
		capitan.Emit(ctx, GestureDropped,
			KeyDirection.Field(ch.dir.String()),
			KeyState.Field(state.String()),
		)
		return false
	}

	started := ch.state == StateIdle
	if started {
		ch.transition(StateDragging)
	}
	ch.progress = clamp01(ch.progress + ch.dir.sign()*delta/float64(c.res.Width))
	c.mu.Unlock()

	if started {
		capitan.Emit(ctx, GestureStarted,
			KeyDirection.Field(ch.dir.String()),
		)
		ch.emitTransition(ctx, StateIdle, StateDragging)
	}
	return true
}

// Release ends the drag with a horizontal velocity in pixels per second.
// The velocity, normalised by width, is handed to the snap solver together
// with the current progress, and a settle animation toward the solved target
// is started. Release returns false unless the channel is dragging.
func (ch *Channel) Release(ctx context.Context, velocity float64) bool {
	c := ch.core
	c.mu.Lock()
	if ch.state != StateDragging {
		c.mu.Unlock()
		return false
	}

	from := ch.progress
	ch.target = c.solver.Solve(from, ch.dir.sign()*velocity/float64(c.res.Width), 0, 1)
	target := ch.target
	ch.transition(StateSettling)
	c.metrics.OnRelease(ch.dir, target)
	settle, animator := c.settle, c.animator
	c.mu.Unlock()

	Logger().Debug("gesture released",
		"direction", ch.dir.String(),
		"progress", from,
		"velocity", velocity,
		"target", target,
	)
	capitan.Emit(ctx, GestureReleased,
		KeyDirection.Field(ch.dir.String()),
		KeyTarget.Field(int(target)),
		KeySettle.Field(settle),
	)
	ch.emitTransition(ctx, StateDragging, StateSettling)

	animator.Animate(from, target, settle,
		ch.frame,
		func() { ch.complete(ctx) },
	)
	return true
}

// frame applies an intermediate settle value.
func (ch *Channel) frame(v float64) {
	ch.core.mu.Lock()
	defer ch.core.mu.Unlock()
	if ch.state == StateSettling {
		ch.progress = clamp01(v)
	}
}

// complete finishes a settle. The offset change and the progress reset
// happen under one lock acquisition.
func (ch *Channel) complete(ctx context.Context) {
	c := ch.core
	c.mu.Lock()
	if ch.state != StateSettling {
		c.mu.Unlock()
		return
	}

	committed := ch.target == 1
	if committed {
		if ch.dir == Forward {
			c.advance()
		} else {
			c.retreat()
		}
		c.metrics.OnCommit(ch.dir, c.offset)
	} else {
		c.metrics.OnCancel(ch.dir)
	}
	ch.progress = 0
	ch.target = 0
	ch.transition(StateIdle)
	offset := c.offset
	c.mu.Unlock()

	if committed {
		Logger().Debug("gesture committed", "direction", ch.dir.String(), "offset", offset)
		capitan.Emit(ctx, GestureCommitted,
			KeyDirection.Field(ch.dir.String()),
			KeyOffset.Field(offset),
		)
	} else {
		Logger().Debug("gesture canceled", "direction", ch.dir.String())
		capitan.Emit(ctx, GestureCanceled,
			KeyDirection.Field(ch.dir.String()),
		)
	}
	ch.emitTransition(ctx, StateSettling, StateIdle)
}

// transition stores a new state. Callers hold the carousel lock.
func (ch *Channel) transition(to State) {
	from := ch.state
	ch.state = to
	ch.core.metrics.OnStateChange(ch.dir, from, to)
}

func (ch *Channel) emitTransition(ctx context.Context, from, to State) {
	capitan.Emit(ctx, GestureStateChanged,
		KeyDirection.Field(ch.dir.String()),
		KeyOldState.Field(from.String()),
		KeyNewState.Field(to.String()),
	)
}

// peer returns the channel of the opposite direction.
func (ch *Channel) peer() *Channel {
	if ch.dir == Forward {
		return ch.core.backward
	}
	return ch.core.forward
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
