package glide

import "testing"

func TestNoOpMetricsProvider_DoesNotPanic(_ *testing.T) {
	var m NoOpMetricsProvider

	m.OnStateChange(Forward, StateIdle, StateDragging)
	m.OnRelease(Backward, 1)
	m.OnCommit(Forward, 4)
	m.OnCancel(Backward)
	m.OnInputDropped(Forward)
}
