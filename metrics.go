package glide

// MetricsProvider allows integration with metrics systems like Prometheus, StatsD, etc.
// Implement this interface to receive callbacks on gesture events.
// Callbacks run while the carousel lock is held and must not call back into it.
type MetricsProvider interface {
	// OnStateChange is called when a channel transitions between states.
	OnStateChange(dir Direction, from, to State)

	// OnRelease is called when a drag is released with the solved target.
	OnRelease(dir Direction, target float64)

	// OnCommit is called when a settle completes toward 1.
	// Offset is the value after the change.
	OnCommit(dir Direction, offset int)

	// OnCancel is called when a settle completes toward 0.
	OnCancel(dir Direction)

	// OnInputDropped is called when a drag sample is rejected.
	OnInputDropped(dir Direction)
}

// NoOpMetricsProvider is a no-op implementation of MetricsProvider.
// Use this as an embedded type to implement only the methods you need.
type NoOpMetricsProvider struct{}

func (NoOpMetricsProvider) OnStateChange(_ Direction, _, _ State) {}
func (NoOpMetricsProvider) OnRelease(_ Direction, _ float64)      {}
func (NoOpMetricsProvider) OnCommit(_ Direction, _ int)           {}
func (NoOpMetricsProvider) OnCancel(_ Direction)                  {}
func (NoOpMetricsProvider) OnInputDropped(_ Direction)            {}
