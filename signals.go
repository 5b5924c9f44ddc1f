package glide

import "github.com/zoobzio/capitan"

// Gesture lifecycle signals.
var (
	// GestureStarted is emitted when an idle channel accepts its first drag sample.
	GestureStarted = capitan.NewSignal(
		"glide.gesture.started",
		"Drag started on a gesture channel",
	)

	// GestureReleased is emitted when a drag is released and a settle target chosen.
	GestureReleased = capitan.NewSignal(
		"glide.gesture.released",
		"Drag released, settle target solved",
	)

	// GestureCommitted is emitted when a settle toward 1 completes and the offset moves.
	GestureCommitted = capitan.NewSignal(
		"glide.gesture.committed",
		"Settle completed, offset changed",
	)

	// GestureCanceled is emitted when a settle toward 0 completes.
	GestureCanceled = capitan.NewSignal(
		"glide.gesture.canceled",
		"Settle completed, offset unchanged",
	)

	// GestureDropped is emitted when a drag sample arrives while the channel
	// or its peer cannot accept it.
	GestureDropped = capitan.NewSignal(
		"glide.gesture.dropped",
		"Drag sample dropped",
	)

	// GestureStateChanged is emitted when a channel transitions between states.
	GestureStateChanged = capitan.NewSignal(
		"glide.gesture.state.changed",
		"Gesture channel state transition",
	)
)

// Carousel signals.
var (
	// CarouselResized is emitted when the resolution changes.
	CarouselResized = capitan.NewSignal(
		"glide.carousel.resized",
		"Carousel resolution changed",
	)

	// CarouselReconfigured is emitted when the effect or image sequences are replaced.
	CarouselReconfigured = capitan.NewSignal(
		"glide.carousel.reconfigured",
		"Carousel sequences replaced",
	)
)

// Config reload signals.
var (
	// ReloaderStarted is emitted when a Reloader begins watching.
	ReloaderStarted = capitan.NewSignal(
		"glide.reloader.started",
		"Config watching started",
	)

	// ReloaderStopped is emitted when a Reloader stops watching.
	ReloaderStopped = capitan.NewSignal(
		"glide.reloader.stopped",
		"Config watching stopped",
	)

	// ReloaderStateChanged is emitted when a Reloader transitions between states.
	ReloaderStateChanged = capitan.NewSignal(
		"glide.reloader.state.changed",
		"Reloader state transition",
	)

	// ConfigChangeReceived is emitted when raw data is received from the watcher.
	ConfigChangeReceived = capitan.NewSignal(
		"glide.config.change.received",
		"Raw config received from watcher",
	)

	// ConfigDecodeFailed is emitted when raw data cannot be decoded.
	ConfigDecodeFailed = capitan.NewSignal(
		"glide.config.decode.failed",
		"Config decoding failed",
	)

	// ConfigValidationFailed is emitted when a decoded config is rejected.
	ConfigValidationFailed = capitan.NewSignal(
		"glide.config.validation.failed",
		"Config validation failed",
	)

	// ConfigApplyFailed is emitted when the apply function fails.
	ConfigApplyFailed = capitan.NewSignal(
		"glide.config.apply.failed",
		"Config apply failed",
	)

	// ConfigApplySucceeded is emitted when a config is applied.
	ConfigApplySucceeded = capitan.NewSignal(
		"glide.config.apply.succeeded",
		"Config applied successfully",
	)
)
