package glide

import "github.com/zoobzio/capitan"

// Field keys for gesture and carousel events.
var (
	// KeyDirection is the direction of the gesture channel.
	KeyDirection = capitan.NewStringKey("direction")

	// KeyState is the current state of a channel or reloader.
	KeyState = capitan.NewStringKey("state")

	// KeyOldState is the previous state before a transition.
	KeyOldState = capitan.NewStringKey("old_state")

	// KeyNewState is the new state after a transition.
	KeyNewState = capitan.NewStringKey("new_state")

	// KeyTarget is the snapped settle target, 0 for cancel and 1 for commit.
	KeyTarget = capitan.NewIntKey("target")

	// KeyOffset is the carousel offset after a commit.
	KeyOffset = capitan.NewIntKey("offset")

	// KeyWidth is the horizontal resolution.
	KeyWidth = capitan.NewIntKey("width")

	// KeyHeight is the vertical resolution.
	KeyHeight = capitan.NewIntKey("height")

	// KeyEffects is the length of the effect sequence.
	KeyEffects = capitan.NewIntKey("effects")

	// KeyImages is the length of the image sequence.
	KeyImages = capitan.NewIntKey("images")

	// KeySettle is the settle animation duration.
	KeySettle = capitan.NewDurationKey("settle")

	// KeyError is the error message when an operation fails.
	KeyError = capitan.NewStringKey("error")

	// KeyDebounce is the configured reload debounce duration.
	KeyDebounce = capitan.NewDurationKey("debounce")
)
