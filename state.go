package glide

// State is the lifecycle position of a gesture channel.
type State int32

const (
	// StateIdle indicates no drag is in progress and progress is zero.
	StateIdle State = iota

	// StateDragging indicates the channel is receiving drag samples.
	StateDragging

	// StateSettling indicates the drag was released and the settle animation
	// toward the snapped target has not completed yet. Committed state does
	// not change until it does.
	StateSettling
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateSettling:
		return "settling"
	default:
		return "unknown"
	}
}

// Direction identifies which way a channel moves the carousel.
type Direction int

const (
	// Forward channels track leftward drags and advance the offset.
	Forward Direction = iota

	// Backward channels track rightward drags and retreat the offset.
	Backward
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "unknown"
	}
}

// sign converts a horizontal pixel delta into a progress delta sign.
// Dragging left (negative dx) raises forward progress.
func (d Direction) sign() float64 {
	if d == Forward {
		return -1
	}
	return 1
}

// ReloadState represents the current state of a Reloader.
type ReloadState int32

const (
	// ReloadLoading indicates the Reloader has not processed any config yet.
	ReloadLoading ReloadState = iota

	// ReloadHealthy indicates the last config was applied.
	ReloadHealthy

	// ReloadDegraded indicates the last change failed. The previously applied
	// config remains active.
	ReloadDegraded

	// ReloadEmpty indicates the initial load failed and no config has ever
	// been applied.
	ReloadEmpty
)

// String returns the string representation of the reload state.
func (s ReloadState) String() string {
	switch s {
	case ReloadLoading:
		return "loading"
	case ReloadHealthy:
		return "healthy"
	case ReloadDegraded:
		return "degraded"
	case ReloadEmpty:
		return "empty"
	default:
		return "unknown"
	}
}
