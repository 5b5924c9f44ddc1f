package glide

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
)

// DefaultDebounce is the default debounce duration for config changes.
const DefaultDebounce = 100 * time.Millisecond

// Reloader watches a config source, decodes and validates each change, and
// hands valid configs to an apply function. A rejected change leaves the last
// applied config in place.
type Reloader struct {
	watcher  Watcher
	apply    func(context.Context, Config) error
	debounce time.Duration
	syncMode bool
	clock    clockz.Clock
	codec    Codec

	state     atomic.Int32
	current   atomic.Pointer[Config]
	lastError atomic.Pointer[error]

	mu      sync.Mutex
	started bool

	// For sync mode: channel to receive changes
	changes <-chan []byte
}

// NewReloader creates a Reloader.
//
// Example:
//
//	r := glide.NewReloader(
//	    glide.NewFileWatcher("carousel.yaml"),
//	    glide.ApplyTo(carousel),
//	).Debounce(200 * time.Millisecond)
func NewReloader(watcher Watcher, apply func(context.Context, Config) error) *Reloader {
	r := &Reloader{
		watcher:  watcher,
		apply:    apply,
		debounce: DefaultDebounce,
		clock:    clockz.RealClock,
		codec:    AutoCodec{},
	}
	r.state.Store(int32(ReloadLoading))
	return r
}

// ApplyTo returns an apply function that swaps the sequences and resolution
// of c. Tunables such as settle duration are fixed at construction and are
// not reloaded.
func ApplyTo(c *Carousel[string, string]) func(context.Context, Config) error {
	return func(ctx context.Context, cfg Config) error {
		if err := c.Reconfigure(ctx, cfg.Effects, cfg.Images); err != nil {
			return err
		}
		return c.Resize(ctx, cfg.Width, cfg.Height)
	}
}

// Debounce sets how long changes are coalesced before processing.
// Default: 100ms. Must be called before Start().
func (r *Reloader) Debounce(d time.Duration) *Reloader {
	r.debounce = d
	return r
}

// SyncMode processes changes only when Process is called, with no goroutine
// or debounce. Must be called before Start().
func (r *Reloader) SyncMode() *Reloader {
	r.syncMode = true
	return r
}

// Clock sets the clock used for debouncing.
// Use this with clockz.FakeClock for deterministic tests. Must be called before Start().
func (r *Reloader) Clock(clock clockz.Clock) *Reloader {
	r.clock = clock
	return r
}

// Codec sets the codec for decoding config data.
// Default: AutoCodec. Must be called before Start().
func (r *Reloader) Codec(codec Codec) *Reloader {
	r.codec = codec
	return r
}

// State returns the current reload state.
func (r *Reloader) State() ReloadState {
	return ReloadState(r.state.Load())
}

// Current returns the last applied config and true, or false if none has
// been applied.
func (r *Reloader) Current() (Config, bool) {
	ptr := r.current.Load()
	if ptr == nil {
		return Config{}, false
	}
	return *ptr, true
}

// LastError returns the error from the last failed change, or nil after a
// successful one.
func (r *Reloader) LastError() error {
	ptr := r.lastError.Load()
	if ptr == nil {
		return nil
	}
	return *ptr
}

// Start begins watching. It blocks until the initial config has been
// processed and returns its error, if any; watching continues in the
// background either way. In sync mode later changes wait for Process.
//
// Start can only be called once.
func (r *Reloader) Start(ctx context.Context) error {
	r.mu.Lock()
	if r.started {
		r.mu.Unlock()
		return fmt.Errorf("reloader already started")
	}
	r.started = true
	r.mu.Unlock()

	capitan.Emit(ctx, ReloaderStarted,
		KeyDebounce.Field(r.debounce),
	)

	changes, err := r.watcher.Watch(ctx)
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	var initialErr error
	select {
	case <-ctx.Done():
		return ctx.Err()
	case raw, ok := <-changes:
		if !ok {
			return fmt.Errorf("watcher closed before emitting initial config")
		}
		capitan.Emit(ctx, ConfigChangeReceived)
		initialErr = r.process(ctx, raw)
	}

	if r.syncMode {
		r.changes = changes
		return initialErr
	}

	go r.watch(ctx, changes)

	return initialErr
}

// Process handles the next pending change in sync mode. It returns false
// when not in sync mode or when no change is waiting.
func (r *Reloader) Process(ctx context.Context) bool {
	if !r.syncMode {
		return false
	}

	select {
	case raw, ok := <-r.changes:
		if !ok {
			return false
		}
		capitan.Emit(ctx, ConfigChangeReceived)
		_ = r.process(ctx, raw) //nolint:errcheck // Errors stored via fail
		return true
	default:
		return false
	}
}

// process decodes, validates and applies a single change.
func (r *Reloader) process(ctx context.Context, raw []byte) error {
	oldState := r.State()

	var cfg Config
	if err := r.codec.Unmarshal(raw, &cfg); err != nil {
		r.fail(ctx, oldState, err)
		capitan.Emit(ctx, ConfigDecodeFailed,
			KeyError.Field(err.Error()),
		)
		return fmt.Errorf("decode failed: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		r.fail(ctx, oldState, err)
		capitan.Emit(ctx, ConfigValidationFailed,
			KeyError.Field(err.Error()),
		)
		return fmt.Errorf("validation failed: %w", err)
	}

	if err := r.apply(ctx, cfg); err != nil {
		r.fail(ctx, oldState, err)
		capitan.Emit(ctx, ConfigApplyFailed,
			KeyError.Field(err.Error()),
		)
		return fmt.Errorf("apply failed: %w", err)
	}

	r.current.Store(&cfg)
	r.lastError.Store(nil)
	r.transition(ctx, oldState, ReloadHealthy)
	Logger().Info("config applied", "effects", len(cfg.Effects), "images", len(cfg.Images))
	capitan.Emit(ctx, ConfigApplySucceeded)
	return nil
}

// fail records err and moves to the appropriate failure state.
func (r *Reloader) fail(ctx context.Context, oldState ReloadState, err error) {
	e := err
	r.lastError.Store(&e)

	next := ReloadDegraded
	if r.current.Load() == nil {
		next = ReloadEmpty
	}
	r.transition(ctx, oldState, next)
	Logger().Warn("config rejected", "error", err)
}

// transition updates the state and emits a state change event if changed.
func (r *Reloader) transition(ctx context.Context, oldState, newState ReloadState) {
	if oldState == newState {
		return
	}
	r.state.Store(int32(newState))
	capitan.Emit(ctx, ReloaderStateChanged,
		KeyOldState.Field(oldState.String()),
		KeyNewState.Field(newState.String()),
	)
}

// watch processes changes with debouncing until ctx ends or the watcher closes.
func (r *Reloader) watch(ctx context.Context, changes <-chan []byte) {
	defer func() {
		capitan.Emit(ctx, ReloaderStopped,
			KeyState.Field(r.State().String()),
		)
	}()

	var (
		timer   clockz.Timer
		pending []byte
	)

	for {
		var timerC <-chan time.Time
		if timer != nil {
			timerC = timer.C()
		}

		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case raw, ok := <-changes:
			if !ok {
				if pending != nil {
					_ = r.process(ctx, pending) //nolint:errcheck // Errors stored via fail
				}
				return
			}

			capitan.Emit(ctx, ConfigChangeReceived)
			pending = raw

			if timer == nil {
				timer = r.clock.NewTimer(r.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C():
					default:
					}
				}
				timer.Reset(r.debounce)
			}

		case <-timerC:
			if pending != nil {
				_ = r.process(ctx, pending) //nolint:errcheck // Errors stored via fail
				pending = nil
			}
		}
	}
}
