package glide

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/zoobzio/clockz"
)

var (
	testEffects = []string{"A", "B", "C"}
	testImages  = []string{"i0", "i1", "i2"}
	testRes     = Resolution{Width: 1000, Height: 2000}
)

func newTestCarousel(t *testing.T, opts ...Option) (*Carousel[string, string], *FrameAnimator) {
	t.Helper()
	a := NewFrameAnimator(Tween(Linear))
	c, err := New(testEffects, testImages, testRes, append([]Option{WithAnimator(a)}, opts...)...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c, a
}

// recordingMetrics counts metrics callbacks.
type recordingMetrics struct {
	NoOpMetricsProvider

	mu      sync.Mutex
	commits []int
	cancels int
	dropped int
	changes []State
}

func (m *recordingMetrics) OnCommit(_ Direction, offset int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commits = append(m.commits, offset)
}

func (m *recordingMetrics) OnCancel(_ Direction) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cancels++
}

func (m *recordingMetrics) OnInputDropped(_ Direction) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dropped++
}

func (m *recordingMetrics) OnStateChange(_ Direction, _, to State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.changes = append(m.changes, to)
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name    string
		effects []string
		images  []string
		res     Resolution
		opts    []Option
		want    error
	}{
		{"empty effects", nil, testImages, testRes, nil, ErrEmptySequence},
		{"empty images", testEffects, []string{}, testRes, nil, ErrEmptySequence},
		{"zero width", testEffects, testImages, Resolution{0, 100}, nil, ErrInvalidResolution},
		{"negative height", testEffects, testImages, Resolution{100, -1}, nil, ErrInvalidResolution},
		{"zero settle", testEffects, testImages, testRes, []Option{WithSettleDuration(0)}, ErrInvalidConfig},
		{"negative snap factor", testEffects, testImages, testRes, []Option{WithSnapFactor(-1)}, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.effects, tt.images, tt.res, tt.opts...)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
			if c != nil {
				t.Error("expected nil carousel on error")
			}
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	c, err := New(testEffects, testImages, testRes)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if c.settle != DefaultSettleDuration {
		t.Errorf("expected settle %v, got %v", DefaultSettleDuration, c.settle)
	}
	if c.solver.Factor != DefaultSnapFactor {
		t.Errorf("expected snap factor %v, got %v", DefaultSnapFactor, c.solver.Factor)
	}
	if _, ok := c.animator.(*ClockAnimator); !ok {
		t.Errorf("expected default ClockAnimator, got %T", c.animator)
	}
	if c.Forward().Direction() != Forward || c.Backward().Direction() != Backward {
		t.Error("channels have wrong directions")
	}
	if c.Channel(Backward) != c.Backward() || c.Channel(Forward) != c.Forward() {
		t.Error("Channel() returned the wrong channel")
	}
}

func TestNew_CopiesSequences(t *testing.T) {
	effects := []string{"A", "B"}
	c, err := New(effects, testImages, testRes)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	effects[1] = "mutated"
	if got := c.Snapshot().Effect1; got != "B" {
		t.Errorf("expected B, got %q", got)
	}
}

func TestSnapshot_InitialSelection(t *testing.T) {
	c, _ := newTestCarousel(t)

	s := c.Snapshot()
	if s.Effect1 != "C" || s.Effect2 != "A" {
		t.Errorf("expected effects C, A; got %s, %s", s.Effect1, s.Effect2)
	}
	if s.Image1 != "i2" || s.Image2 != "i0" || s.Image3 != "i1" {
		t.Errorf("expected images i2, i0, i1; got %s, %s, %s", s.Image1, s.Image2, s.Image3)
	}
	if s.Uniforms1.Progress != 0 || s.Uniforms2.Progress != 0 {
		t.Errorf("expected zero progress, got %v, %v", s.Uniforms1.Progress, s.Uniforms2.Progress)
	}
	if s.Uniforms1.Resolution != testRes || s.Uniforms2.Resolution != testRes {
		t.Errorf("expected resolution %v, got %v, %v", testRes, s.Uniforms1.Resolution, s.Uniforms2.Resolution)
	}
}

func TestSnapshot_Idempotent(t *testing.T) {
	c, _ := newTestCarousel(t)
	c.Forward().Change(context.Background(), -420)

	first := c.Snapshot()
	second := c.Snapshot()
	if first != second {
		t.Errorf("snapshots differ: %+v vs %+v", first, second)
	}
}

func TestSnapshot_UniformsFollowChannels(t *testing.T) {
	c, _ := newTestCarousel(t)
	ctx := context.Background()

	c.Backward().Change(ctx, 250)
	s := c.Snapshot()
	if s.Uniforms1.Progress != 0.25 {
		t.Errorf("expected backward progress in Uniforms1, got %v", s.Uniforms1.Progress)
	}
	if s.Uniforms2.Progress != 0 {
		t.Errorf("expected forward progress 0 in Uniforms2, got %v", s.Uniforms2.Progress)
	}
}

func TestSnapshot_WithOffset(t *testing.T) {
	c, _ := newTestCarousel(t, WithOffset(-4))

	s := c.Snapshot()
	// -5 → 1, -4 → 2, -3 → 0
	if s.Effect1 != "B" || s.Effect2 != "C" {
		t.Errorf("expected effects B, C; got %s, %s", s.Effect1, s.Effect2)
	}
	if s.Image1 != "i1" || s.Image2 != "i2" || s.Image3 != "i0" {
		t.Errorf("expected images i1, i2, i0; got %s, %s, %s", s.Image1, s.Image2, s.Image3)
	}
}

func TestForward_CommitAdvances(t *testing.T) {
	metrics := &recordingMetrics{}
	c, a := newTestCarousel(t, WithMetrics(metrics))
	ctx := context.Background()
	fwd := c.Forward()

	for _, d := range []float64{-200, -200, -200} {
		if !fwd.Change(ctx, d) {
			t.Fatal("sample dropped")
		}
	}
	if p := fwd.Progress(); math.Abs(p-0.6) > 1e-9 {
		t.Fatalf("expected progress 0.6, got %v", p)
	}
	if !fwd.Release(ctx, 0) {
		t.Fatal("release rejected")
	}
	if fwd.State() != StateSettling {
		t.Fatalf("expected settling, got %s", fwd.State())
	}
	if c.Offset() != 0 {
		t.Fatal("offset changed before settle completed")
	}

	a.Flush(16 * time.Millisecond)

	if c.Offset() != 1 {
		t.Errorf("expected offset 1, got %d", c.Offset())
	}
	if fwd.Progress() != 0 {
		t.Errorf("expected progress reset, got %v", fwd.Progress())
	}
	if fwd.State() != StateIdle {
		t.Errorf("expected idle, got %s", fwd.State())
	}

	s := c.Snapshot()
	if s.Effect1 != "A" || s.Effect2 != "B" {
		t.Errorf("expected effects A, B; got %s, %s", s.Effect1, s.Effect2)
	}
	if s.Image1 != "i0" || s.Image2 != "i1" || s.Image3 != "i2" {
		t.Errorf("expected images i0, i1, i2; got %s, %s, %s", s.Image1, s.Image2, s.Image3)
	}

	if len(metrics.commits) != 1 || metrics.commits[0] != 1 {
		t.Errorf("expected one commit at offset 1, got %v", metrics.commits)
	}
	want := []State{StateDragging, StateSettling, StateIdle}
	if len(metrics.changes) != len(want) {
		t.Fatalf("expected transitions %v, got %v", want, metrics.changes)
	}
	for i := range want {
		if metrics.changes[i] != want[i] {
			t.Errorf("transition %d: expected %s, got %s", i, want[i], metrics.changes[i])
		}
	}
}

func TestBackward_CancelKeepsOffset(t *testing.T) {
	metrics := &recordingMetrics{}
	c, a := newTestCarousel(t, WithMetrics(metrics))
	ctx := context.Background()
	bwd := c.Backward()

	bwd.Change(ctx, 300)
	if p := bwd.Progress(); p != 0.3 {
		t.Fatalf("expected progress 0.3, got %v", p)
	}
	bwd.Release(ctx, 0)
	a.Flush(16 * time.Millisecond)

	if c.Offset() != 0 {
		t.Errorf("expected offset 0, got %d", c.Offset())
	}
	if bwd.Progress() != 0 {
		t.Errorf("expected progress reset, got %v", bwd.Progress())
	}
	if metrics.cancels != 1 || len(metrics.commits) != 0 {
		t.Errorf("expected one cancel and no commits, got %d cancels %v commits", metrics.cancels, metrics.commits)
	}
}

func TestBackward_CommitRetreats(t *testing.T) {
	c, a := newTestCarousel(t)
	ctx := context.Background()

	c.Backward().Change(ctx, 700)
	c.Backward().Release(ctx, 0)
	a.Flush(16 * time.Millisecond)

	if c.Offset() != -1 {
		t.Errorf("expected offset -1, got %d", c.Offset())
	}
	s := c.Snapshot()
	if s.Effect1 != "B" || s.Effect2 != "C" {
		t.Errorf("expected effects B, C; got %s, %s", s.Effect1, s.Effect2)
	}
}

func TestRelease_VelocityOverridesPosition(t *testing.T) {
	c, a := newTestCarousel(t)
	ctx := context.Background()

	// Leftward flick at 5 widths/s commits from 0.1.
	c.Forward().Change(ctx, -100)
	c.Forward().Release(ctx, -5000)
	a.Flush(16 * time.Millisecond)
	if c.Offset() != 1 {
		t.Fatalf("expected flick to commit, offset %d", c.Offset())
	}

	// Leftward flick while dragging right cancels from 0.9.
	c.Backward().Change(ctx, 900)
	c.Backward().Release(ctx, -5000)
	a.Flush(16 * time.Millisecond)
	if c.Offset() != 1 {
		t.Errorf("expected flick against drag to cancel, offset %d", c.Offset())
	}
}

func TestChange_Clamps(t *testing.T) {
	c, _ := newTestCarousel(t)
	ctx := context.Background()
	fwd := c.Forward()

	fwd.Change(ctx, 500) // wrong way from zero
	if p := fwd.Progress(); p != 0 {
		t.Errorf("expected clamp at 0, got %v", p)
	}
	fwd.Change(ctx, -3000)
	if p := fwd.Progress(); p != 1 {
		t.Errorf("expected clamp at 1, got %v", p)
	}
	fwd.Change(ctx, -1)
	if p := fwd.Progress(); p != 1 {
		t.Errorf("expected clamp at 1, got %v", p)
	}
	fwd.Change(ctx, 5000)
	if p := fwd.Progress(); p != 0 {
		t.Errorf("expected clamp at 0, got %v", p)
	}
}

func TestChange_DroppedWhileSettling(t *testing.T) {
	metrics := &recordingMetrics{}
	c, a := newTestCarousel(t, WithMetrics(metrics))
	ctx := context.Background()
	fwd := c.Forward()

	fwd.Change(ctx, -600)
	fwd.Release(ctx, 0)

	if fwd.Change(ctx, -100) {
		t.Error("expected sample to be dropped while settling")
	}
	if fwd.Release(ctx, 0) {
		t.Error("expected release to be rejected while settling")
	}
	if metrics.dropped != 1 {
		t.Errorf("expected 1 dropped sample, got %d", metrics.dropped)
	}

	a.Flush(16 * time.Millisecond)
	if c.Offset() != 1 {
		t.Errorf("expected exactly one commit, offset %d", c.Offset())
	}

	// Accepted again once idle.
	if !fwd.Change(ctx, -100) {
		t.Error("expected sample to be accepted after settle")
	}
}

func TestChange_PeerBusy(t *testing.T) {
	c, a := newTestCarousel(t)
	ctx := context.Background()

	c.Forward().Change(ctx, -600)
	if c.Backward().Change(ctx, 600) {
		t.Error("expected backward sample dropped while forward drags")
	}

	c.Forward().Release(ctx, 0)
	if c.Backward().Change(ctx, 600) {
		t.Error("expected backward sample dropped while forward settles")
	}
	if c.Backward().Release(ctx, 0) {
		t.Error("expected backward release rejected while idle")
	}

	a.Flush(16 * time.Millisecond)
	if c.Offset() != 1 {
		t.Errorf("expected offset 1, got %d", c.Offset())
	}
	if c.Busy() {
		t.Error("expected carousel idle")
	}
	if !c.Backward().Change(ctx, 600) {
		t.Error("expected backward sample accepted once forward is idle")
	}
}

func TestRelease_IdleRejected(t *testing.T) {
	c, a := newTestCarousel(t)
	if c.Forward().Release(context.Background(), -10000) {
		t.Error("expected release without drag to be rejected")
	}
	if a.Pending() != 0 {
		t.Errorf("expected no animation, got %d", a.Pending())
	}
}

func TestSettle_IntermediateFrames(t *testing.T) {
	c, a := newTestCarousel(t)
	ctx := context.Background()
	fwd := c.Forward()

	fwd.Change(ctx, -600)
	fwd.Release(ctx, 0)

	a.Advance(125 * time.Millisecond)
	if p := fwd.Progress(); math.Abs(p-0.8) > 1e-9 {
		t.Errorf("expected progress 0.8 halfway, got %v", p)
	}
	if c.Offset() != 0 {
		t.Error("offset changed mid-settle")
	}

	a.Advance(125 * time.Millisecond)
	if c.Offset() != 1 || fwd.Progress() != 0 {
		t.Errorf("expected committed and reset, offset %d progress %v", c.Offset(), fwd.Progress())
	}
	if a.Pending() != 0 {
		t.Errorf("expected no pending animations, got %d", a.Pending())
	}
}

func TestSettle_CustomDuration(t *testing.T) {
	c, a := newTestCarousel(t, WithSettleDuration(time.Second))
	ctx := context.Background()

	c.Forward().Change(ctx, -600)
	c.Forward().Release(ctx, 0)

	a.Advance(500 * time.Millisecond)
	if c.Offset() != 0 {
		t.Error("settle finished early")
	}
	a.Advance(500 * time.Millisecond)
	if c.Offset() != 1 {
		t.Error("settle did not finish")
	}
}

func TestSettle_NoTornSnapshots(t *testing.T) {
	clock := clockz.NewFakeClock()
	c, err := New(testEffects, testImages, testRes, WithClock(clock))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	ctx := context.Background()

	c.Forward().Change(ctx, -600)
	c.Forward().Release(ctx, 0)

	stop := make(chan struct{})
	torn := make(chan Snapshot[string, string], 1)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}
			s := c.Snapshot()
			p := s.Uniforms2.Progress
			if (s.Offset == 0 && p < 0.6-1e-9) || (s.Offset == 1 && p != 0) {
				select {
				case torn <- s:
				default:
				}
				return
			}
		}
	}()

	deadline := time.Now().Add(2 * time.Second)
	for c.Offset() == 0 && time.Now().Before(deadline) {
		clock.Advance(DefaultFrameInterval)
		clock.BlockUntilReady()
		time.Sleep(time.Millisecond)
	}
	close(stop)
	wg.Wait()

	select {
	case s := <-torn:
		t.Fatalf("torn snapshot: offset %d progress %v", s.Offset, s.Uniforms2.Progress)
	default:
	}
	if c.Offset() != 1 {
		t.Errorf("expected offset 1 after settle, got %d", c.Offset())
	}
}

func TestResize(t *testing.T) {
	c, _ := newTestCarousel(t)
	ctx := context.Background()

	c.Forward().Change(ctx, -500)
	if err := c.Resize(ctx, 500, 900); err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
	if r := c.Resolution(); r.Width != 500 || r.Height != 900 {
		t.Errorf("expected 500x900, got %dx%d", r.Width, r.Height)
	}
	if p := c.Forward().Progress(); p != 0.5 {
		t.Errorf("expected progress kept at 0.5, got %v", p)
	}

	// Same drag distance now covers twice the progress.
	c.Forward().Change(ctx, -100)
	if p := c.Forward().Progress(); math.Abs(p-0.7) > 1e-9 {
		t.Errorf("expected progress 0.7, got %v", p)
	}

	if s := c.Snapshot(); s.Uniforms2.Resolution.Width != 500 {
		t.Errorf("expected uniforms to carry new width, got %d", s.Uniforms2.Resolution.Width)
	}
}

func TestResize_Invalid(t *testing.T) {
	c, _ := newTestCarousel(t)
	if err := c.Resize(context.Background(), 0, 100); !errors.Is(err, ErrInvalidResolution) {
		t.Errorf("expected ErrInvalidResolution, got %v", err)
	}
	if r := c.Resolution(); r != testRes {
		t.Errorf("expected resolution unchanged, got %v", r)
	}
}

func TestReconfigure(t *testing.T) {
	c, a := newTestCarousel(t)
	ctx := context.Background()

	c.Forward().Change(ctx, -900)
	c.Forward().Release(ctx, 0)
	a.Flush(16 * time.Millisecond)

	if err := c.Reconfigure(ctx, []string{"X", "Y"}, []string{"j0", "j1", "j2", "j3"}); err != nil {
		t.Fatalf("Reconfigure() error = %v", err)
	}
	if c.Offset() != 1 {
		t.Errorf("expected offset kept, got %d", c.Offset())
	}
	s := c.Snapshot()
	if s.Effect1 != "X" || s.Effect2 != "Y" {
		t.Errorf("expected effects X, Y; got %s, %s", s.Effect1, s.Effect2)
	}
	if s.Image1 != "j0" || s.Image2 != "j1" || s.Image3 != "j2" {
		t.Errorf("expected images j0, j1, j2; got %s, %s, %s", s.Image1, s.Image2, s.Image3)
	}
}

func TestReconfigure_Empty(t *testing.T) {
	c, _ := newTestCarousel(t)
	err := c.Reconfigure(context.Background(), []string{"X"}, nil)
	if !errors.Is(err, ErrEmptySequence) {
		t.Errorf("expected ErrEmptySequence, got %v", err)
	}
	if s := c.Snapshot(); s.Image2 != "i0" {
		t.Errorf("expected images unchanged, got %s", s.Image2)
	}
}
