package driver

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/vovakirdan/snake-pixels/internal/config"
	"github.com/vovakirdan/snake-pixels/internal/core"
	"github.com/vovakirdan/snake-pixels/internal/games/snake"
)

// recordingPresenter keeps copies of presented frames.
type recordingPresenter struct {
	frames  []core.Frame
	resizes [][2]int
	err     error
}

func (p *recordingPresenter) Present(f core.Frame) error {
	if p.err != nil {
		return p.err
	}
	p.frames = append(p.frames, core.Frame{Width: f.Width, Height: f.Height, Pix: slices.Clone(f.Pix)})
	return nil
}

func (p *recordingPresenter) Resize(width, height int) {
	p.resizes = append(p.resizes, [2]int{width, height})
}

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func newTestDriver(t *testing.T, p *recordingPresenter) (*Driver, *testClock) {
	t.Helper()
	d, err := Build(config.DefaultSnakeConfig(), core.RuntimeConfig{Seed: 42}, p, nil)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	clock := &testClock{now: time.Unix(1_700_000_000, 0)}
	d.now = clock.Now
	d.Handle(Event{Kind: EventInit})
	return d, clock
}

// headAt reports whether the frame shows the head colour at logical (x, y).
func headAt(t *testing.T, f core.Frame, x, y int) bool {
	t.Helper()
	head, err := core.ParseHexColor(config.DefaultSnakeConfig().Palette.Head)
	if err != nil {
		t.Fatal(err)
	}
	return f.At(x, f.Height-1-y) == head
}

func TestBuildResizesFromRuntimeConfig(t *testing.T) {
	p := &recordingPresenter{}
	d, err := Build(config.DefaultSnakeConfig(), core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, p, nil)
	if err != nil {
		t.Fatal(err)
	}
	if d.Surface().Width() != 15 || d.Surface().Height() != 15 {
		t.Errorf("surface = %dx%d, expected 15x15", d.Surface().Width(), d.Surface().Height())
	}
	if len(p.resizes) != 1 || p.resizes[0] != [2]int{80, 24} {
		t.Errorf("resizes = %v, expected [[80 24]]", p.resizes)
	}
}

func TestBuildRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Grid.Width = 0
	if _, err := Build(cfg, core.RuntimeConfig{}, &recordingPresenter{}, nil); err == nil {
		t.Error("Build() should fail on an invalid config")
	}
}

func TestPollTickUpdatesRendersPresents(t *testing.T) {
	p := &recordingPresenter{}
	d, clock := newTestDriver(t, p)

	if f := d.Handle(Event{Kind: EventPollTick}); f != FlowContinue {
		t.Fatalf("first poll = %v, expected continue", f)
	}
	if len(p.frames) != 1 {
		t.Fatalf("frames = %d, expected 1", len(p.frames))
	}
	if !headAt(t, p.frames[0], 8, 7) {
		t.Error("first frame should show the head at (8, 7)")
	}

	clock.now = clock.now.Add(401 * time.Millisecond)
	d.Handle(Event{Kind: EventPollTick})

	// The frame presented in the same tick already shows the moved head.
	if len(p.frames) != 2 || !headAt(t, p.frames[1], 9, 7) {
		t.Error("second frame should show the head at (9, 7)")
	}
}

func TestRedrawDoesNotAdvance(t *testing.T) {
	p := &recordingPresenter{}
	d, clock := newTestDriver(t, p)

	clock.now = clock.now.Add(time.Second)
	d.Handle(Event{Kind: EventRedraw})

	if len(p.frames) != 1 {
		t.Fatalf("frames = %d, expected 1", len(p.frames))
	}
	if !headAt(t, p.frames[0], 8, 7) {
		t.Error("redraw should not move the snake")
	}
}

func TestResizeForwardsToPresenter(t *testing.T) {
	p := &recordingPresenter{}
	d, _ := newTestDriver(t, p)

	if f := d.Handle(Event{Kind: EventResize, Width: 120, Height: 40}); f != FlowContinue {
		t.Errorf("resize = %v, expected continue", f)
	}
	if len(p.resizes) == 0 || p.resizes[len(p.resizes)-1] != [2]int{120, 40} {
		t.Errorf("resizes = %v, expected last [120 40]", p.resizes)
	}
}

func TestKeyHandling(t *testing.T) {
	tests := []struct {
		name     string
		key      core.Key
		flow     Flow
		expected core.Vec2
	}{
		{"up", core.KeyUp, FlowContinue, core.Up},
		{"down", core.KeyDown, FlowContinue, core.Down},
		{"left", core.KeyLeft, FlowContinue, core.Left},
		{"right", core.KeyRight, FlowContinue, core.Right},
		{"other", core.KeyOther, FlowContinue, core.Right},
		{"escape", core.KeyEscape, FlowExit, core.Right},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, _ := newTestDriver(t, &recordingPresenter{})

			f := d.Handle(Event{Kind: EventKeyPressed, Key: tc.key})
			if f != tc.flow {
				t.Errorf("flow = %v, expected %v", f, tc.flow)
			}
			if dir := d.Game().Snapshot().Direction; dir != tc.expected {
				t.Errorf("direction = %v, expected %v", dir, tc.expected)
			}
		})
	}
}

func TestKeyReleasedIgnored(t *testing.T) {
	d, _ := newTestDriver(t, &recordingPresenter{})

	if f := d.Handle(Event{Kind: EventKeyReleased, Key: core.KeyUp}); f != FlowContinue {
		t.Errorf("flow = %v, expected continue", f)
	}
	if dir := d.Game().Snapshot().Direction; dir != core.Right {
		t.Errorf("key release changed direction to %v", dir)
	}
}

func TestCloseRequested(t *testing.T) {
	d, _ := newTestDriver(t, &recordingPresenter{})

	if f := d.Handle(Event{Kind: EventCloseRequested}); f != FlowExit {
		t.Errorf("flow = %v, expected exit", f)
	}
}

func TestGameOverStopsLoop(t *testing.T) {
	p := &recordingPresenter{}
	d, clock := newTestDriver(t, p)

	// Reverse into the body; the next step collides.
	d.Handle(Event{Kind: EventKeyPressed, Key: core.KeyLeft})
	clock.now = clock.now.Add(time.Second)

	if f := d.Handle(Event{Kind: EventPollTick}); f != FlowGameOver {
		t.Fatalf("flow = %v, expected game over", f)
	}
	if len(p.frames) != 0 {
		t.Errorf("frames = %d, nothing should be presented after game over", len(p.frames))
	}
	if d.Game().Outcome() != snake.OutcomeCollision {
		t.Errorf("outcome = %v, expected collision", d.Game().Outcome())
	}
}

func TestPresentFailureStopsLoop(t *testing.T) {
	boom := errors.New("surface lost")
	p := &recordingPresenter{err: boom}
	d, _ := newTestDriver(t, p)

	if f := d.Handle(Event{Kind: EventPollTick}); f != FlowPresentFailed {
		t.Fatalf("flow = %v, expected present failed", f)
	}
	if !errors.Is(d.Err(), boom) {
		t.Errorf("Err() = %v, expected to wrap %v", d.Err(), boom)
	}
}

func TestStopIsSticky(t *testing.T) {
	p := &recordingPresenter{}
	d, clock := newTestDriver(t, p)

	d.Handle(Event{Kind: EventKeyPressed, Key: core.KeyEscape})
	clock.now = clock.now.Add(5 * time.Second)

	events := []Event{
		{Kind: EventPollTick},
		{Kind: EventRedraw},
		{Kind: EventKeyPressed, Key: core.KeyUp},
		{Kind: EventCloseRequested},
	}
	for _, ev := range events {
		if f := d.Handle(ev); f != FlowExit {
			t.Errorf("%v after stop = %v, expected exit", ev.Kind, f)
		}
	}
	if len(p.frames) != 0 {
		t.Errorf("frames = %d, expected none after stop", len(p.frames))
	}
	if d.Game().Snapshot().Steps != 0 {
		t.Error("game advanced after stop")
	}
}

func TestFlowStop(t *testing.T) {
	if FlowContinue.Stop() {
		t.Error("continue should not stop")
	}
	for _, f := range []Flow{FlowExit, FlowGameOver, FlowPresentFailed} {
		if !f.Stop() {
			t.Errorf("%v should stop", f)
		}
	}
}
