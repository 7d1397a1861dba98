package playback

import (
	"errors"
	"sync"
	"testing"
	"time"
)

// fakeEngine is a scriptable Engine for exercising the controller state
// machine without an audio device.
type fakeEngine struct {
	mu         sync.Mutex
	loadErr    error
	startErr   error
	seekErr    error
	duration   time.Duration
	position   time.Duration
	started    int
	paused     int
	closed     bool
	onFinished func()
}

func (e *fakeEngine) Load(data []byte) (time.Duration, error) {
	if e.loadErr != nil {
		return 0, e.loadErr
	}
	return e.duration, nil
}

func (e *fakeEngine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.startErr != nil {
		return e.startErr
	}
	e.started++
	return nil
}

func (e *fakeEngine) Pause() {
	e.mu.Lock()
	e.paused++
	e.mu.Unlock()
}

func (e *fakeEngine) Seek(pos time.Duration) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.seekErr != nil {
		return e.seekErr
	}
	e.position = pos
	return nil
}

func (e *fakeEngine) Position() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.position
}

func (e *fakeEngine) Close() {
	e.mu.Lock()
	e.closed = true
	e.mu.Unlock()
}

func (e *fakeEngine) SetOnFinished(fn func()) {
	e.onFinished = fn
}

func (e *fakeEngine) setPosition(pos time.Duration) {
	e.mu.Lock()
	e.position = pos
	e.mu.Unlock()
}

func TestController_Load(t *testing.T) {
	engine := &fakeEngine{duration: 90 * time.Second}
	controller := NewController(engine)

	if err := controller.Load([]byte{1, 2, 3}); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	snapshot := controller.Snapshot()
	if snapshot.State != StateLoaded {
		t.Errorf("state = %s, expected %s", snapshot.State, StateLoaded)
	}
	if snapshot.Duration != 90*time.Second {
		t.Errorf("duration = %v, expected 90s", snapshot.Duration)
	}
	if snapshot.Position != 0 {
		t.Errorf("position = %v, expected 0", snapshot.Position)
	}
}

func TestController_LoadFailure(t *testing.T) {
	engine := &fakeEngine{loadErr: errors.New("bad mp3 frame")}
	controller := NewController(engine)

	if err := controller.Load([]byte{1}); err == nil {
		t.Fatal("Load() should fail when decoding fails")
	}

	snapshot := controller.Snapshot()
	if snapshot.State != StateErrored {
		t.Errorf("state = %s, expected %s", snapshot.State, StateErrored)
	}
	if snapshot.LastError == "" {
		t.Error("LastError should carry the decode failure")
	}
}

func TestController_PlayPauseStop(t *testing.T) {
	engine := &fakeEngine{duration: time.Minute}
	controller := NewController(engine)
	controller.Load([]byte{1})

	if err := controller.Play(); err != nil {
		t.Fatalf("Play() failed: %v", err)
	}
	if got := controller.Snapshot().State; got != StatePlaying {
		t.Errorf("state after Play = %s, expected %s", got, StatePlaying)
	}

	engine.setPosition(12 * time.Second)
	controller.Pause()
	snapshot := controller.Snapshot()
	if snapshot.State != StatePaused {
		t.Errorf("state after Pause = %s, expected %s", snapshot.State, StatePaused)
	}
	if snapshot.Position != 12*time.Second {
		t.Errorf("position after Pause = %v, expected 12s", snapshot.Position)
	}

	controller.Stop()
	snapshot = controller.Snapshot()
	if snapshot.State != StateLoaded {
		t.Errorf("state after Stop = %s, expected %s", snapshot.State, StateLoaded)
	}
	if snapshot.Position != 0 {
		t.Errorf("position after Stop = %v, expected 0", snapshot.Position)
	}
}

func TestController_PlayWithoutAudio(t *testing.T) {
	controller := NewController(&fakeEngine{})

	if err := controller.Play(); err == nil {
		t.Error("Play() should fail before any audio is loaded")
	}
	if got := controller.Snapshot().State; got != StateUnloaded {
		t.Errorf("state = %s, expected %s", got, StateUnloaded)
	}
}

func TestController_PlayFailureKeepsPosition(t *testing.T) {
	engine := &fakeEngine{duration: time.Minute}
	controller := NewController(engine)
	controller.Load([]byte{1})
	controller.Seek(20 * time.Second)

	engine.startErr = errors.New("audio device unavailable")
	if err := controller.Play(); err == nil {
		t.Fatal("Play() should fail when the engine cannot start")
	}

	snapshot := controller.Snapshot()
	if snapshot.State != StateErrored {
		t.Errorf("state = %s, expected %s", snapshot.State, StateErrored)
	}
	if snapshot.Position != 20*time.Second {
		t.Errorf("position = %v, expected the playhead to stay at 20s", snapshot.Position)
	}
}

func TestController_PauseOutsidePlaying(t *testing.T) {
	engine := &fakeEngine{duration: time.Minute}
	controller := NewController(engine)
	controller.Load([]byte{1})

	controller.Pause()
	if engine.paused != 0 {
		t.Error("Pause() must be a no-op outside the playing state")
	}
	if got := controller.Snapshot().State; got != StateLoaded {
		t.Errorf("state = %s, expected %s", got, StateLoaded)
	}
}

func TestController_SeekClamps(t *testing.T) {
	tests := []struct {
		name     string
		target   time.Duration
		expected time.Duration
	}{
		{"within bounds", 30 * time.Second, 30 * time.Second},
		{"negative clamps to zero", -5 * time.Second, 0},
		{"past the end clamps to duration", 2 * time.Hour, time.Minute},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			controller := NewController(&fakeEngine{duration: time.Minute})
			controller.Load([]byte{1})

			controller.Seek(test.target)
			if got := controller.Snapshot().Position; got != test.expected {
				t.Errorf("Seek(%v) left position at %v, expected %v", test.target, got, test.expected)
			}
		})
	}
}

func TestController_SeekBeforeLoad(t *testing.T) {
	engine := &fakeEngine{duration: time.Minute}
	controller := NewController(engine)

	controller.Seek(10 * time.Second)
	if engine.Position() != 0 {
		t.Error("Seek() must not reach the engine before audio is loaded")
	}
}

func TestController_FinishedRestartsFromZero(t *testing.T) {
	engine := &fakeEngine{duration: time.Minute}
	controller := NewController(engine)
	controller.Load([]byte{1})
	controller.Play()

	engine.setPosition(time.Minute)
	engine.onFinished()

	snapshot := controller.Snapshot()
	if snapshot.State != StateFinished {
		t.Errorf("state = %s, expected %s", snapshot.State, StateFinished)
	}
	if snapshot.Position != 0 {
		t.Errorf("position = %v, expected 0 after finishing", snapshot.Position)
	}

	// Playing again rewinds the engine first
	if err := controller.Play(); err != nil {
		t.Fatalf("Play() after finish failed: %v", err)
	}
	if engine.Position() != 0 {
		t.Errorf("engine position = %v, expected a rewind to 0", engine.Position())
	}
	if got := controller.Snapshot().State; got != StatePlaying {
		t.Errorf("state = %s, expected %s", got, StatePlaying)
	}
}

func TestController_TickerPublishesWhilePlaying(t *testing.T) {
	engine := &fakeEngine{duration: time.Minute}
	controller := NewController(engine)

	updates := make(chan Snapshot, 64)
	controller.SetUpdateCallback(func(s Snapshot) {
		select {
		case updates <- s:
		default:
		}
	})

	controller.Load([]byte{1})
	controller.Play()
	engine.setPosition(3 * time.Second)

	deadline := time.After(2 * time.Second)
	for {
		select {
		case s := <-updates:
			if s.State == StatePlaying && s.Position == 3*time.Second {
				controller.Pause()
				return
			}
		case <-deadline:
			t.Fatal("no position update published while playing")
		}
	}
}

// reentrantEngine reads the controller's snapshot from inside Seek and
// Position, the way a real engine blocks on a device lock that the finish
// callback also runs under. These calls must never arrive while the
// controller holds its own mutex.
type reentrantEngine struct {
	fakeEngine
	controller *Controller
}

func (e *reentrantEngine) Seek(pos time.Duration) error {
	e.controller.Snapshot()
	return e.fakeEngine.Seek(pos)
}

func (e *reentrantEngine) Position() time.Duration {
	e.controller.Snapshot()
	return e.fakeEngine.Position()
}

func TestController_EngineCalledOutsideControllerLock(t *testing.T) {
	engine := &reentrantEngine{fakeEngine: fakeEngine{duration: time.Minute}}
	controller := NewController(engine)
	engine.controller = controller

	done := make(chan struct{})
	go func() {
		defer close(done)
		controller.Load([]byte{1})
		controller.Play()
		engine.setPosition(10 * time.Second)
		controller.Pause()
		controller.Play()
		engine.onFinished()
		controller.Play() // rewind path seeks through the engine
		controller.Stop()
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("controller deadlocked calling the engine under its own lock")
	}

	if got := controller.Snapshot().State; got != StateLoaded {
		t.Errorf("state = %s, expected %s after stop", got, StateLoaded)
	}
}

func TestController_LoadReplacesSession(t *testing.T) {
	engine := &fakeEngine{duration: time.Minute}
	controller := NewController(engine)
	controller.Load([]byte{1})
	controller.Play()

	engine.duration = 2 * time.Minute
	if err := controller.Load([]byte{2}); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	snapshot := controller.Snapshot()
	if snapshot.State != StateLoaded {
		t.Errorf("state = %s, expected %s after reload", snapshot.State, StateLoaded)
	}
	if snapshot.Duration != 2*time.Minute {
		t.Errorf("duration = %v, expected the new episode's duration", snapshot.Duration)
	}
	if snapshot.Position != 0 {
		t.Errorf("position = %v, expected 0 after reload", snapshot.Position)
	}
}
