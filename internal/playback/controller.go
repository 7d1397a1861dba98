package playback

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/newscast/news-podcast/internal/observability"
)

// PositionTickInterval is how often the playhead is sampled while playing.
// The ticker runs only in the Playing state.
const PositionTickInterval = 100 * time.Millisecond

// Snapshot is a point-in-time view of playback state for the UI
type Snapshot struct {
	State     State
	Position  time.Duration
	Duration  time.Duration
	LastError string
}

// Controller owns the playback state machine and the audio output device
type Controller struct {
	engine Engine
	logger zerolog.Logger

	mu        sync.Mutex
	state     State
	duration  time.Duration
	position  time.Duration
	lastError string
	tickStop  chan struct{}

	onUpdate func(Snapshot)
}

// NewController creates a controller over the given engine
func NewController(engine Engine) *Controller {
	c := &Controller{
		engine: engine,
		state:  StateUnloaded,
		logger: observability.Component("playback"),
	}
	engine.SetOnFinished(c.handleFinished)
	return c
}

// SetUpdateCallback sets the callback invoked on every published state or
// position change. Callbacks may fire from background goroutines; the UI
// marshals them onto its own thread.
func (c *Controller) SetUpdateCallback(callback func(Snapshot)) {
	c.mu.Lock()
	c.onUpdate = callback
	c.mu.Unlock()
}

// Load decodes new audio, replacing whatever was loaded or playing before
func (c *Controller) Load(data []byte) error {
	c.stopTicker()

	duration, err := c.engine.Load(data)

	c.mu.Lock()
	if err != nil {
		c.state = StateErrored
		c.lastError = err.Error()
		c.mu.Unlock()
		c.notify()
		c.logger.Error().Err(err).Msg("failed to load audio")
		return err
	}

	c.state = StateLoaded
	c.duration = duration
	c.position = 0
	c.lastError = ""
	c.mu.Unlock()
	c.notify()

	c.logger.Info().Dur("duration", duration).Int("bytes", len(data)).Msg("audio loaded")
	return nil
}

// Play starts or resumes playback. A Finished player restarts from zero.
// Engine calls happen outside c.mu; the engine takes its own device lock
// and its finish callback needs c.mu.
func (c *Controller) Play() error {
	c.mu.Lock()
	if !c.state.IsPlayable() {
		state := c.state
		c.mu.Unlock()
		return fmt.Errorf("cannot play in state %s", state)
	}
	rewind := c.state == StateFinished
	c.mu.Unlock()

	if rewind {
		if err := c.engine.Seek(0); err != nil {
			c.mu.Lock()
			c.lastError = err.Error()
			c.mu.Unlock()
			c.notify()
			return err
		}
		c.mu.Lock()
		c.position = 0
		c.mu.Unlock()
	}

	if err := c.engine.Start(); err != nil {
		// audio device failure; the playhead stays where it was
		c.mu.Lock()
		c.state = StateErrored
		c.lastError = err.Error()
		c.mu.Unlock()
		c.notify()
		c.logger.Error().Err(err).Msg("failed to start playback")
		return err
	}

	c.mu.Lock()
	c.state = StatePlaying
	c.lastError = ""
	c.mu.Unlock()
	c.notify()
	c.startTicker()
	return nil
}

// Pause suspends playback at the current position
func (c *Controller) Pause() {
	c.mu.Lock()
	if c.state != StatePlaying {
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	c.stopTicker()
	c.engine.Pause()
	pos := c.engine.Position()

	c.mu.Lock()
	c.position = pos
	c.state = StatePaused
	c.mu.Unlock()
	c.notify()
}

// Stop halts playback and resets the position to zero
func (c *Controller) Stop() {
	c.mu.Lock()
	if !c.state.IsLoaded() {
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	c.stopTicker()
	c.engine.Pause()
	if err := c.engine.Seek(0); err != nil {
		c.logger.Warn().Err(err).Msg("failed to rewind on stop")
	}

	c.mu.Lock()
	c.state = StateLoaded
	c.position = 0
	c.mu.Unlock()
	c.notify()
}

// Seek moves the playhead, clamping into [0, duration]. The reported
// position updates immediately regardless of play/pause state.
func (c *Controller) Seek(pos time.Duration) {
	c.mu.Lock()
	if !c.state.IsLoaded() {
		c.mu.Unlock()
		return
	}
	if pos < 0 {
		pos = 0
	}
	if pos > c.duration {
		pos = c.duration
	}
	c.mu.Unlock()

	if err := c.engine.Seek(pos); err != nil {
		c.logger.Warn().Err(err).Dur("pos", pos).Msg("seek failed")
		return
	}

	c.mu.Lock()
	c.position = pos
	c.mu.Unlock()
	c.notify()
}

// Snapshot returns the current published playback state
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		State:     c.state,
		Position:  c.position,
		Duration:  c.duration,
		LastError: c.lastError,
	}
}

// handleFinished runs when the engine reports natural completion
func (c *Controller) handleFinished() {
	c.stopTicker()

	c.mu.Lock()
	c.state = StateFinished
	c.position = 0
	c.mu.Unlock()
	c.notify()

	c.logger.Debug().Msg("playback finished")
}

// startTicker begins position sampling; it stops as soon as the player
// leaves the Playing state
func (c *Controller) startTicker() {
	c.mu.Lock()
	if c.tickStop != nil {
		c.mu.Unlock()
		return
	}
	stop := make(chan struct{})
	c.tickStop = stop
	c.mu.Unlock()

	go func() {
		ticker := time.NewTicker(PositionTickInterval)
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				pos := c.engine.Position()
				c.mu.Lock()
				if c.state != StatePlaying {
					c.mu.Unlock()
					return
				}
				c.position = pos
				c.mu.Unlock()
				c.notify()
			}
		}
	}()
}

// stopTicker halts position sampling
func (c *Controller) stopTicker() {
	c.mu.Lock()
	if c.tickStop != nil {
		close(c.tickStop)
		c.tickStop = nil
	}
	c.mu.Unlock()
}

// notify publishes the current snapshot outside the lock
func (c *Controller) notify() {
	c.mu.Lock()
	callback := c.onUpdate
	snapshot := Snapshot{
		State:     c.state,
		Position:  c.position,
		Duration:  c.duration,
		LastError: c.lastError,
	}
	c.mu.Unlock()

	if callback != nil {
		callback(snapshot)
	}
}
