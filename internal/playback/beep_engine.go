package playback

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
)

// speaker buffer length; 1/10s keeps pause/seek latency low without
// underruns on mobile
const speakerBufferLen = time.Second / 10

// beepEngine plays mp3 audio through the beep speaker
type beepEngine struct {
	mu         sync.Mutex
	streamer   beep.StreamSeekCloser
	format     beep.Format
	ctrl       *beep.Ctrl
	queued     bool // ctrl is currently queued on the speaker
	onFinished func()
}

// NewBeepEngine creates the real audio engine
func NewBeepEngine() Engine {
	return &beepEngine{}
}

// Load decodes the mp3 payload and initializes the speaker for its sample rate
func (e *beepEngine) Load(data []byte) (time.Duration, error) {
	e.Close()

	streamer, format, err := mp3.Decode(io.NopCloser(bytes.NewReader(data)))
	if err != nil {
		return 0, fmt.Errorf("failed to decode audio: %w", err)
	}

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(speakerBufferLen)); err != nil {
		streamer.Close()
		return 0, fmt.Errorf("failed to open audio device: %w", err)
	}

	e.mu.Lock()
	e.streamer = streamer
	e.format = format
	e.ctrl = nil
	e.queued = false
	e.mu.Unlock()

	return format.SampleRate.D(streamer.Len()), nil
}

// Start begins or resumes output
func (e *beepEngine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.streamer == nil {
		return fmt.Errorf("no audio loaded")
	}

	if !e.queued {
		// First start, or restart after the previous sequence drained.
		e.ctrl = &beep.Ctrl{
			Streamer: beep.Seq(e.streamer, beep.Callback(e.fireFinished)),
			Paused:   false,
		}
		e.queued = true
		speaker.Play(e.ctrl)
		return nil
	}

	speaker.Lock()
	e.ctrl.Paused = false
	speaker.Unlock()
	return nil
}

// Pause suspends output without losing the playhead
func (e *beepEngine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.ctrl == nil {
		return
	}
	speaker.Lock()
	e.ctrl.Paused = true
	speaker.Unlock()
}

// Seek moves the playhead
func (e *beepEngine) Seek(pos time.Duration) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.streamer == nil {
		return fmt.Errorf("no audio loaded")
	}

	speaker.Lock()
	err := e.streamer.Seek(e.format.SampleRate.N(pos))
	speaker.Unlock()
	if err != nil {
		return fmt.Errorf("failed to seek: %w", err)
	}
	return nil
}

// Position reports the current playhead
func (e *beepEngine) Position() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.streamer == nil {
		return 0
	}

	speaker.Lock()
	n := e.streamer.Position()
	speaker.Unlock()
	return e.format.SampleRate.D(n)
}

// Close releases the decoder and detaches from the output device
func (e *beepEngine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.streamer == nil {
		return
	}

	speaker.Clear()
	e.streamer.Close()
	e.streamer = nil
	e.ctrl = nil
	e.queued = false
}

// SetOnFinished registers the natural-completion callback
func (e *beepEngine) SetOnFinished(fn func()) {
	e.mu.Lock()
	e.onFinished = fn
	e.mu.Unlock()
}

// fireFinished runs on the speaker goroutine when the sequence drains
func (e *beepEngine) fireFinished() {
	e.mu.Lock()
	// the drained sequence was dropped by the speaker; a new Start rebuilds it
	e.queued = false
	fn := e.onFinished
	e.mu.Unlock()

	if fn != nil {
		fn()
	}
}
