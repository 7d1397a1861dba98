package playback

import "time"

// Engine abstracts the platform audio decode and output backend. The
// controller drives it and owns all state bookkeeping; engines only decode,
// move the playhead, and talk to the output device.
type Engine interface {
	// Load decodes audio data, prepares the output device, and returns the
	// total duration. A previous load is released first.
	Load(data []byte) (time.Duration, error)

	// Start begins or resumes output. Fails if the audio device cannot be
	// acquired; the playhead is left where it was.
	Start() error

	// Pause suspends output without losing the playhead
	Pause()

	// Seek moves the playhead. The controller clamps the position before
	// calling.
	Seek(pos time.Duration) error

	// Position reports the current playhead
	Position() time.Duration

	// Close releases the decoder and detaches from the output device
	Close()

	// SetOnFinished registers a callback fired once when playback reaches
	// the natural end of the audio. May be called from the output thread.
	SetOnFinished(fn func())
}
