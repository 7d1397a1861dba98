package playback

// State represents the player state machine
type State string

const (
	// StateUnloaded means no audio has been loaded yet
	StateUnloaded State = "Unloaded"

	// StateLoaded means audio is decoded and ready to play
	StateLoaded State = "Loaded"

	// StatePlaying means audio is playing and the position ticker runs
	StatePlaying State = "Playing"

	// StatePaused means playback is suspended at the current position
	StatePaused State = "Paused"

	// StateFinished means playback reached the end naturally
	StateFinished State = "Finished"

	// StateErrored means decoding or the audio device failed
	StateErrored State = "Errored"
)

// String returns the string representation of State
func (s State) String() string {
	return string(s)
}

// IsLoaded returns true if audio is available for playback
func (s State) IsLoaded() bool {
	return s == StateLoaded || s == StatePlaying || s == StatePaused || s == StateFinished
}

// IsPlayable returns true if Play is a legal transition from this state
func (s State) IsPlayable() bool {
	return s == StateLoaded || s == StatePaused || s == StateFinished
}
