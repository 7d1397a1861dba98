package playback

// Package playback implements the audio player: a state machine over a small
// engine interface, with a beep-backed engine for real output. The controller
// owns the audio output device; loading new audio replaces whatever was
// playing before.
