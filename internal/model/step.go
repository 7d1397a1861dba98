package model

// GenerationStep represents the stage of a podcast generation session
type GenerationStep string

const (
	// StepIdle means no generation is in progress
	StepIdle GenerationStep = "Idle"

	// StepRequestingScript means the script request is in flight
	StepRequestingScript GenerationStep = "RequestingScript"

	// StepRequestingAudio means the audio synthesis request is in flight
	StepRequestingAudio GenerationStep = "RequestingAudio"

	// StepReady means audio was generated and handed to the player
	StepReady GenerationStep = "Ready"

	// StepFailed means one of the pipeline phases failed
	StepFailed GenerationStep = "Failed"
)

// String returns the string representation of GenerationStep
func (gs GenerationStep) String() string {
	return string(gs)
}

// IsActive returns true if a backend request is in flight
func (gs GenerationStep) IsActive() bool {
	return gs == StepRequestingScript || gs == StepRequestingAudio
}

// IsFinished returns true if the session reached a terminal step (ready or failed)
func (gs GenerationStep) IsFinished() bool {
	return gs == StepReady || gs == StepFailed
}
