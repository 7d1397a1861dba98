package generate

import "context"

// Backend is the slice of the API client the orchestrator needs
type Backend interface {
	GenerateScript(ctx context.Context, headlines []string) ([]string, error)
	GenerateAudio(ctx context.Context, scripts []string) ([]byte, error)
}

// AudioLoader hands finished audio to the playback layer
type AudioLoader interface {
	Load(data []byte) error
}
