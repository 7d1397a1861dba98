package ui

import (
	"context"
	"time"

	"github.com/newscast/news-podcast/internal/model"
	"github.com/newscast/news-podcast/internal/playback"
)

// HeadlineSource fetches raw headline lines from the backend.
type HeadlineSource interface {
	FetchHeadlines(ctx context.Context) ([]string, error)
}

// PodcastGenerator runs the script+audio pipeline for a selection. Sessions
// are handed out by value so the UI never shares memory with the pipeline
// goroutine.
type PodcastGenerator interface {
	SetUpdateCallback(func(model.GenerationSession))
	Start(ctx context.Context, headlines []model.HeadlineItem) (model.GenerationSession, error)
	Current() (model.GenerationSession, bool)
	Reset()
}

// Player is the playback controller surface the UI drives.
type Player interface {
	SetUpdateCallback(func(playback.Snapshot))
	Play() error
	Pause()
	Stop()
	Seek(pos time.Duration)
	Snapshot() playback.Snapshot
}
