package generate

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/newscast/news-podcast/internal/model"
	"github.com/newscast/news-podcast/internal/observability"
)

var (
	// ErrSessionInFlight is returned when Start is called while a session
	// is still active. The UI disables the trigger, this is the backstop.
	ErrSessionInFlight = errors.New("a generation session is already in flight")

	// ErrNoHeadlines is returned when Start is called with an empty selection
	ErrNoHeadlines = errors.New("no headlines selected")
)

// Service runs generation sessions
type Service struct {
	client Backend
	player AudioLoader
	logger zerolog.Logger

	mu      sync.Mutex
	current *model.GenerationSession

	onUpdate func(model.GenerationSession)
}

// NewService creates a new generation service
func NewService(client Backend, player AudioLoader) *Service {
	return &Service{
		client: client,
		player: player,
		logger: observability.Component("generate"),
	}
}

// SetUpdateCallback sets the callback invoked on every step transition.
// Callbacks fire from the session goroutine with a by-value copy of the
// session, so the receiver can read it from any thread; the UI still
// marshals UI mutations onto its own thread.
func (s *Service) SetUpdateCallback(callback func(model.GenerationSession)) {
	s.mu.Lock()
	s.onUpdate = callback
	s.mu.Unlock()
}

// Current returns a copy of the active or last-finished session. The second
// return is false when the service is idle.
func (s *Service) Current() (model.GenerationSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return model.GenerationSession{}, false
	}
	return *s.current, true
}

// Start begins a new session for the selected headlines. The selection is
// copied; the caller may replace its headline list afterwards.
func (s *Service) Start(ctx context.Context, headlines []model.HeadlineItem) (model.GenerationSession, error) {
	if len(headlines) == 0 {
		return model.GenerationSession{}, ErrNoHeadlines
	}

	s.mu.Lock()
	if s.current != nil && s.current.Step.IsActive() {
		s.mu.Unlock()
		return model.GenerationSession{}, ErrSessionInFlight
	}

	session := &model.GenerationSession{
		ID:        uuid.NewString(),
		Headlines: append([]model.HeadlineItem(nil), headlines...),
		Step:      model.StepRequestingScript,
		StartedAt: time.Now(),
	}
	s.current = session
	snapshot := *session
	s.mu.Unlock()

	s.logger.Info().Str("session", session.ID).Int("headlines", len(headlines)).Msg("generation started")
	s.notify(session)

	go s.run(ctx, session)
	return snapshot, nil
}

// Reset clears a finished session so a new one can be started
func (s *Service) Reset() {
	s.mu.Lock()
	if s.current != nil && !s.current.Step.IsActive() {
		s.current = nil
	}
	s.mu.Unlock()
}

// run executes the pipeline. The audio phase never starts unless the script
// phase succeeded.
func (s *Service) run(ctx context.Context, session *model.GenerationSession) {
	scripts, err := s.client.GenerateScript(ctx, session.WireHeadlines())
	if err != nil {
		s.fail(session, err)
		return
	}

	s.mu.Lock()
	session.Scripts = scripts
	session.Step = model.StepRequestingAudio
	s.mu.Unlock()
	s.notify(session)

	audio, err := s.client.GenerateAudio(ctx, scripts)
	if err != nil {
		s.fail(session, err)
		return
	}

	if err := s.player.Load(audio); err != nil {
		s.fail(session, err)
		return
	}

	s.mu.Lock()
	session.Audio = audio
	session.Step = model.StepReady
	session.FinishedAt = time.Now()
	s.mu.Unlock()
	s.notify(session)

	s.logger.Info().
		Str("session", session.ID).
		Int("scripts", len(scripts)).
		Int("audioBytes", len(audio)).
		Msg("generation completed")
}

// fail moves the session to Failed with the error message
func (s *Service) fail(session *model.GenerationSession, err error) {
	s.mu.Lock()
	session.Step = model.StepFailed
	session.LastError = err.Error()
	session.FinishedAt = time.Now()
	s.mu.Unlock()
	s.notify(session)

	s.logger.Error().Str("session", session.ID).Err(err).Msg("generation failed")
}

// notify calls the update callback with a copy of the session. The copy is
// taken under the same mutex the pipeline mutates under, so the published
// value never changes after it is handed out.
func (s *Service) notify(session *model.GenerationSession) {
	s.mu.Lock()
	callback := s.onUpdate
	snapshot := *session
	s.mu.Unlock()

	if callback != nil {
		callback(snapshot)
	}
}
