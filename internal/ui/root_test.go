package ui

import (
	"context"
	"errors"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/newscast/news-podcast/internal/model"
	"github.com/newscast/news-podcast/internal/playback"
)

type fakeSource struct {
	lines []string
	err   error
}

func (s *fakeSource) FetchHeadlines(ctx context.Context) ([]string, error) {
	return s.lines, s.err
}

type fakeGenerator struct {
	session  *model.GenerationSession
	startErr error
	started  [][]model.HeadlineItem
}

func (g *fakeGenerator) SetUpdateCallback(func(model.GenerationSession)) {}

func (g *fakeGenerator) Start(ctx context.Context, headlines []model.HeadlineItem) (model.GenerationSession, error) {
	if g.startErr != nil {
		return model.GenerationSession{}, g.startErr
	}
	g.started = append(g.started, headlines)
	g.session = &model.GenerationSession{Headlines: headlines, Step: model.StepRequestingScript}
	return *g.session, nil
}

func (g *fakeGenerator) Current() (model.GenerationSession, bool) {
	if g.session == nil {
		return model.GenerationSession{}, false
	}
	return *g.session, true
}

func (g *fakeGenerator) Reset() { g.session = nil }

type fakePlayer struct {
	snapshot playback.Snapshot
}

func (p *fakePlayer) SetUpdateCallback(func(playback.Snapshot)) {}
func (p *fakePlayer) Play() error                              { return nil }
func (p *fakePlayer) Pause()                                   {}
func (p *fakePlayer) Stop()                                    {}
func (p *fakePlayer) Seek(pos time.Duration)                   {}
func (p *fakePlayer) Snapshot() playback.Snapshot              { return p.snapshot }

func newTestUI() (*RootUI, *fakeGenerator) {
	app := test.NewApp()
	window := app.NewWindow("test")
	generator := &fakeGenerator{}
	ui := NewRootUI(window, app, &fakeSource{}, generator, &fakePlayer{})
	return ui, generator
}

func headlines(titles ...string) []model.HeadlineItem {
	items := make([]model.HeadlineItem, 0, len(titles))
	for _, title := range titles {
		items = append(items, model.HeadlineItem{Title: title, Date: model.DefaultDate})
	}
	return items
}

func TestRootUI_SelectionClearedOnNewHeadlines(t *testing.T) {
	ui, _ := newTestUI()

	ui.setHeadlines(headlines("one", "two", "three"))
	ui.onHeadlineToggled(0, true)
	ui.onHeadlineToggled(2, true)

	if len(ui.selected) != 2 {
		t.Fatalf("selected = %d items, expected 2", len(ui.selected))
	}

	// A new list invalidates every old index; the selection must not carry over
	ui.setHeadlines(headlines("fresh A", "fresh B"))
	if len(ui.selected) != 0 {
		t.Errorf("selection survived a headline refresh: %v", ui.selected)
	}
	if !ui.generateBtn.Disabled() {
		t.Error("generate button should disable when the selection is cleared")
	}
}

func TestRootUI_SelectedHeadlinesInListOrder(t *testing.T) {
	ui, _ := newTestUI()
	ui.setHeadlines(headlines("first", "second", "third", "fourth"))

	// Toggle out of order; the selection must come back in list order
	ui.onHeadlineToggled(3, true)
	ui.onHeadlineToggled(0, true)
	ui.onHeadlineToggled(2, true)

	items := ui.selectedHeadlines()
	if len(items) != 3 {
		t.Fatalf("selectedHeadlines() returned %d items, expected 3", len(items))
	}
	for i, expected := range []string{"first", "third", "fourth"} {
		if items[i].Title != expected {
			t.Errorf("selectedHeadlines()[%d] = %q, expected %q", i, items[i].Title, expected)
		}
	}
}

func TestRootUI_ToggleBoundsChecked(t *testing.T) {
	ui, _ := newTestUI()
	ui.setHeadlines(headlines("only"))

	ui.onHeadlineToggled(-1, true)
	ui.onHeadlineToggled(5, true)
	if len(ui.selected) != 0 {
		t.Errorf("out-of-range toggles must be ignored, got %v", ui.selected)
	}
}

func TestRootUI_GenerateButtonState(t *testing.T) {
	ui, generator := newTestUI()
	ui.setHeadlines(headlines("one", "two"))

	if !ui.generateBtn.Disabled() {
		t.Error("generate button should start disabled with nothing selected")
	}

	ui.onHeadlineToggled(0, true)
	if ui.generateBtn.Disabled() {
		t.Error("generate button should enable once a story is selected")
	}

	ui.onHeadlineToggled(0, false)
	if !ui.generateBtn.Disabled() {
		t.Error("generate button should disable when the selection empties")
	}

	// An in-flight session keeps the button disabled even with a selection
	generator.session = &model.GenerationSession{Step: model.StepRequestingAudio}
	ui.onHeadlineToggled(1, true)
	if !ui.generateBtn.Disabled() {
		t.Error("generate button must stay disabled while a session is in flight")
	}
}

func TestRootUI_GenerateStartsWithSelection(t *testing.T) {
	ui, generator := newTestUI()
	ui.setHeadlines(headlines("one", "two"))
	ui.onHeadlineToggled(1, true)

	ui.onGenerateClick()

	if len(generator.started) != 1 {
		t.Fatalf("generator started %d times, expected 1", len(generator.started))
	}
	if len(generator.started[0]) != 1 || generator.started[0][0].Title != "two" {
		t.Errorf("generator received %v, expected the selected story", generator.started[0])
	}
	if ui.currentScreen != ScreenGenerating {
		t.Errorf("screen = %s, expected %s", ui.currentScreen, ScreenGenerating)
	}
}

func TestRootUI_GenerateClickRejectedWhenBusy(t *testing.T) {
	ui, generator := newTestUI()
	ui.setHeadlines(headlines("one"))
	ui.onHeadlineToggled(0, true)
	generator.startErr = errors.New("a generation session is already in flight")

	ui.onGenerateClick()

	if ui.currentScreen == ScreenGenerating {
		t.Error("a rejected start must not switch to the generating screen")
	}
}

func TestScreen_String(t *testing.T) {
	tests := []struct {
		screen   Screen
		expected string
	}{
		{ScreenLoading, "Loading"},
		{ScreenError, "Error"},
		{ScreenHeadlines, "Headlines"},
		{ScreenGenerating, "Generating"},
		{ScreenPlayer, "Player"},
		{Screen(99), "Unknown"},
	}

	for _, test := range tests {
		if got := test.screen.String(); got != test.expected {
			t.Errorf("Screen(%d).String() = %q, expected %q", test.screen, got, test.expected)
		}
	}
}

func TestEpisodeTitle(t *testing.T) {
	tests := []struct {
		name     string
		items    []model.HeadlineItem
		expected string
	}{
		{
			name:     "empty session",
			items:    nil,
			expected: "",
		},
		{
			name:     "single story",
			items:    headlines("AI beats chess"),
			expected: "AI beats chess",
		},
		{
			name:     "two stories",
			items:    headlines("AI beats chess", "Plain headline"),
			expected: "AI beats chess · +1 story",
		},
		{
			name:     "many stories",
			items:    headlines("AI beats chess", "b", "c", "d"),
			expected: "AI beats chess · +3 stories",
		},
	}

	loc := NewLocalization()
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			session := model.GenerationSession{Headlines: test.items}
			if got := episodeTitle(session, loc); got != test.expected {
				t.Errorf("episodeTitle() = %q, expected %q", got, test.expected)
			}
		})
	}
}

func TestFormatMoreStories_Localized(t *testing.T) {
	loc := NewLocalization()
	loc.SetLanguage("ru")

	if got := formatMoreStories(1, loc); got != "+1 история" {
		t.Errorf("formatMoreStories(1) = %q in ru", got)
	}
	if got := formatMoreStories(5, loc); got != "+5 историй" {
		t.Errorf("formatMoreStories(5) = %q in ru", got)
	}
}
