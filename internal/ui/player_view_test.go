package ui

import (
	"testing"
	"time"

	"github.com/newscast/news-podcast/internal/playback"
)

func TestFormatPlaybackTime(t *testing.T) {
	tests := []struct {
		duration time.Duration
		expected string
	}{
		{0, "00:00"},
		{-3 * time.Second, "00:00"},
		{9 * time.Second, "00:09"},
		{90 * time.Second, "01:30"},
		{59*time.Minute + 59*time.Second, "59:59"},
		{time.Hour, "01:00:00"},
		{time.Hour + 23*time.Minute + 45*time.Second, "01:23:45"},
	}

	for _, test := range tests {
		if got := formatPlaybackTime(test.duration); got != test.expected {
			t.Errorf("formatPlaybackTime(%v) = %q, expected %q", test.duration, got, test.expected)
		}
	}
}

func TestPlayerView_UpdateSnapshot(t *testing.T) {
	pv := NewPlayerView(NewLocalization())

	pv.UpdateSnapshot(playback.Snapshot{
		State:    playback.StatePlaying,
		Position: 30 * time.Second,
		Duration: 2 * time.Minute,
	})

	if pv.playPauseBtn.Text != IconPause {
		t.Errorf("play button = %q while playing, expected pause icon", pv.playPauseBtn.Text)
	}
	if pv.positionLabel.Text != "00:30" {
		t.Errorf("position label = %q, expected 00:30", pv.positionLabel.Text)
	}
	if pv.durationLabel.Text != "02:00" {
		t.Errorf("duration label = %q, expected 02:00", pv.durationLabel.Text)
	}
	if pv.seekSlider.Max != 120 {
		t.Errorf("slider max = %v, expected 120", pv.seekSlider.Max)
	}
	if pv.errorLabel.Visible() {
		t.Error("error label should stay hidden without an error")
	}

	pv.UpdateSnapshot(playback.Snapshot{
		State:     playback.StateErrored,
		LastError: "audio device unavailable",
	})
	if pv.playPauseBtn.Text != IconPlay {
		t.Errorf("play button = %q when not playing, expected play icon", pv.playPauseBtn.Text)
	}
	if !pv.errorLabel.Visible() {
		t.Error("error label should show when the snapshot carries an error")
	}
}

func TestLocalization_FallbackChain(t *testing.T) {
	loc := NewLocalization()

	loc.SetLanguage("ru")
	if got := loc.GetText(KeyGeneratePodcast); got != "Создать подкаст" {
		t.Errorf("GetText(ru) = %q", got)
	}

	// Unknown languages are ignored, unknown keys fall back to the key itself
	loc.SetLanguage("xx")
	if got := loc.GetCurrentLanguage(); got != "ru" {
		t.Errorf("GetCurrentLanguage() = %q, expected ru after a rejected switch", got)
	}
	if got := loc.GetText("missing_key"); got != "missing_key" {
		t.Errorf("GetText(missing) = %q, expected the key itself", got)
	}

	loc.SetLanguage("system")
	if got := loc.GetCurrentLanguage(); got != "en" {
		t.Errorf("GetCurrentLanguage() = %q, expected en for system", got)
	}
}

func TestLocalization_AllLanguagesCoverEveryKey(t *testing.T) {
	loc := NewLocalization()
	keys := []string{
		KeyAppTitle, KeyLoadingHeadlines, KeySelectStories, KeyGeneratePodcast,
		KeyRefresh, KeyRetry, KeyErrorLoading, KeyResearchingStories,
		KeyGeneratingAudio, KeyGenerationFailed, KeyNowPlaying, KeyPlay,
		KeyPause, KeySaveEpisode, KeySavedTo, KeySaveFailed, KeyBack,
		KeySettings, KeyAPIBaseURL, KeyAutoplay, KeyExportDirectory,
		KeyLanguage, KeySave, KeyCancel, KeySettingsSaved, KeyNoSelection,
		KeySelectedCount, KeyGenerationBusy, KeyMoreStoryOne, KeyMoreStoryMany,
	}

	for lang := range loc.GetAvailableLanguages() {
		for _, key := range keys {
			if _, ok := loc.texts[lang][key]; !ok {
				t.Errorf("language %s missing key %s", lang, key)
			}
		}
	}
}
