package ui

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/newscast/news-podcast/internal/playback"
)

// PlayerView represents the episode player screen
type PlayerView struct {
	widget.BaseWidget

	localization *Localization

	// UI components
	titleLabel    *widget.Label
	episodeLabel  *widget.Label
	playPauseBtn  *widget.Button
	seekSlider    *widget.Slider
	positionLabel *widget.Label
	durationLabel *widget.Label
	saveBtn       *widget.Button
	backBtn       *widget.Button
	errorLabel    *widget.Label

	// Callbacks
	onPlayPause func()
	onSeek      func(pos time.Duration)
	onSave      func()
	onBack      func()

	snapshot playback.Snapshot
}

// NewPlayerView creates a new player view
func NewPlayerView(localization *Localization) *PlayerView {
	pv := &PlayerView{localization: localization}
	pv.ExtendBaseWidget(pv)
	pv.createUI()
	return pv
}

// SetCallbacks sets the player action callbacks
func (pv *PlayerView) SetCallbacks(
	onPlayPause func(),
	onSeek func(pos time.Duration),
	onSave func(),
	onBack func(),
) {
	pv.onPlayPause = onPlayPause
	pv.onSeek = onSeek
	pv.onSave = onSave
	pv.onBack = onBack
}

// createUI creates the player controls
func (pv *PlayerView) createUI() {
	pv.titleLabel = widget.NewLabel(pv.localization.GetText(KeyNowPlaying))
	pv.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	pv.titleLabel.Alignment = fyne.TextAlignCenter

	pv.episodeLabel = widget.NewLabel("")
	pv.episodeLabel.Alignment = fyne.TextAlignCenter
	pv.episodeLabel.Wrapping = fyne.TextWrapWord

	pv.playPauseBtn = widget.NewButton(IconPlay, func() {
		if pv.onPlayPause != nil {
			pv.onPlayPause()
		}
	})
	pv.playPauseBtn.Importance = widget.HighImportance

	pv.seekSlider = widget.NewSlider(0, 0)
	pv.seekSlider.Step = SeekSliderStep
	// Commit seeks on release only; OnChanged also fires for programmatic
	// position updates from the ticker
	pv.seekSlider.OnChangeEnded = func(value float64) {
		if pv.onSeek != nil {
			pv.onSeek(time.Duration(value) * time.Second)
		}
	}

	pv.positionLabel = widget.NewLabel(formatPlaybackTime(0))
	pv.durationLabel = widget.NewLabel(formatPlaybackTime(0))
	pv.durationLabel.Alignment = fyne.TextAlignTrailing

	pv.saveBtn = widget.NewButton(IconSave+" "+pv.localization.GetText(KeySaveEpisode), func() {
		if pv.onSave != nil {
			pv.onSave()
		}
	})

	pv.backBtn = widget.NewButton(IconBack+" "+pv.localization.GetText(KeyBack), func() {
		if pv.onBack != nil {
			pv.onBack()
		}
	})

	pv.errorLabel = widget.NewLabel("")
	pv.errorLabel.Importance = widget.DangerImportance
	pv.errorLabel.Alignment = fyne.TextAlignCenter
	pv.errorLabel.Hide()
}

// SetEpisodeTitle sets the episode description line under the screen title
func (pv *PlayerView) SetEpisodeTitle(title string) {
	pv.episodeLabel.SetText(title)
}

// UpdateSnapshot refreshes all controls from a playback snapshot
func (pv *PlayerView) UpdateSnapshot(snapshot playback.Snapshot) {
	pv.snapshot = snapshot

	if snapshot.State == playback.StatePlaying {
		pv.playPauseBtn.SetText(IconPause)
	} else {
		pv.playPauseBtn.SetText(IconPlay)
	}

	totalSec := snapshot.Duration.Seconds()
	if pv.seekSlider.Max != totalSec {
		pv.seekSlider.Max = totalSec
	}
	pv.seekSlider.Value = snapshot.Position.Seconds()
	pv.seekSlider.Refresh()

	pv.positionLabel.SetText(formatPlaybackTime(snapshot.Position))
	pv.durationLabel.SetText(formatPlaybackTime(snapshot.Duration))

	if snapshot.LastError != "" {
		pv.errorLabel.SetText(IconError + " " + snapshot.LastError)
		pv.errorLabel.Show()
	} else {
		pv.errorLabel.Hide()
	}
}

// CreateRenderer creates the player renderer
func (pv *PlayerView) CreateRenderer() fyne.WidgetRenderer {
	timeRow := container.NewBorder(nil, nil, pv.positionLabel, pv.durationLabel)
	controls := container.NewVBox(
		pv.titleLabel,
		pv.episodeLabel,
		widget.NewSeparator(),
		pv.seekSlider,
		timeRow,
		container.NewCenter(pv.playPauseBtn),
		pv.errorLabel,
		widget.NewSeparator(),
		pv.saveBtn,
		pv.backBtn,
	)
	return widget.NewSimpleRenderer(container.NewPadded(controls))
}

// formatPlaybackTime formats a duration as mm:ss, or hh:mm:ss past the hour
func formatPlaybackTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf(TimeLabelFormat, minutes, seconds)
}
