package ui

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/newscast/news-podcast/internal/config"
	"github.com/newscast/news-podcast/internal/model"
	"github.com/newscast/news-podcast/internal/observability"
	"github.com/newscast/news-podcast/internal/platform"
	"github.com/newscast/news-podcast/internal/playback"
)

// Screen identifies which screen the root UI is showing
type Screen int

const (
	ScreenLoading Screen = iota
	ScreenError
	ScreenHeadlines
	ScreenGenerating
	ScreenPlayer
)

// String returns a debug name for the screen
func (s Screen) String() string {
	switch s {
	case ScreenLoading:
		return "Loading"
	case ScreenError:
		return "Error"
	case ScreenHeadlines:
		return "Headlines"
	case ScreenGenerating:
		return "Generating"
	case ScreenPlayer:
		return "Player"
	default:
		return "Unknown"
	}
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	mobileUI     *MobileUI
	logger       zerolog.Logger

	source    HeadlineSource
	generator PodcastGenerator
	player    Player
	parser    *platform.HeadlineParserService

	// Headline list and selection. The selection is only ever valid against
	// the headline slice it was made from; setHeadlines replaces both.
	headlines []model.HeadlineItem
	selected  map[int]bool

	currentScreen Screen

	// Screen widgets
	content        *fyne.Container
	loadingScreen  fyne.CanvasObject
	errorScreen    fyne.CanvasObject
	errorLabel     *widget.Label
	headlineScreen fyne.CanvasObject
	headlineList   *widget.List
	selectionLabel *widget.Label
	generateBtn    *widget.Button
	genScreen      fyne.CanvasObject
	genLabel       *widget.Label
	playerView     *PlayerView
}

// NewRootUI creates and initializes the main UI. Call RefreshHeadlines to
// start the first fetch once the window is up.
func NewRootUI(window fyne.Window, app fyne.App, source HeadlineSource, generator PodcastGenerator, player Player) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		mobileUI:     NewMobileUI(app),
		logger:       observability.Component("ui"),
		source:       source,
		generator:    generator,
		player:       player,
		parser:       platform.NewHeadlineParserService(),
		selected:     make(map[int]bool),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	// Service callbacks arrive on background goroutines; handlers marshal
	// onto the UI thread before touching state.
	ui.generator.SetUpdateCallback(ui.onGenerationUpdate)
	ui.player.SetUpdateCallback(ui.onPlaybackUpdate)

	ui.setupUI()
	return ui
}

// setupUI creates all screens and installs the content container
func (ui *RootUI) setupUI() {
	loc := ui.localization

	// Loading screen
	loadingSpinner := widget.NewProgressBarInfinite()
	loadingLabel := widget.NewLabel(loc.GetText(KeyLoadingHeadlines))
	loadingLabel.Alignment = fyne.TextAlignCenter
	ui.loadingScreen = container.NewCenter(container.NewVBox(loadingLabel, loadingSpinner))

	// Error screen with user-initiated retry
	ui.errorLabel = widget.NewLabel("")
	ui.errorLabel.Alignment = fyne.TextAlignCenter
	ui.errorLabel.Wrapping = fyne.TextWrapWord
	retryBtn := widget.NewButton(loc.GetText(KeyRetry), ui.RefreshHeadlines)
	retryBtn.Importance = widget.HighImportance
	errorTitle := widget.NewLabel(IconError + " " + loc.GetText(KeyErrorLoading))
	errorTitle.Alignment = fyne.TextAlignCenter
	ui.errorScreen = container.NewCenter(container.NewVBox(errorTitle, ui.errorLabel, retryBtn))

	// Headline list screen
	ui.headlineList = widget.NewList(
		func() int { return len(ui.headlines) },
		func() fyne.CanvasObject { return ui.createHeadlineRow() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateHeadlineRow(id, obj) },
	)

	ui.selectionLabel = widget.NewLabel("")
	ui.generateBtn = widget.NewButton(IconPodcast+" "+loc.GetText(KeyGeneratePodcast), ui.onGenerateClick)
	ui.generateBtn.Importance = widget.HighImportance
	ui.generateBtn.Disable()

	refreshBtn := widget.NewButton(IconRefresh, ui.RefreshHeadlines)
	refreshBtn.Importance = widget.LowImportance
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	header := container.NewBorder(nil, nil, nil,
		container.NewHBox(refreshBtn, settingsBtn),
		widget.NewLabel(loc.GetText(KeySelectStories)),
	)
	footer := container.NewVBox(ui.selectionLabel, ui.generateBtn)

	listArea := fyne.CanvasObject(ui.headlineList)
	if ui.mobileUI.IsMobileDevice() {
		// Pull from the top of the list to refetch the feed
		gestures := NewGestureHandler(func(g GestureType) {
			if g == GesturePullToRefresh {
				ui.RefreshHeadlines()
			}
		})
		listArea = NewGestureArea(ui.headlineList, gestures)
	}
	ui.headlineScreen = container.NewBorder(header, footer, nil, nil, listArea)

	// Generating screen
	ui.genLabel = widget.NewLabel("")
	ui.genLabel.Alignment = fyne.TextAlignCenter
	genSpinner := widget.NewProgressBarInfinite()
	ui.genScreen = container.NewCenter(container.NewVBox(ui.genLabel, genSpinner))

	// Player screen
	ui.playerView = NewPlayerView(loc)
	ui.playerView.SetCallbacks(
		ui.onPlayPause,
		ui.onSeek,
		ui.onSaveEpisode,
		ui.onBackToHeadlines,
	)

	ui.content = container.NewStack(ui.loadingScreen)
	ui.window.SetContent(ui.content)
	ui.currentScreen = ScreenLoading
}

// showScreen swaps the visible screen
func (ui *RootUI) showScreen(screen Screen) {
	var obj fyne.CanvasObject
	switch screen {
	case ScreenLoading:
		obj = ui.loadingScreen
	case ScreenError:
		obj = ui.errorScreen
	case ScreenHeadlines:
		obj = ui.headlineScreen
	case ScreenGenerating:
		obj = ui.genScreen
	case ScreenPlayer:
		obj = ui.playerView
	default:
		return
	}

	ui.currentScreen = screen
	ui.content.Objects = []fyne.CanvasObject{obj}
	ui.content.Refresh()

	ui.logger.Debug().Stringer("screen", screen).Msg("screen changed")
}

// RefreshHeadlines fetches the feed and replaces the headline list.
// Always user- or startup-initiated; there is no automatic retry.
func (ui *RootUI) RefreshHeadlines() {
	ui.showScreen(ScreenLoading)

	go func() {
		lines, err := ui.source.FetchHeadlines(context.Background())

		fyne.Do(func() {
			if err != nil {
				ui.errorLabel.SetText(err.Error())
				ui.showScreen(ScreenError)
				return
			}

			ui.setHeadlines(ui.parser.ParseLines(lines))
			ui.showScreen(ScreenHeadlines)
		})
	}()
}

// setHeadlines replaces the headline list. The old selection indexed the
// old list, so it is always cleared here, never carried over.
func (ui *RootUI) setHeadlines(items []model.HeadlineItem) {
	ui.headlines = items
	ui.selected = make(map[int]bool)

	ui.headlineList.Refresh()
	ui.updateSelectionUI()
}

// createHeadlineRow creates a new headline row widget for the list
func (ui *RootUI) createHeadlineRow() fyne.CanvasObject {
	row := NewHeadlineRow()
	row.SetOnToggle(ui.onHeadlineToggled)
	return row
}

// updateHeadlineRow binds a list row to a headline
func (ui *RootUI) updateHeadlineRow(id widget.ListItemID, obj fyne.CanvasObject) {
	if id >= len(ui.headlines) {
		return
	}
	if row, ok := obj.(*HeadlineRow); ok {
		row.SetOnToggle(ui.onHeadlineToggled)
		row.Update(ui.headlines[id], id, ui.selected[id])
	}
}

// onHeadlineToggled handles a selection toggle from a row
func (ui *RootUI) onHeadlineToggled(index int, selected bool) {
	if index < 0 || index >= len(ui.headlines) {
		return
	}

	if selected {
		ui.selected[index] = true
	} else {
		delete(ui.selected, index)
	}

	ui.updateSelectionUI()
}

// updateSelectionUI refreshes the selection counter and generate button state
func (ui *RootUI) updateSelectionUI() {
	count := len(ui.selected)
	if count == 0 {
		ui.selectionLabel.SetText(ui.localization.GetText(KeyNoSelection))
	} else {
		ui.selectionLabel.SetText(formatSelectedCount(count, ui.localization))
	}

	if count > 0 && !ui.generationActive() {
		ui.generateBtn.Enable()
	} else {
		ui.generateBtn.Disable()
	}
}

// generationActive reports whether a session is in flight
func (ui *RootUI) generationActive() bool {
	session, ok := ui.generator.Current()
	return ok && session.Step.IsActive()
}

// selectedHeadlines returns the selected items in list order
func (ui *RootUI) selectedHeadlines() []model.HeadlineItem {
	indices := make([]int, 0, len(ui.selected))
	for idx := range ui.selected {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	items := make([]model.HeadlineItem, 0, len(indices))
	for _, idx := range indices {
		items = append(items, ui.headlines[idx])
	}
	return items
}

// onGenerateClick starts the generation pipeline for the current selection
func (ui *RootUI) onGenerateClick() {
	items := ui.selectedHeadlines()
	if len(items) == 0 {
		ui.showPopup(ui.localization.GetText(KeyNoSelection))
		return
	}

	_, err := ui.generator.Start(context.Background(), items)
	if err != nil {
		ui.logger.Warn().Err(err).Msg("could not start generation")
		ui.showPopup(ui.localization.GetText(KeyGenerationBusy))
		return
	}

	ui.generateBtn.Disable()
	ui.genLabel.SetText(ui.localization.GetText(KeyResearchingStories))
	ui.showScreen(ScreenGenerating)
}

// onGenerationUpdate handles step transitions from the generation service.
// The session arrives by value, so reading it inside fyne.Do is safe even
// though the pipeline has moved on.
func (ui *RootUI) onGenerationUpdate(session model.GenerationSession) {
	fyne.Do(func() {
		switch session.Step {
		case model.StepRequestingScript:
			ui.genLabel.SetText(ui.localization.GetText(KeyResearchingStories))
		case model.StepRequestingAudio:
			ui.genLabel.SetText(ui.localization.GetText(KeyGeneratingAudio))
		case model.StepFailed:
			ui.showPopup(ui.localization.GetText(KeyGenerationFailed) + ": " + session.LastError)
			ui.generator.Reset()
			ui.showScreen(ScreenHeadlines)
			ui.updateSelectionUI()
		case model.StepReady:
			ui.showPlayer(session)
		}
	})
}

// showPlayer switches to the player screen and schedules autoplay
func (ui *RootUI) showPlayer(session model.GenerationSession) {
	ui.playerView.SetEpisodeTitle(episodeTitle(session, ui.localization))
	ui.playerView.UpdateSnapshot(ui.player.Snapshot())
	ui.showScreen(ScreenPlayer)

	if !ui.settings.GetAutoplayEnabled() {
		return
	}

	// Let the screen settle before starting output
	go func() {
		time.Sleep(AutoStartDelay)
		fyne.Do(func() {
			if ui.currentScreen != ScreenPlayer {
				return
			}
			if err := ui.player.Play(); err != nil {
				ui.logger.Warn().Err(err).Msg("autoplay failed")
			}
		})
	}()
}

// onPlaybackUpdate handles published playback state changes
func (ui *RootUI) onPlaybackUpdate(snapshot playback.Snapshot) {
	fyne.Do(func() {
		ui.playerView.UpdateSnapshot(snapshot)
	})
}

// onPlayPause toggles playback
func (ui *RootUI) onPlayPause() {
	if ui.player.Snapshot().State == playback.StatePlaying {
		ui.player.Pause()
		return
	}

	if err := ui.player.Play(); err != nil {
		ui.logger.Warn().Err(err).Msg("play failed")
	}
}

// onSeek forwards a slider seek to the player
func (ui *RootUI) onSeek(pos time.Duration) {
	ui.player.Seek(pos)
}

// onSaveEpisode writes the generated audio into the export directory
func (ui *RootUI) onSaveEpisode() {
	session, ok := ui.generator.Current()
	if !ok || len(session.Audio) == 0 {
		ui.showPopup(ui.localization.GetText(KeySaveFailed))
		return
	}

	path, err := platform.SaveAudioFile(ui.settings.GetExportDirectory(), session.Audio)
	if err != nil {
		ui.logger.Error().Err(err).Msg("failed to save episode")
		ui.showPopup(ui.localization.GetText(KeySaveFailed) + ": " + err.Error())
		return
	}

	ui.showPopup(ui.localization.GetText(KeySavedTo) + " " + path)

	// Best effort on desktop; mobile platforms have no file manager to open
	if !ui.mobileUI.IsMobileDevice() {
		if err := platform.RevealInFileManager(path); err != nil {
			ui.logger.Debug().Err(err).Msg("could not reveal saved episode")
		}
	}
}

// onBackToHeadlines leaves the player and returns to the headline list
func (ui *RootUI) onBackToHeadlines() {
	ui.player.Stop()
	ui.generator.Reset()
	ui.showScreen(ScreenHeadlines)
	ui.updateSelectionUI()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
	}).Show()
}

// refreshUITexts updates static texts after a language change. Screens are
// rebuilt so every label picks up the new language.
func (ui *RootUI) refreshUITexts() {
	current := ui.currentScreen
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.setupUI()
	ui.showScreen(current)
	ui.updateSelectionUI()
}

// showPopup displays a transient message popup
func (ui *RootUI) showPopup(message string) {
	label := widget.NewLabel(message)
	label.Wrapping = fyne.TextWrapWord
	popup := widget.NewPopUp(label, ui.window.Canvas())
	popup.Show()

	go func() {
		time.Sleep(PopupAutoHide)
		fyne.Do(popup.Hide)
	}()
}

// episodeTitle builds the player subtitle from the session's headlines
func episodeTitle(session model.GenerationSession, loc *Localization) string {
	if len(session.Headlines) == 0 {
		return ""
	}

	title := session.Headlines[0].GetDisplayTitle()
	if len(session.Headlines) > 1 {
		title += MiddleDotSeparator + formatMoreStories(len(session.Headlines)-1, loc)
	}
	return title
}

// formatMoreStories renders the "+N more" suffix for multi-story episodes
func formatMoreStories(n int, loc *Localization) string {
	if n == 1 {
		return loc.GetText(KeyMoreStoryOne)
	}
	return fmt.Sprintf(loc.GetText(KeyMoreStoryMany), n)
}

// formatSelectedCount renders the "N selected" footer line
func formatSelectedCount(count int, loc *Localization) string {
	return strconv.Itoa(count) + " " + loc.GetText(KeySelectedCount)
}
