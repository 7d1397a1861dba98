package ui

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/newscast/news-podcast/internal/config"
)

// Dialog size constants
const (
	SettingsDialogWidth  = 420
	SettingsDialogHeight = 360
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	baseURLEntry   *widget.Entry
	autoplayCheck  *widget.Check
	exportDirEntry *widget.Entry
	languageSelect *widget.Select

	// languageCodes[i] is the code behind languageSelect.Options[i]
	languageCodes []string
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	loc := sd.localization

	sd.baseURLEntry = widget.NewEntry()
	sd.baseURLEntry.SetPlaceHolder("https://...")
	sd.baseURLEntry.Validator = validateBaseURL

	sd.autoplayCheck = widget.NewCheck(loc.GetText(KeyAutoplay), nil)

	sd.exportDirEntry = widget.NewEntry()
	sd.exportDirEntry.SetPlaceHolder(loc.GetText(KeyExportDirectory))

	// The select shows display names; languageCodes keeps the code for
	// each option so saving maps back.
	options := sd.settings.GetLanguageOptions()
	sd.languageCodes = make([]string, 0, len(options))
	for code := range options {
		sd.languageCodes = append(sd.languageCodes, code)
	}
	sort.Strings(sd.languageCodes)

	displayNames := make([]string, 0, len(sd.languageCodes))
	for _, code := range sd.languageCodes {
		displayNames = append(displayNames, options[code])
	}
	sd.languageSelect = widget.NewSelect(displayNames, nil)
	sd.languageSelect.PlaceHolder = loc.GetText(KeyLanguage)

	form := container.NewVBox(
		widget.NewLabel(loc.GetText(KeyAPIBaseURL)+":"),
		sd.baseURLEntry,

		widget.NewLabel(loc.GetText(KeyExportDirectory)+":"),
		sd.exportDirEntry,

		widget.NewSeparator(),
		sd.autoplayCheck,

		widget.NewLabel(loc.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		loc.GetText(KeySettings),
		loc.GetText(KeySave),
		loc.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.baseURLEntry.SetText(sd.settings.GetAPIBaseURL())
	sd.autoplayCheck.SetChecked(sd.settings.GetAutoplayEnabled())
	sd.exportDirEntry.SetText(sd.settings.GetExportDirectory())
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	baseURL := strings.TrimSpace(sd.baseURLEntry.Text)
	if baseURL != "" && validateBaseURL(baseURL) == nil {
		sd.settings.SetAPIBaseURL(strings.TrimRight(baseURL, "/"))
	}

	sd.settings.SetAutoplayEnabled(sd.autoplayCheck.Checked)

	if sd.exportDirEntry.Text != "" {
		sd.settings.SetExportDirectory(sd.exportDirEntry.Text)
	}

	if code := sd.selectedLanguageCode(); code != "" {
		sd.settings.SetLanguage(code)
	}

	dialog.ShowInformation(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySettingsSaved),
		sd.window,
	)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// selectedLanguageCode maps the selected display name back to its code
func (sd *SettingsDialog) selectedLanguageCode() string {
	if sd.languageSelect.SelectedIndex() < 0 {
		return ""
	}
	return sd.languageCodes[sd.languageSelect.SelectedIndex()]
}

// validateBaseURL checks that the entered backend URL is http(s)
func validateBaseURL(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil // Empty keeps the previous value
	}

	parsedURL, err := url.Parse(input)
	if err != nil {
		return err
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https://")
	}

	return nil
}
